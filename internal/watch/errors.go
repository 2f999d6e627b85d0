package watch

import "github.com/pkg/errors"

var ErrHistoryNotFound = errors.New("watch history entry not found")
