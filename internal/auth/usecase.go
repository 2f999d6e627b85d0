package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/models"
)

type UseCase interface {
	Register(ctx context.Context, user *models.User) (*models.UserWithToken, error)
	Login(ctx context.Context, input *models.LoginInput) (*models.UserWithToken, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, input *models.UpdateProfileInput) (*models.User, error)
	ChangePassword(ctx context.Context, input *models.ChangePasswordInput) error
}
