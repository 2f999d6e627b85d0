package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/streamflix/streamflix-server/internal/auth"
	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/pkg/logger"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

type MiddlewareManager struct {
	authUC  auth.UseCase
	cfg     *config.Config
	origins []string
	logger  logger.Logger
}

// Middleware manager constructor
func NewMiddlewareManager(authUC auth.UseCase, cfg *config.Config, origins []string, logger logger.Logger) *MiddlewareManager {
	return &MiddlewareManager{authUC: authUC, cfg: cfg, origins: origins, logger: logger}
}

func (mw *MiddlewareManager) RequestLoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		req := c.Request()
		res := c.Response()
		mw.logger.Infof("Method: %s, URI: %s, Status: %d, IP: %s, Time: %s, RequestID: %s",
			req.Method, req.URL, res.Status, utils.GetIPAddress(c), time.Since(start), utils.GetRequestID(c),
		)
		return err
	}
}
