package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	authHttp "github.com/streamflix/streamflix-server/internal/auth/delivery/http"
	authRepository "github.com/streamflix/streamflix-server/internal/auth/repository"
	authUsecase "github.com/streamflix/streamflix-server/internal/auth/usecase"
	"github.com/streamflix/streamflix-server/internal/media"
	"github.com/streamflix/streamflix-server/internal/middleware"
	moviesHttp "github.com/streamflix/streamflix-server/internal/movies/delivery/http"
	moviesRepository "github.com/streamflix/streamflix-server/internal/movies/repository"
	moviesUsecase "github.com/streamflix/streamflix-server/internal/movies/usecase"
	"github.com/streamflix/streamflix-server/internal/transcode"
	transcodeRepository "github.com/streamflix/streamflix-server/internal/transcode/repository"
	watchHttp "github.com/streamflix/streamflix-server/internal/watch/delivery/http"
	watchRepository "github.com/streamflix/streamflix-server/internal/watch/repository"
	watchUsecase "github.com/streamflix/streamflix-server/internal/watch/usecase"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	store, err := media.NewStore(s.cfg.Media.Dir)
	if err != nil {
		return err
	}

	aRepo := authRepository.NewAuthRepo(s.db)
	mRepo := moviesRepository.NewMovieRepo(s.db)
	wRepo := watchRepository.NewWatchRepo(s.db)

	tracker := transcodeRepository.NewRedisTracker(s.redisClient, s.cfg.Redis.JobStatusPrefix)
	prober := transcode.NewProber(s.cfg.Media.FFprobePath, s.logger)
	encoder := transcode.NewEncoder(s.cfg.Media.FFmpegPath, tracker, mRepo, s.logger)
	s.pool = transcode.NewPool(s.cfg, encoder, s.logger)

	authUC := authUsecase.NewAuthUseCase(s.cfg, aRepo, s.logger)
	movieUC := moviesUsecase.NewMovieUseCase(s.cfg, mRepo, store, prober, s.pool, tracker, s.logger)
	watchUC := watchUsecase.NewWatchUseCase(wRepo, s.logger)

	authHandlers := authHttp.NewAuthHandler(s.cfg, authUC, s.logger)
	movieHandlers := moviesHttp.NewMovieHandler(movieUC, s.logger)
	watchHandlers := watchHttp.NewWatchHandler(watchUC, s.logger)

	mw := middleware.NewMiddlewareManager(authUC, s.cfg, []string{"*"}, s.logger)
	e.Use(mw.RequestLoggerMiddleware)

	api := e.Group("/api")

	authHttp.MapAuthRoutes(api, authHandlers, mw)
	moviesHttp.MapMovieRoutes(api, movieHandlers, mw)
	watchHttp.MapWatchRoutes(api, watchHandlers, mw)

	api.GET("/health", func(c echo.Context) error {
		s.logger.Infof("health check RequestID: %s", utils.GetRequestID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	return nil
}
