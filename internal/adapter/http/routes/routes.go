package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "laserwood/docs" // swagger spec registration
	"laserwood/internal/adapter/http/middleware"
	"laserwood/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Run wires the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.Release() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	getRoutes(router, app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func getRoutes(router *gin.Engine, app *application) {
	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPublicRoutes(v1, app.handlers)

	admin := v1.Group(PathAdmin, middleware.RequireAdmin(app.tokens))
	addAdminRoutes(admin, app.handlers)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
	}))
}
