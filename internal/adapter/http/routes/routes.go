package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"obsydia_retail/internal/config"
	"obsydia_retail/internal/infrastructure/logging"
	"obsydia_retail/internal/usecase"
	"obsydia_retail/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases the HTTP layer serves.
type Dependencies struct {
	Orders   usecase.IOrderUseCase
	Auth     usecase.IAdminAuthUseCase
	Messages interfaces.IMessageBuilder
}

// Run wires the application from cfg and serves until SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := BuildDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           withCORS(cfg.CORSOrigins, NewRouter(deps)),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.L().Infof("[http][server] listening addr=%s storage=%s notifier=%s", srv.Addr, cfg.StorageDriver, cfg.Email.Notifier)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.L().Infof("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, deps)
	addAdminRoutes(v1, deps)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.L().Errorf("[http][recovery] recovered from panic path=%s err=%v", c.Request.URL.Path, recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func withCORS(origins []string, next http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	})(next)
}
