package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/api"
	"github.com/Domenick1991/booktofly/config"
	"github.com/Domenick1991/booktofly/internal/auth"
	"github.com/Domenick1991/booktofly/internal/service/account"
	"github.com/Domenick1991/booktofly/internal/service/booking"
	"github.com/Domenick1991/booktofly/internal/service/flights"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	UserAccounts  account.AccountUseCase
	AdminAccounts account.AccountUseCase
	Flights       flights.FlightUseCase
	Bookings      booking.BookingUseCase
	Tokens        *auth.TokenIssuer
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails. Shutdown drains in-flight requests for up to 5 seconds.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, svc Services) error {
	engine := newEngine(cfg, log, svc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	log.Info("http server started", zap.String("address", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newEngine(cfg *config.Config, log *zap.Logger, svc Services) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), accessLog(log))

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// The three route groups mirror the legacy controller paths, prefix case
	// included; old clients depend on them.
	api.NewAdminHandler(svc.AdminAccounts, svc.Tokens, log).Register(engine.Group("/Api/BookToFly"))
	api.NewUserHandler(svc.UserAccounts, svc.Bookings, svc.Tokens, log).Register(engine.Group("/api/UserController"))
	api.NewFlightHandler(svc.Flights, svc.Tokens, log).Register(engine.Group("/api/FlightDetailsController"))

	if cfg.HTTP.SwaggerDir != "" {
		engine.StaticFS("/swagger-spec", http.Dir(cfg.HTTP.SwaggerDir))
		engine.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger-spec/openapi.json"),
		)))
	}

	return engine
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
