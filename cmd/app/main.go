package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Domenick1991/booktofly/config"
	"github.com/Domenick1991/booktofly/internal/auth"
	"github.com/Domenick1991/booktofly/internal/bootstrap"
	"github.com/Domenick1991/booktofly/internal/repository"
	"github.com/Domenick1991/booktofly/internal/service/account"
	"github.com/Domenick1991/booktofly/internal/service/booking"
	"github.com/Domenick1991/booktofly/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	issuer := auth.NewTokenIssuer([]byte(cfg.Auth.Secret), cfg.Auth.Issuer, cfg.Auth.Audience)
	hasher := auth.BcryptHasher{}

	userRepo := repository.NewUserRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	loginTTL := time.Duration(cfg.Auth.LoginTTLSeconds) * time.Second
	resetTTL := time.Duration(cfg.Auth.ResetTTLSeconds) * time.Second

	svc := bootstrap.Services{
		UserAccounts:  account.NewService(userRepo, hasher, issuer, auth.RoleUser, auth.RoleUserChange, loginTTL, resetTTL, logger),
		AdminAccounts: account.NewService(adminRepo, hasher, issuer, auth.RoleAdmin, auth.RoleAdminChange, loginTTL, resetTTL, logger),
		Flights:       flights.NewFlightService(flightRepo, logger),
		Bookings:      booking.NewBookingService(ticketRepo, flightRepo, logger),
		Tokens:        issuer,
	}

	if err := bootstrap.Run(ctx, cfg, logger, svc); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
