package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/thesrcielos/TypingSite/api/middleware"
	v1 "github.com/thesrcielos/TypingSite/api/v1"
	"github.com/thesrcielos/TypingSite/internal/config"
	"github.com/thesrcielos/TypingSite/internal/game"
	"github.com/thesrcielos/TypingSite/internal/logger"
	"github.com/thesrcielos/TypingSite/internal/session"
	"github.com/thesrcielos/TypingSite/internal/user"
	"github.com/thesrcielos/TypingSite/pkg/db"
)

const shutdownTimeout = 10 * time.Second

func main() {
	boot := logger.New(0)
	if err := config.LoadDotEnv(); err != nil {
		boot.Warn("file .env not found, using system values")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		boot.Fatal("invalid configuration", "error", err)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conns, err := db.Init(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect to storage", "error", err)
	}
	defer func() {
		if err := conns.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	if err := db.Migrate(ctx, conns.DB); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	sessions := session.NewRedisStore(conns.Rdb, cfg.Session.TTL)
	tokens := session.NewTokens(cfg.Session.Secret, cfg.Session.MaxAge)
	userService := user.NewUserService(user.NewUserRepository(conns.DB), sessions, tokens, cfg.BcryptCost, log)
	gameService := game.NewGameService(game.NewGameRepository(conns.DB))

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api_middleware.ErrorHandler(log)
	e.IPExtractor, err = api_middleware.IPExtractor(cfg.TrustedProxies)
	if err != nil {
		log.Fatal("invalid trusted proxies", "error", err)
	}

	e.Use(api_middleware.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORS.Origins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, api_middleware.SessionHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.CORS.Origins),
	}))

	v1.RegisterHealthRoutes(e, conns, log)

	api := e.Group("/api")
	v1.RegisterUserRoutes(api,
		v1.NewUserHandler(userService, v1.CookieConfig{MaxAge: cfg.Session.MaxAge, Secure: cfg.Session.CookieSecure}),
		api_middleware.RateLimit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)
	v1.RegisterGameRoutes(api, v1.NewGameHandler(gameService), userService)

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
