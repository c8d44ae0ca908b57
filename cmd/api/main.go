package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "rentify-backend/internal/adapter/http"
	"rentify-backend/internal/adapter/middleware"
	"rentify-backend/internal/adapter/repository/mysql"
	"rentify-backend/internal/config"
	"rentify-backend/internal/domain/credential"
	"rentify-backend/internal/infrastructure/cache"
	"rentify-backend/internal/infrastructure/db"
	"rentify-backend/internal/usecase/auth"
	"rentify-backend/internal/usecase/borrow"
	ucFavorite "rentify-backend/internal/usecase/favorite"
	ucHistory "rentify-backend/internal/usecase/history"
	ucItem "rentify-backend/internal/usecase/item"
	ucUser "rentify-backend/internal/usecase/user"
	"rentify-backend/pkg/logger"
	"rentify-backend/pkg/token"
)

func main() {
	cfg, err := config.Load(os.Getenv("RENTIFY_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.DB.ConnMaxIdleTime,
		LogLevel:        cfg.DB.LogLevel,
	}, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("underlying sql.DB", zap.Error(err))
	}
	if cfg.DB.AutoMigrate {
		if err := db.RunMigrations(sqlDB, log); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
	}

	// Redis is optional: without it the idempotency middleware is not mounted.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = cache.OpenRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("redis unavailable, idempotency keys disabled", zap.Error(err))
			rdb = nil
		}
	}

	e, resolver := newServer(cfg, gdb, rdb, log)

	go func() {
		addr := ":" + strconv.Itoa(cfg.Server.Port)
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if err := resolver.Drain(ctx); err != nil {
		log.Warn("credential upgrades still running at shutdown", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	_ = sqlDB.Close()
	log.Info("stopped")
}

// newServer wires repositories, usecases and handlers onto a fresh Echo.
func newServer(cfg *config.Config, gdb *gorm.DB, rdb *redis.Client, log *zap.Logger) (*echo.Echo, *auth.Resolver) {
	if log == nil {
		log = zap.NewNop()
	}
	items := mysql.NewItemRepository(gdb)
	requests := mysql.NewBorrowRequestRepository(gdb)
	people := mysql.NewPrincipalRepository(gdb)
	verifier := credential.NewVerifier(
		credential.WithCost(cfg.Auth.BcryptCost),
		credential.WithNullCredential(cfg.Auth.AllowNullCredential),
	)
	resolver := auth.NewResolver(people, verifier, log)

	var (
		tokens       httpadp.TokenIssuer
		requireToken echo.MiddlewareFunc
	)
	if signer := token.NewSigner(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL); signer != nil {
		tokens = signer
		requireToken = middleware.RequireToken(signer)
	}

	checks := map[string]httpadp.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	var idem echo.MiddlewareFunc
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		idem = middleware.Idempotency(rdb, cfg.Redis.IdempotencyTTL, log)
	}

	h := httpadp.Handlers{
		Health:    httpadp.NewHandler(checks),
		Borrow:    httpadp.NewBorrowHandler(borrow.NewUsecase(items, requests, mysql.NewGormUoW(gdb), log)),
		Auth:      httpadp.NewAuthHandler(resolver, auth.NewSignup(people, verifier, log), tokens),
		Items:     httpadp.NewItemHandler(ucItem.NewUsecase(items)),
		Favorites: httpadp.NewFavoriteHandler(ucFavorite.NewUsecase(mysql.NewFavoriteRepository(gdb), items, log)),
		History:   httpadp.NewHistoryHandler(ucHistory.NewUsecase(mysql.NewHistoryRepository(gdb), log)),
		Users:     httpadp.NewUserHandler(ucUser.NewUsecase(people)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.Recover(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: cfg.Server.CORSOrigins,
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.HeaderIdempotencyKey},
		}),
	)
	httpadp.Register(e, h, idem, requireToken)
	return e, resolver
}
