package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	httpadp "wealthpath-finance/internal/adapter/http"
	idemp "wealthpath-finance/internal/adapter/middleware"
	"wealthpath-finance/internal/adapter/repository/mysql"
	"wealthpath-finance/internal/adapter/repository/rediscache"
	"wealthpath-finance/internal/config"
	"wealthpath-finance/internal/infrastructure/cache"
	"wealthpath-finance/internal/infrastructure/db"
	"wealthpath-finance/internal/infrastructure/logging"
	"wealthpath-finance/internal/usecase/calculator"
	"wealthpath-finance/internal/usecase/debt"
)

func main() {
	// optional in production
	_ = godotenv.Load()

	cfg := config.Load()
	root := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(root)
	log := logging.Component(root, logging.ComponentApp)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Error("database unavailable", "driver", cfg.DBDriver, "err", err)
		os.Exit(1)
	}
	if err := mysql.AutoMigrate(gdb); err != nil {
		log.Error("migration failed", "err", err)
		os.Exit(1)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Error("database handle", "err", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	checks := map[string]httpadp.Check{"db": sqlDB.PingContext}

	var (
		resultCache calculator.ResultCache
		idempotency echo.MiddlewareFunc
	)
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Error("redis unavailable", "addr", cfg.RedisAddr, "err", err)
			os.Exit(1)
		}
		defer rdb.Close()
		resultCache = rediscache.NewResultCache(rdb)
		idempotency = idemp.Idempotency(rdb, cfg.IdempotencyTTL(), logging.Component(root, logging.ComponentCache))
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		log.Warn("REDIS_ADDR not set: result cache and idempotency disabled")
	}

	calcUC := calculator.NewUsecase(resultCache, cfg.CacheTTL(), logging.Component(root, logging.ComponentCalculator))
	debtUC := debt.NewUsecase(mysql.NewDebtRepository(gdb), mysql.NewPaymentRepository(gdb), mysql.NewGormUoW(gdb), calcUC)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Recover(), logging.RequestLogger(root))
	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimitRPS))))
	}

	handlerLog := logging.Component(root, logging.ComponentHTTP)
	httpadp.Register(e,
		httpadp.NewHandler(checks),
		httpadp.NewCalculatorHandler(calcUC, handlerLog),
		httpadp.NewDebtHandler(debtUC, calcUC, logging.Component(root, logging.ComponentDebt)),
		idempotency,
	)

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", "addr", addr, "db", cfg.DBDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	log.Info("bye")
}
