package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "salonmarket/internal/config"
	router "salonmarket/internal/http"
	"salonmarket/internal/http/handlers"
	"salonmarket/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()

	log, err := utils.InitLogger(env.LogLevel, env.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.MySQLDSN())
	if err != nil {
		log.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer intconfig.CloseDB()

	if env.RunMigrations {
		if err := intconfig.RunMigrations(db); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	rdb, err := intconfig.ConnectRedis(env)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	app := handlers.NewApp(env, db, rdb)
	r := router.NewRouter(env, app)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", env.AppAddr), zap.String("discount_policy", env.DiscountPolicy.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
		return
	}

	log.Info("server stopped")
}
