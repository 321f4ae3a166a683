package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"midas_family_server/internal/config"
	dao "midas_family_server/internal/dao/mysql"
	"midas_family_server/internal/handler"
	"midas_family_server/internal/https_server"
	"midas_family_server/internal/infrastructure/logger"
	"midas_family_server/internal/infrastructure/userclient"
	"midas_family_server/internal/service"
	"midas_family_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. config
	conf := config.GetConfig()

	// 2. logging
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger initialized")

	// 3. database + repositories
	repos := dao.Init()
	zap.L().Info("database initialized")

	// 4. JWT verification
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry)

	// 5. external user service client
	users := userclient.NewClient(&conf.UserServiceConfig)

	// 6. services and handlers (dependency injection)
	services := service.NewServices(repos, users)
	handlers := handler.NewHandlers(services)

	// 7. request validation translations
	if err := handler.InitTrans(); err != nil {
		zap.L().Fatal("init validator translations failed", zap.Error(err))
	}

	// 8. HTTP server
	engine := https_server.Init(handlers)
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}

	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
	zap.L().Info("server stopped")
}
