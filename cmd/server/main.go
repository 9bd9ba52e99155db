package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialhub/internal/pkg/config"
	"socialhub/internal/pkg/middleware"
	"socialhub/internal/pkg/registry"
	"socialhub/internal/pkg/seed"
	"socialhub/pkg/logger"

	feedrepo "socialhub/internal/domain/feed/repository"
	messagingrepo "socialhub/internal/domain/messaging/repository"
	notificationrepo "socialhub/internal/domain/notification/repository"
	userrepo "socialhub/internal/domain/user/repository"

	_ "socialhub/internal/domain/common"
	_ "socialhub/internal/domain/feed"
	_ "socialhub/internal/domain/messaging"
	_ "socialhub/internal/domain/notification"
	_ "socialhub/internal/domain/search"
	_ "socialhub/internal/domain/user"
)

func main() {
	config.LoadConfig()
	cfg := config.GlobalConfig

	if err := logger.Init(cfg.App.Debug); err != nil {
		panic(err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.Server.Mode)

	// Bootstrap the in-memory stores from the seed dataset.
	dataset := seed.Default()
	users := userrepo.NewUserRepository(dataset.Users)
	feed := feedrepo.NewFeedRepository(dataset.Posts, dataset.CommentsByPost)
	messaging := messagingrepo.NewMessagingRepository(dataset.Conversations, dataset.MessagesByConversation)
	notifications := notificationrepo.NewNotificationRepository(dataset.Notifications)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(cors.Default())
	r.Use(middleware.SessionMiddleware(users, cfg.Session.UserID))

	ctx := &registry.ModuleContext{
		Router:        r,
		Users:         users,
		Feed:          feed,
		Messaging:     messaging,
		Notifications: notifications,
		Latency:       cfg.Engine.SimulatedLatency(),
	}
	if err := registry.InitModules(ctx); err != nil {
		logger.Error("module init failed", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening",
			zap.String("port", cfg.Server.Port),
			zap.String("session_user", cfg.Session.UserID),
			zap.Duration("simulated_latency", cfg.Engine.SimulatedLatency()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
