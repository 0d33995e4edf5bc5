package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starmaker/coaching-api/api"
	"starmaker/coaching-api/config"
	"starmaker/coaching-api/db"
	"starmaker/coaching-api/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	database, err := db.New()
	if err != nil {
		panic(err)
	}

	var mailer service.Mailer
	if viper.GetString("mail.host") != "" && viper.GetString("mail.username") != "" {
		mailer = service.NewSMTPMailer()
	} else {
		mailer = service.LogMailer{}
	}

	a, err := api.NewRouter(database, mailer)
	if err != nil {
		panic(err)
	}

	// NewRouter installed the global logger, warnings land somewhere now
	if _, ok := mailer.(service.LogMailer); ok {
		zap.L().Warn("No mail transport configured, OTP codes will be logged instead of sent")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service.OtpCleanup(ctx, time.Minute, database)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", viper.GetInt("host.port")),
		Handler: a.Router,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("addr", srv.Addr))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down")

	// Stop the cleanup ticker before the DB goes away
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}

	zap.L().Info("Server stopped")
}
