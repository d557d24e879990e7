package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stefan-booking/internal/config"
	"stefan-booking/internal/handlers"
	"stefan-booking/internal/metrics"
	"stefan-booking/internal/middleware"
	"stefan-booking/internal/notifications"
	"stefan-booking/internal/ratelimit"
	"stefan-booking/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := setupLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var counter ratelimit.Counter = ratelimit.NewMemory()
	if cfg.RedisURL != "" {
		redisCounter, err := ratelimit.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			logger.Error("redis config invalid", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCounter.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCounter.Close()
		logger.Info("redis connected (rate limit counters)")
		counter = redisCounter
	}

	var mailer handlers.BookingMailer
	if client := notifications.NewBrevoClient(notifications.BrevoOptions{
		APIKey:      cfg.Brevo.APIKey,
		SenderEmail: cfg.Brevo.SenderEmail,
		SenderName:  cfg.Brevo.SenderName,
		ReplyTo:     cfg.Brevo.ReplyTo,
		Sandbox:     cfg.Brevo.Sandbox,
		Endpoint:    cfg.Brevo.Endpoint,
	}); client != nil {
		mailer = client
		logger.Info("brevo mailer enabled", slog.String("sender", client.SenderEmail()), slog.Bool("sandbox", cfg.Brevo.Sandbox))
	} else {
		logger.Warn("brevo mailer disabled: BREVO_API_KEY not set")
	}

	m := metrics.New()
	server := handlers.NewServer(cfg, store.NewMemory(), mailer, logger, m)
	limiter := middleware.NewRateLimiter(counter, cfg.RateLimitBookings, cfg.RateLimitWindow(), logger, m)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Routes(cfg.FrontendOrigins, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", srv.Addr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	if err := server.WaitForDispatches(shutdownCtx); err != nil {
		logger.Warn("confirmation emails still in flight at shutdown", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Env == config.EnvProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
