package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"stefan-booking/internal/config"
	"stefan-booking/internal/metrics"
	"stefan-booking/internal/middleware"
	"stefan-booking/internal/models"
	"stefan-booking/internal/utils"
	"stefan-booking/internal/validation"
)

type BookingStore interface {
	Append(ctx context.Context, booking models.Booking) error
	List(ctx context.Context) ([]models.Booking, error)
}

type BookingMailer interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) (string, error)
}

type Server struct {
	Cfg     *config.Config
	Store   BookingStore
	Val     *validation.Validator
	Log     *slog.Logger
	Mailer  BookingMailer
	Metrics *metrics.Metrics
	IDs     *utils.IDGenerator
	Now     func() time.Time

	dispatches sync.WaitGroup
}

// NewServer wires a Server. mailer may be nil, which disables dispatch.
func NewServer(cfg *config.Config, store BookingStore, mailer BookingMailer, log *slog.Logger, m *metrics.Metrics) *Server {
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		Cfg:     cfg,
		Store:   store,
		Val:     validation.New(),
		Log:     log,
		Mailer:  mailer,
		Metrics: m,
		IDs:     utils.NewIDGenerator(nil),
		Now:     time.Now,
	}
}

// WaitForDispatches blocks until in-flight confirmation emails finish or
// ctx is done.
func (s *Server) WaitForDispatches(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.dispatches.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
