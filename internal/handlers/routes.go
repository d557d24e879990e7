package handlers

import (
	"net/http"
	"time"

	"stefan-booking/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Routes builds the HTTP surface. limiter may be nil.
func (s *Server) Routes(origins []string, limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	if s.Cfg != nil && s.Cfg.TrustProxyHeaders {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.Log, s.Metrics))
	r.Use(middleware.Recover(s.Log))
	r.Use(middleware.CORS(origins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	registerAPIRoutes := func(api chi.Router) {
		api.With(limiter.Middleware).Post("/book", s.CreateBooking)
		api.Get("/bookings", s.ListBookings)
		api.Get("/bookings/export", s.ExportBookings)
		api.Get("/health", s.Health)
	}

	// /api/... is what the booking form calls; /api/v1/... is the versioned alias.
	r.Route("/api", registerAPIRoutes)
	r.Route("/api/v1", registerAPIRoutes)

	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	r.Get("/", s.LandingPage)
	r.Get("/stefan-booking", s.BookingPage)
	r.Handle("/*", s.StaticFiles())

	return r
}
