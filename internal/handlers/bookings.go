package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"stefan-booking/internal/export"
	"stefan-booking/internal/httpx"
	"stefan-booking/internal/metrics"
	"stefan-booking/internal/models"
	"stefan-booking/internal/transport"
	"stefan-booking/internal/validation"
)

type CreateBookingRequest struct {
	Name     httpx.LooseString `json:"name" validate:"required"`
	Email    httpx.LooseString `json:"email" validate:"omitempty,mailshape"`
	Phone    httpx.LooseString `json:"phone" validate:"required"`
	Date     httpx.LooseString `json:"date" validate:"required"`
	Time     httpx.LooseString `json:"time" validate:"required"`
	Duration httpx.LooseInt    `json:"duration" validate:"required"`
	Message  httpx.LooseString `json:"message"`
}

type CreateBookingResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	BookingID string         `json:"bookingId"`
	Booking   models.Booking `json:"booking"`
}

type ListBookingsResponse struct {
	Bookings []models.Booking `json:"bookings"`
}

const dispatchTimeout = 8 * time.Second

func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateBookingRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("bookings create: invalid json", slog.String("error", err.Error()))
		s.Metrics.BookingRejections.WithLabelValues(metrics.RejectInvalidJSON).Inc()
		transport.WriteError(w, r, http.StatusBadRequest, transport.MsgInvalidRequest, nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		errs := s.Val.ValidationErrors(err)
		if errs == nil {
			log.Error("bookings create: validator error", slog.String("error", err.Error()))
			s.Metrics.BookingRejections.WithLabelValues(metrics.RejectInternal).Inc()
			transport.WriteError(w, r, http.StatusInternalServerError, transport.MsgInternal, nil)
			return
		}
		details := httpx.ValidationDetails(errs)
		if validation.HasTag(errs, "required") {
			log.Warn("bookings create: missing fields", slog.Any("fields", details))
			s.Metrics.BookingRejections.WithLabelValues(metrics.RejectMissingFields).Inc()
			transport.WriteError(w, r, http.StatusBadRequest, transport.MsgMissingFields, details)
			return
		}
		log.Warn("bookings create: invalid email")
		s.Metrics.BookingRejections.WithLabelValues(metrics.RejectInvalidEmail).Inc()
		transport.WriteError(w, r, http.StatusBadRequest, transport.MsgInvalidEmail, details)
		return
	}

	if !req.Duration.Parsed {
		log.Warn("bookings create: duration is not a number, stored as 0", slog.String("duration", req.Duration.Raw))
	}

	booking := models.Booking{
		ID:        s.IDs.Next(),
		Name:      req.Name.String(),
		Email:     req.Email.String(),
		Phone:     req.Phone.String(),
		Date:      req.Date.String(),
		Time:      req.Time.String(),
		Duration:  req.Duration.Value,
		Message:   req.Message.String(),
		CreatedAt: s.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.Store.Append(r.Context(), booking); err != nil {
		log.Error("bookings create: store error", slog.String("error", err.Error()))
		s.Metrics.BookingRejections.WithLabelValues(metrics.RejectInternal).Inc()
		transport.WriteError(w, r, http.StatusInternalServerError, transport.MsgInternal, nil)
		return
	}
	s.Metrics.BookingsCreated.Inc()
	s.Metrics.BookingsStored.Inc()

	log.Info("bookings create: stored",
		slog.String("booking_id", booking.ID),
		slog.String("date", booking.Date),
		slog.String("time", booking.Time),
		slog.Int("duration", booking.Duration),
	)

	switch {
	case booking.Email == "":
		log.Warn("bookings email: no address given, confirmation skipped", slog.String("booking_id", booking.ID))
		s.Metrics.EmailDispatch.WithLabelValues(metrics.DispatchSkippedNoEmail).Inc()
	case s.Mailer == nil:
		log.Warn("bookings email: brevo api key not set, simulating locally", slog.String("booking_id", booking.ID))
		log.Info("bookings email: would send confirmation",
			slog.String("booking_id", booking.ID),
			slog.String("email", booking.Email),
		)
		s.Metrics.EmailDispatch.WithLabelValues(metrics.DispatchSkippedNoKey).Inc()
	default:
		s.dispatches.Add(1)
		go func(b models.Booking) {
			defer s.dispatches.Done()
			s.sendBookingConfirmationEmail(log, b)
		}(booking)
	}

	transport.WriteJSON(w, r, http.StatusOK, CreateBookingResponse{
		Success:   true,
		Message:   transport.MsgBookingCreated,
		BookingID: booking.ID,
		Booking:   booking,
	})
}

// sendBookingConfirmationEmail runs detached from the request; its outcome
// is only logged.
func (s *Server) sendBookingConfirmationEmail(log *slog.Logger, booking models.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	messageID, err := s.Mailer.SendBookingConfirmation(ctx, booking)
	if err != nil {
		s.Metrics.EmailDispatch.WithLabelValues(metrics.DispatchFailed).Inc()
		log.Warn("bookings email: send failed",
			slog.String("booking_id", booking.ID),
			slog.String("email", booking.Email),
			slog.String("error", err.Error()),
		)
		return
	}

	s.Metrics.EmailDispatch.WithLabelValues(metrics.DispatchSent).Inc()
	log.Info("bookings email: sent",
		slog.String("booking_id", booking.ID),
		slog.String("email", booking.Email),
		slog.String("message_id", messageID),
	)
}

func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	bookings, err := s.Store.List(r.Context())
	if err != nil {
		log.Error("bookings list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, r, http.StatusInternalServerError, transport.MsgInternal, nil)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	log.Debug("bookings list: ok", slog.Int("count", len(bookings)))
	transport.WriteJSON(w, r, http.StatusOK, ListBookingsResponse{Bookings: bookings})
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) ExportBookings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	bookings, err := s.Store.List(r.Context())
	if err != nil {
		log.Error("bookings export: store error", slog.String("error", err.Error()))
		transport.WriteError(w, r, http.StatusInternalServerError, transport.MsgInternal, nil)
		return
	}

	payload, err := export.BookingsXLSX(bookings)
	if err != nil {
		log.Error("bookings export: workbook error", slog.String("error", err.Error()))
		transport.WriteError(w, r, http.StatusInternalServerError, transport.MsgInternal, nil)
		return
	}

	log.Info("bookings export: ok", slog.Int("count", len(bookings)))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
