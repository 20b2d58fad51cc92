package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/tlcpharma/dashboard-backend/internal/dateutil"
)

// ErrResponse is the JSON error body.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	ErrorText  string `json:"error,omitempty"`
}

// Render implements render.Renderer.
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func errInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      err.Error(),
	}
}

// selectedDate resolves the ?date= query parameter, defaulting to the
// pharmacy's latest day with imported data when absent.
func (s *Server) selectedDate(ctx context.Context, r *http.Request, pharmacyID string) (time.Time, error) {
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := dateutil.ParseDate(raw)
		if err != nil {
			return time.Time{}, err
		}
		return date, nil
	}
	date, err := s.svc.LatestDate(ctx, pharmacyID)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolve latest date: %w", err)
	}
	return date, nil
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	pharmacyID := chi.URLParam(r, "pharmacy")
	date, err := s.selectedDate(r.Context(), r, pharmacyID)
	if err != nil {
		s.renderDateError(w, r, err)
		return
	}
	overview, err := s.svc.DailyOverview(r.Context(), pharmacyID, date)
	if err != nil {
		s.log.Error("daily overview failed", zap.String("pharmacy", pharmacyID), zap.Error(err))
		render.Render(w, r, errInternal(err))
		return
	}
	render.Respond(w, r, overview)
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	pharmacyID := chi.URLParam(r, "pharmacy")
	date, err := s.selectedDate(r.Context(), r, pharmacyID)
	if err != nil {
		s.renderDateError(w, r, err)
		return
	}
	overview, err := s.svc.MonthlyOverview(r.Context(), pharmacyID, date)
	if err != nil {
		s.log.Error("monthly overview failed", zap.String("pharmacy", pharmacyID), zap.Error(err))
		render.Render(w, r, errInternal(err))
		return
	}
	render.Respond(w, r, overview)
}

func (s *Server) handleYearly(w http.ResponseWriter, r *http.Request) {
	pharmacyID := chi.URLParam(r, "pharmacy")
	date, err := s.selectedDate(r.Context(), r, pharmacyID)
	if err != nil {
		s.renderDateError(w, r, err)
		return
	}
	overview, err := s.svc.YearlyOverview(r.Context(), pharmacyID, date)
	if err != nil {
		s.log.Error("yearly overview failed", zap.String("pharmacy", pharmacyID), zap.Error(err))
		render.Render(w, r, errInternal(err))
		return
	}
	render.Respond(w, r, overview)
}

func (s *Server) handleLatestDate(w http.ResponseWriter, r *http.Request) {
	pharmacyID := chi.URLParam(r, "pharmacy")
	date, err := s.svc.LatestDate(r.Context(), pharmacyID)
	if err != nil {
		s.log.Warn("latest date lookup failed", zap.String("pharmacy", pharmacyID), zap.Error(err))
		render.Render(w, r, errInternal(err))
		return
	}
	render.Respond(w, r, map[string]string{"date": dateutil.FormatDate(date)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.Respond(w, r, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	render.Respond(w, r, map[string]string{
		"status":  "ok",
		"service": "pharmacy-dashboard-backend",
	})
}

// renderDateError maps a bad date parameter to 400 and anything else to
// 500.
func (s *Server) renderDateError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, dateutil.ErrInvalidDate) {
		render.Render(w, r, errInvalidRequest(err))
		return
	}
	render.Render(w, r, errInternal(err))
}
