package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-shortlink/internal/analytics/domain"
	"go-shortlink/internal/analytics/usecase"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const maxBodyBytes = 8 << 10

// Handler serves the Analytics Service query and tracking API.
type Handler struct {
	service *usecase.AnalyticsService
	logger  *zap.Logger
}

func NewHandler(service *usecase.AnalyticsService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Track handles POST /api/track
func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	var req TrackRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httpx.WriteProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON with a 'shortCode' field",
		))
		return
	}

	click, err := h.service.RecordClick(r.Context(), domain.ClickInput{
		ShortCode: req.ShortCode,
		UserAgent: req.UserAgent,
		IPAddress: req.IPAddress,
		Referer:   req.Referer,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, TrackResponse{
		ClickID:   click.ID,
		ShortCode: click.ShortCode,
		Timestamp: click.ClickedAt,
	})
}

// GetStats handles GET /api/stats/{code}
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toStatsResponse(stats))
}

// GetSummary handles GET /api/stats/{code}/summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// GetHistory handles GET /api/history/{code}?limit&offset
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	limit, ok := h.intParam(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := h.intParam(w, r, "offset")
	if !ok {
		return
	}

	clicks, err := h.service.GetHistory(r.Context(), code, limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toHistoryResponse(code, clicks))
}

// GetTop handles GET /api/top?limit
func (h *Handler) GetTop(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.intParam(w, r, "limit")
	if !ok {
		return
	}

	links, err := h.service.GetTopLinks(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTopResponse(links, usecase.TopLimit(limit)))
}

// intParam reads an optional non-negative integer query parameter. A missing
// parameter is 0, which the service replaces with its default.
func (h *Handler) intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		httpx.WriteProblem(w, problemdetails.NewValidation([]problemdetails.FieldError{
			{Field: name, Message: name + " must be a non-negative integer"},
		}))
		return 0, false
	}
	return v, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCode):
		httpx.WriteProblem(w, problemdetails.InvalidCode())
	case errors.Is(err, domain.ErrInvalidClick):
		httpx.WriteProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Click",
			err.Error(),
		))
	case errors.Is(err, domain.ErrLinkNotFound):
		httpx.WriteProblem(w, problemdetails.LinkNotFound(chi.URLParam(r, "code")))
	default:
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		httpx.WriteProblem(w, problemdetails.Internal())
	}
}
