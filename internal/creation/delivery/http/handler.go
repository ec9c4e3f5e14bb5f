package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-shortlink/internal/creation/domain"
	"go-shortlink/internal/creation/usecase"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxBodyBytes leaves room for a 2048 character URL plus JSON framing.
const maxBodyBytes = 8 << 10

// Handler serves the Creation Service API.
type Handler struct {
	service *usecase.LinkService
	logger  *zap.Logger
}

func NewHandler(service *usecase.LinkService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Shorten handles POST /api/shorten
func (h *Handler) Shorten(w http.ResponseWriter, r *http.Request) {
	var req ShortenRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httpx.WriteProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON with a 'url' field",
		))
		return
	}

	if req.URL == "" {
		httpx.WriteProblem(w, problemdetails.NewValidation([]problemdetails.FieldError{
			{Field: "url", Message: "url is required"},
		}))
		return
	}

	link, created, err := h.service.CreateShortLink(r.Context(), req.URL)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.WriteJSON(w, status, ShortenResponse{
		ShortURL:    h.service.ShortURL(link.ShortCode),
		OriginalURL: link.OriginalURL,
		ShortCode:   link.ShortCode,
		CreatedAt:   link.CreatedAt,
	})
}

// GetLink handles GET /api/url/{code}. This is the lookup the other
// services fall back to.
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	link, err := h.service.Lookup(r.Context(), code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLinkResponse(link))
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		httpx.WriteProblem(w, problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidURL,
			"Invalid URL",
			err.Error(),
		))
	case errors.Is(err, domain.ErrInvalidCode):
		httpx.WriteProblem(w, problemdetails.InvalidCode())
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
