package http

import (
	"errors"
	"net/http"

	"go-shortlink/internal/redirect/domain"
	"go-shortlink/internal/redirect/usecase"
	"go-shortlink/internal/shared/events"
	"go-shortlink/internal/shared/httpx"
	"go-shortlink/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler serves redirects.
type Handler struct {
	resolver *usecase.Resolver
	tracker  *usecase.ClickTracker
	status   int
	logger   *zap.Logger
}

// NewHandler creates a Handler answering with status (301 or 302). tracker
// may be nil to disable click recording.
func NewHandler(resolver *usecase.Resolver, tracker *usecase.ClickTracker, status int, logger *zap.Logger) *Handler {
	if status != http.StatusMovedPermanently {
		status = http.StatusFound
	}
	return &Handler{
		resolver: resolver,
		tracker:  tracker,
		status:   status,
		logger:   logger,
	}
}

// Redirect handles GET /{code} and GET /r/{code}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	url, err := h.resolver.Resolve(r.Context(), code)
	if err != nil {
		h.writeError(w, r, code, err)
		return
	}

	// Capture request data before the response is written. Header values
	// Analytics would reject are trimmed so the click itself is not lost.
	event := events.NewClickEvent(code, httpx.ClientIP(r), r.UserAgent(), r.Referer()).Sanitized()

	http.Redirect(w, r, url, h.status)

	h.tracker.TrackClick(event)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, code string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCode):
		httpx.WriteProblem(w, problemdetails.InvalidCode())
	case errors.Is(err, domain.ErrLinkNotFound):
		httpx.WriteProblem(w, problemdetails.LinkNotFound(code))
	default:
		h.logger.Error("redirect failed",
			zap.String("short_code", code),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		httpx.WriteProblem(w, problemdetails.Internal())
	}
}
