package http

import (
	"time"

	"go-shortlink/internal/creation/domain"
)

// ShortenRequest is the body of POST /api/shorten.
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse is returned for both new and deduplicated links.
type ShortenResponse struct {
	ShortURL    string    `json:"shortUrl"`
	OriginalURL string    `json:"originalUrl"`
	ShortCode   string    `json:"shortCode"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LinkResponse is the body of GET /api/url/{code}.
type LinkResponse struct {
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toLinkResponse(l *domain.Link) LinkResponse {
	return LinkResponse{
		ShortCode:   l.ShortCode,
		OriginalURL: l.OriginalURL,
		CreatedAt:   l.CreatedAt,
	}
}
