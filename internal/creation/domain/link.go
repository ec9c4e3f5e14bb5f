package domain

import "time"

// Link is a persisted ShortLink. OriginalURL never changes after creation.
type Link struct {
	ID          int64     `json:"-"`
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
