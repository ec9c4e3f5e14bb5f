package events

import "time"

// LinkCreatedEvent announces a new mapping.
// Published by the Creation Service, consumed by the Analytics Service to
// keep its link replica current.
type LinkCreatedEvent struct {
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
