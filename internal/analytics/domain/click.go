package domain

import "time"

// Unknown is stored when an enrichment value cannot be derived.
const Unknown = "Unknown"

// Click is one recorded redirect. Clicks are append-only.
type Click struct {
	ID            int64
	ShortCode     string
	ClickedAt     time.Time
	UserAgent     string
	IPAddress     string
	Referer       string
	CountryCode   string
	DeviceType    string
	TrafficSource string
}

// ClickInput is an unvalidated click as reported by the redirect service.
// Empty strings mean absent; a nil Timestamp means now.
type ClickInput struct {
	ShortCode string
	UserAgent string
	IPAddress string
	Referer   string
	Timestamp *time.Time
}

// Link is the analytics replica of a ShortLink.
type Link struct {
	ShortCode   string
	OriginalURL string
	CreatedAt   time.Time
}

// LinkWithClicks is a link ranked by popularity.
type LinkWithClicks struct {
	Link
	ClickCount int64
}

// Stats is derived per query from a link and its clicks.
type Stats struct {
	ShortCode     string
	OriginalURL   string
	CreatedAt     time.Time
	ClickCount    int64
	LastClickedAt *time.Time
}

// GroupCount is a count for one value of an enrichment dimension.
type GroupCount struct {
	Value string
	Count int64
}

// BreakdownItem is a GroupCount with its share of the total, in percent.
type BreakdownItem struct {
	Value      string
	Count      int64
	Percentage float64
}

// Summary breaks a link's clicks down by enrichment dimension.
type Summary struct {
	ShortCode      string
	TotalClicks    int64
	Countries      []BreakdownItem
	DeviceTypes    []BreakdownItem
	TrafficSources []BreakdownItem
}
