package http

import (
	"fmt"
	"time"

	"go-shortlink/internal/analytics/domain"

	"github.com/samber/lo"
)

// TrackRequest is the body of POST /api/track. A ClickEvent posted by the
// Redirect Service decodes into it as well.
type TrackRequest struct {
	ShortCode string     `json:"shortCode"`
	UserAgent string     `json:"userAgent,omitempty"`
	IPAddress string     `json:"ipAddress,omitempty"`
	Referer   string     `json:"referer,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type TrackResponse struct {
	ClickID   int64     `json:"clickId"`
	ShortCode string    `json:"shortCode"`
	Timestamp time.Time `json:"timestamp"`
}

type StatsResponse struct {
	ShortCode     string     `json:"shortCode"`
	OriginalURL   string     `json:"originalUrl"`
	CreatedAt     time.Time  `json:"createdAt"`
	ClickCount    int64      `json:"clickCount"`
	LastClickedAt *time.Time `json:"lastClickedAt"`
}

type ClickResponse struct {
	ID            int64     `json:"id"`
	ShortCode     string    `json:"shortCode"`
	ClickedAt     time.Time `json:"clickedAt"`
	UserAgent     string    `json:"userAgent,omitempty"`
	IPAddress     string    `json:"ipAddress,omitempty"`
	Referer       string    `json:"referer,omitempty"`
	CountryCode   string    `json:"countryCode"`
	DeviceType    string    `json:"deviceType"`
	TrafficSource string    `json:"trafficSource"`
}

type HistoryResponse struct {
	ShortCode string          `json:"shortCode"`
	Clicks    []ClickResponse `json:"clicks"`
	Total     int             `json:"total"`
}

type TopLinkResponse struct {
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	ClickCount  int64     `json:"clickCount"`
}

type TopResponse struct {
	TopURLs []TopLinkResponse `json:"topUrls"`
	Limit   int               `json:"limit"`
}

// BreakdownResponse is one row of a summary breakdown.
type BreakdownResponse struct {
	Value      string `json:"value"`
	Count      int64  `json:"count"`
	Percentage string `json:"percentage"` // "58.3%"
}

type SummaryResponse struct {
	ShortCode      string              `json:"shortCode"`
	TotalClicks    int64               `json:"totalClicks"`
	Countries      []BreakdownResponse `json:"countries"`
	DeviceTypes    []BreakdownResponse `json:"deviceTypes"`
	TrafficSources []BreakdownResponse `json:"trafficSources"`
}

func toStatsResponse(s *domain.Stats) StatsResponse {
	return StatsResponse{
		ShortCode:     s.ShortCode,
		OriginalURL:   s.OriginalURL,
		CreatedAt:     s.CreatedAt,
		ClickCount:    s.ClickCount,
		LastClickedAt: s.LastClickedAt,
	}
}

func toHistoryResponse(code string, clicks []domain.Click) HistoryResponse {
	return HistoryResponse{
		ShortCode: code,
		Clicks: lo.Map(clicks, func(c domain.Click, _ int) ClickResponse {
			return ClickResponse{
				ID:            c.ID,
				ShortCode:     c.ShortCode,
				ClickedAt:     c.ClickedAt,
				UserAgent:     c.UserAgent,
				IPAddress:     c.IPAddress,
				Referer:       c.Referer,
				CountryCode:   c.CountryCode,
				DeviceType:    c.DeviceType,
				TrafficSource: c.TrafficSource,
			}
		}),
		Total: len(clicks),
	}
}

func toTopResponse(links []domain.LinkWithClicks, limit int) TopResponse {
	return TopResponse{
		TopURLs: lo.Map(links, func(l domain.LinkWithClicks, _ int) TopLinkResponse {
			return TopLinkResponse{
				ShortCode:   l.ShortCode,
				OriginalURL: l.OriginalURL,
				CreatedAt:   l.CreatedAt,
				ClickCount:  l.ClickCount,
			}
		}),
		Limit: limit,
	}
}

func toSummaryResponse(s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		ShortCode:      s.ShortCode,
		TotalClicks:    s.TotalClicks,
		Countries:      toBreakdown(s.Countries),
		DeviceTypes:    toBreakdown(s.DeviceTypes),
		TrafficSources: toBreakdown(s.TrafficSources),
	}
}

func toBreakdown(items []domain.BreakdownItem) []BreakdownResponse {
	return lo.Map(items, func(item domain.BreakdownItem, _ int) BreakdownResponse {
		return BreakdownResponse{
			Value:      item.Value,
			Count:      item.Count,
			Percentage: formatPercentage(item.Percentage),
		}
	})
}

// formatPercentage formats a float percentage to "XX.X%" format
func formatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
