package events

import (
	"net"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Topic and subject names shared by publishers and subscribers.
const (
	PubSubName         = "pubsub"
	ClickTopic         = "clicks"
	LinkCreatedTopic   = "links"
	ClickSubject       = "clicks.recorded"
	LinkCreatedSubject = "links.created"
)

// MaxUserAgentLength is the longest user agent, in characters, the
// Analytics Service accepts.
const MaxUserAgentLength = 500

// ClickEvent represents one successful redirect.
// Published by the Redirect Service, consumed by the Analytics Service.
type ClickEvent struct {
	EventID   string    `json:"eventId"`
	ShortCode string    `json:"shortCode"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Referer   string    `json:"referer,omitempty"`
}

// NewClickEvent stamps a click with a fresh event ID and the current UTC time.
func NewClickEvent(shortCode, ipAddress, userAgent, referer string) ClickEvent {
	return ClickEvent{
		EventID:   uuid.NewString(),
		ShortCode: shortCode,
		Timestamp: time.Now().UTC(),
		IPAddress: ipAddress,
		UserAgent: userAgent,
		Referer:   referer,
	}
}

// Sanitized returns a copy that the Analytics Service will accept: the user
// agent is cut to MaxUserAgentLength characters, and a referer that is not an
// absolute URL or an address that is not an IP is blanked.
func (e ClickEvent) Sanitized() ClickEvent {
	if utf8.RuneCountInString(e.UserAgent) > MaxUserAgentLength {
		e.UserAgent = string([]rune(e.UserAgent)[:MaxUserAgentLength])
	}
	if e.Referer != "" && !IsAbsoluteURL(e.Referer) {
		e.Referer = ""
	}
	if e.IPAddress != "" && net.ParseIP(e.IPAddress) == nil {
		e.IPAddress = ""
	}
	return e
}

// IsAbsoluteURL reports whether raw parses as a URL with a scheme and host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.IsAbs() && u.Host != ""
}

// Subject maps a pub/sub topic to its NATS subject.
func Subject(topic string) string {
	switch topic {
	case ClickTopic:
		return ClickSubject
	case LinkCreatedTopic:
		return LinkCreatedSubject
	default:
		return topic
	}
}

// Route maps a pub/sub topic to the Analytics Service endpoint that accepts
// it as a CloudEvent.
func Route(topic string) string {
	switch topic {
	case ClickTopic:
		return "/events/click"
	case LinkCreatedTopic:
		return "/events/link"
	default:
		return "/events/" + topic
	}
}
