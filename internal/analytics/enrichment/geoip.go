// Package enrichment derives country, device and traffic source for a click.
// Every resolver degrades to a fixed fallback value instead of failing.
package enrichment

import (
	"net"

	"go-shortlink/internal/analytics/domain"

	geoip2 "github.com/oschwald/geoip2-golang"
)

// GeoIP resolves IP addresses to ISO country codes from a MaxMind database.
type GeoIP struct {
	db *geoip2.Reader
}

// OpenGeoIP opens the GeoLite2/GeoIP2 Country database at path.
func OpenGeoIP(path string) (*GeoIP, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	return &GeoIP{db: db}, nil
}

func (g *GeoIP) Close() error {
	return g.db.Close()
}

// ResolveCountry returns domain.Unknown for private, malformed or unlisted addresses.
func (g *GeoIP) ResolveCountry(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsPrivate() || parsed.IsLoopback() {
		return domain.Unknown
	}

	record, err := g.db.Country(parsed)
	if err != nil || record.Country.IsoCode == "" {
		return domain.Unknown
	}
	return record.Country.IsoCode
}

// NoGeoIP is used when no database is configured.
type NoGeoIP struct{}

func (NoGeoIP) ResolveCountry(string) string { return domain.Unknown }
