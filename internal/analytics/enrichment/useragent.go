package enrichment

import (
	"go-shortlink/internal/analytics/domain"

	ua "github.com/mileusna/useragent"
)

const (
	DeviceBot     = "Bot"
	DeviceTablet  = "Tablet"
	DeviceMobile  = "Mobile"
	DeviceDesktop = "Desktop"
)

// DeviceDetector classifies User-Agent strings.
type DeviceDetector struct{}

func NewDeviceDetector() *DeviceDetector {
	return &DeviceDetector{}
}

// DetectDevice checks bots first so crawlers never count as a device class.
func (d *DeviceDetector) DetectDevice(userAgent string) string {
	if userAgent == "" {
		return domain.Unknown
	}

	parsed := ua.Parse(userAgent)
	switch {
	case parsed.Bot:
		return DeviceBot
	case parsed.Tablet:
		return DeviceTablet
	case parsed.Mobile:
		return DeviceMobile
	case parsed.Desktop:
		return DeviceDesktop
	default:
		return domain.Unknown
	}
}
