package service

import (
	"fmt"
	"net"
	"time"
	_ "time/tzdata"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
)

const Unknown = "Unknown"

// TimestampLayout renders times the way en-US locales print them, e.g.
// "3/14/2025, 9:05:07 PM".
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// MetadataExtractor derives client address, user agent and a timestamp in one
// fixed zone. Extract never fails.
type MetadataExtractor struct {
	location *time.Location
	now      func() time.Time
}

func NewMetadataExtractor(timezone string, now func() time.Time) (*MetadataExtractor, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	if now == nil {
		now = time.Now
	}
	return &MetadataExtractor{location: location, now: now}, nil
}

func (m *MetadataExtractor) Extract(info model.ClientInfo) model.Metadata {
	return model.Metadata{
		Address:   clientAddress(info),
		UserAgent: firstNonEmpty(info.UserAgent, Unknown),
		Timestamp: m.now().In(m.location).Format(TimestampLayout),
	}
}

// clientAddress prefers the forwarded-for header verbatim, then the host part
// of the connection address.
func clientAddress(info model.ClientInfo) string {
	if info.ForwardedFor != "" {
		return info.ForwardedFor
	}
	if host, _, err := net.SplitHostPort(info.RemoteAddr); err == nil && host != "" {
		return host
	}
	return firstNonEmpty(info.RemoteAddr, Unknown)
}
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
