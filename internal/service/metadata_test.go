package service

import (
	"testing"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Relay_service/internal/model"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
}
func TestMetadataExtractor_Extract(t *testing.T) {
	extractor, err := NewMetadataExtractor("Asia/Beirut", fixedClock)
	require.NoError(t, err)
	tests := []struct {
		name          string
		info          model.ClientInfo
		wantAddress   string
		wantUserAgent string
	}{
		{
			name:          "Forwarded header wins verbatim",
			info:          model.ClientInfo{ForwardedFor: "203.0.113.7, 10.0.0.1", RemoteAddr: "10.0.0.1:5555", UserAgent: "curl/8.0"},
			wantAddress:   "203.0.113.7, 10.0.0.1",
			wantUserAgent: "curl/8.0",
		},
		{
			name:          "Connection address without port",
			info:          model.ClientInfo{RemoteAddr: "198.51.100.4:41234", UserAgent: "Mozilla/5.0"},
			wantAddress:   "198.51.100.4",
			wantUserAgent: "Mozilla/5.0",
		},
		{
			name:          "Raw connection address",
			info:          model.ClientInfo{RemoteAddr: "pipe"},
			wantAddress:   "pipe",
			wantUserAgent: Unknown,
		},
		{
			name:          "Nothing known",
			info:          model.ClientInfo{},
			wantAddress:   Unknown,
			wantUserAgent: Unknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := extractor.Extract(tt.info)
			require.Equal(t, tt.wantAddress, meta.Address)
			require.Equal(t, tt.wantUserAgent, meta.UserAgent)
			require.Equal(t, "1/15/2025, 12:00:00 PM", meta.Timestamp)
		})
	}
}
func TestMetadataExtractor_SummerTime(t *testing.T) {
	extractor, err := NewMetadataExtractor("Asia/Beirut", func() time.Time {
		return time.Date(2025, time.July, 4, 21, 30, 5, 0, time.UTC)
	})
	require.NoError(t, err)
	require.Equal(t, "7/5/2025, 12:30:05 AM", extractor.Extract(model.ClientInfo{}).Timestamp)
}
func TestNewMetadataExtractor_BadZone(t *testing.T) {
	_, err := NewMetadataExtractor("Mars/Olympus_Mons", nil)
	require.Error(t, err)
}
