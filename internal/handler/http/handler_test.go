package http

import (
	"testing"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewHandler_RateLimitDefaults(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.RateLimit
		wantRate  rate.Limit
		wantBurst int
	}{
		{name: "unset uses defaults", cfg: config.RateLimit{}, wantRate: rate.Limit(config.DefaultRateLimitRPS), wantBurst: config.DefaultRateLimitBurst},
		{name: "configured", cfg: config.RateLimit{RPS: 10, Burst: 20}, wantRate: 10, wantBurst: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := &service.Services{}
			h := NewHandler(svcs, telemetry.NewMetrics(), config.Server{RateLimit: tt.cfg}, logger.Nop())

			require.NotNil(t, h)
			assert.Same(t, svcs, h.services)
			assert.Equal(t, tt.wantRate, h.limiter.rate)
			assert.Equal(t, tt.wantBurst, h.limiter.burst)
		})
	}
}
