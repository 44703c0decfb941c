package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr error
	}{
		{name: "release", version: "1.4.0"},
		{name: "prerelease with build metadata", version: "v1.2.3-beta+build.42"},
		{name: "surrounding spaces", version: " 2.0.1\n", want: "2.0.1"},
		{name: "missing version", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank version", version: "   ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			want := tt.want
			if want == "" {
				want = tt.version
			}
			assert.Equal(t, want, svc.GetAppVersion(context.Background()))
		})
	}
}
