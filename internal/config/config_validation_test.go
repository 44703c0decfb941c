// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "postgres://localhost/db"
	cfg.App.TokenSignKey = "secret"
	return cfg
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "object storage without bucket",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Objects.Endpoint = "localhost:9000"
				cfg.Storage.Objects.Bucket = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "no document storage",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Files.DocumentsDir = ""
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty schedule",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.OverdueSchedule = "" },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validateServer()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{APIURL: "http://localhost:8000", RequestTimeout: 30 * time.Second},
			Storage: ClientStorage{SessionDSN: "session.db"},
			Workers: ClientWorkers{SessionRefreshInterval: time.Minute},
		}
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.SessionDSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Adapter.APIURL = "not a url"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Workers.SessionRefreshInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
