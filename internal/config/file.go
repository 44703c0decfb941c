// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a JSON or YAML config file.
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Session struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"session" yaml:"session"`
		Files struct {
			DocumentsDir string `json:"documents_dir" yaml:"documents_dir"`
		} `json:"files" yaml:"files"`
		Objects struct {
			Endpoint  string `json:"endpoint" yaml:"endpoint"`
			AccessKey string `json:"access_key" yaml:"access_key"`
			SecretKey string `json:"secret_key" yaml:"secret_key"`
			Bucket    string `json:"bucket" yaml:"bucket"`
			UseSSL    bool   `json:"use_ssl" yaml:"use_ssl"`
		} `json:"objects" yaml:"objects"`
		Cache struct {
			RedisAddress  string   `json:"redis_address" yaml:"redis_address"`
			RedisPassword string   `json:"redis_password" yaml:"redis_password"`
			RedisDB       int      `json:"redis_db" yaml:"redis_db"`
			StatsTTL      Duration `json:"stats_ttl" yaml:"stats_ttl"`
		} `json:"cache" yaml:"cache"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      struct {
			RPS   float64 `json:"rps" yaml:"rps"`
			Burst int     `json:"burst" yaml:"burst"`
		} `json:"rate_limit" yaml:"rate_limit"`
	} `json:"server" yaml:"server"`

	AI struct {
		APIKey  string   `json:"gemini_api_key" yaml:"gemini_api_key"`
		Model   string   `json:"model" yaml:"model"`
		Timeout Duration `json:"timeout" yaml:"timeout"`
	} `json:"ai" yaml:"ai"`

	Adapter struct {
		APIURL         string   `json:"api_url" yaml:"api_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		OverdueSchedule        string   `json:"overdue_schedule" yaml:"overdue_schedule"`
		SessionRefreshInterval Duration `json:"session_refresh_interval" yaml:"session_refresh_interval"`
	} `json:"workers" yaml:"workers"`

	Telemetry struct {
		ServiceName string `json:"service_name" yaml:"service_name"`
		Exporter    string `json:"exporter" yaml:"exporter"`
	} `json:"telemetry" yaml:"telemetry"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			Version:       f.App.Version,
		},
		Storage: Storage{
			DB:      DB{DSN: f.Storage.DB.DSN},
			Session: Session{DSN: f.Storage.Session.DSN},
			Files:   Files{DocumentsDir: f.Storage.Files.DocumentsDir},
			Objects: Objects{
				Endpoint:  f.Storage.Objects.Endpoint,
				AccessKey: f.Storage.Objects.AccessKey,
				SecretKey: f.Storage.Objects.SecretKey,
				Bucket:    f.Storage.Objects.Bucket,
				UseSSL:    f.Storage.Objects.UseSSL,
			},
			Cache: Cache{
				RedisAddress:  f.Storage.Cache.RedisAddress,
				RedisPassword: f.Storage.Cache.RedisPassword,
				RedisDB:       f.Storage.Cache.RedisDB,
				StatsTTL:      time.Duration(f.Storage.Cache.StatsTTL),
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			RateLimit: RateLimit{
				RPS:   f.Server.RateLimit.RPS,
				Burst: f.Server.RateLimit.Burst,
			},
		},
		AI: AI{
			APIKey:  f.AI.APIKey,
			Model:   f.AI.Model,
			Timeout: time.Duration(f.AI.Timeout),
		},
		Adapter: Adapter{
			APIURL:         f.Adapter.APIURL,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			OverdueSchedule:        f.Workers.OverdueSchedule,
			SessionRefreshInterval: time.Duration(f.Workers.SessionRefreshInterval),
		},
		Telemetry: Telemetry{
			ServiceName: f.Telemetry.ServiceName,
			Exporter:    f.Telemetry.Exporter,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := value.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}
