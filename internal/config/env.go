// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// readDotEnv returns the variables of a .env file, or nil when the file does
// not exist.
func readDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return vars, nil
}

// parseEnv fills cfg from the process environment layered over dotEnv. A
// variable set in the process always wins over the file.
func parseEnv(cfg *StructuredConfig, dotEnv map[string]string) error {
	environment := make(map[string]string, len(dotEnv))
	for k, v := range dotEnv {
		environment[k] = v
	}
	for k, v := range env.ToMap(os.Environ()) {
		environment[k] = v
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
