// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv lists the unprefixed variables older deployments of the message
// service were configured with.
type legacyEnv struct {
	DatabaseURL         string `env:"DATABASE_URL"`
	Dir                 string `env:"DIR"`
	FileServiceHostname string `env:"FILE_SERVICE_HOSTNAME"`
	AuthServiceAddress  string `env:"AUTH_SERVICE_ADDRESS"`
	LogLevel            string `env:"LOG_LEVEL"`
	ServiceAddress      string `env:"MESSAGE_SERVICE_ADDRESS"`
	ServiceCert         string `env:"MESSAGE_SERVICE_CERT"`
	ServiceKey          string `env:"MESSAGE_SERVICE_KEY"`
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:       legacy.LogLevel,
			PublicHostname: legacy.FileServiceHostname,
		},
		Storage: Storage{
			DB:    DB{DSN: legacy.DatabaseURL},
			Files: Files{Dir: legacy.Dir},
		},
		Server: Server{
			HTTPAddress: legacy.ServiceAddress,
			TLSCertFile: legacy.ServiceCert,
			TLSKeyFile:  legacy.ServiceKey,
		},
		Adapter: Adapter{AuthAddress: legacy.AuthServiceAddress},
	}

	// the auth service address alone used to switch the service to remote auth
	if legacy.AuthServiceAddress != "" {
		cfg.Adapter.AuthMode = AuthModeRemote
	}

	return cfg, nil
}
