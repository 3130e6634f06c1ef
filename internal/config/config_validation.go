// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "info"},
		Storage: Storage{
			DB: DB{MaxOpenConns: 20, MaxIdleConns: 5},
			Files: Files{
				Backend:       FilesBackendLocal,
				Dir:           "data/files",
				MaxUploadSize: 32 << 20,
			},
		},
		Server: Server{
			HTTPAddress:     ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			AuthMode:       AuthModeLocal,
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			Count:      2,
			QueueSize:  256,
			JobTimeout: time.Minute,
		},
	}
}

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Each failure wraps one of the ErrInvalid* sentinels.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Files.Backend {
	case FilesBackendLocal:
		if cfg.Storage.Files.Dir == "" {
			return fmt.Errorf("%w: files directory is required", ErrInvalidStorageConfigs)
		}
	case FilesBackendS3:
		if cfg.Storage.Files.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 bucket is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown files backend %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}
	if (cfg.Server.TLSCertFile == "") != (cfg.Server.TLSKeyFile == "") {
		return fmt.Errorf("%w: tls certificate and key must be set together", ErrInvalidServerConfigs)
	}
	if cfg.Server.ClientCAFile != "" && !cfg.Server.TLSEnabled() {
		return fmt.Errorf("%w: client CA requires tls", ErrInvalidServerConfigs)
	}

	switch cfg.Adapter.AuthMode {
	case AuthModeLocal:
	case AuthModeRemote:
		if cfg.Adapter.AuthAddress == "" {
			return fmt.Errorf("%w: remote auth requires an auth service address", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidAdapterConfigs, cfg.Adapter.AuthMode)
	}
	if (cfg.Adapter.CertFile == "") != (cfg.Adapter.KeyFile == "") {
		return fmt.Errorf("%w: client certificate and key must be set together", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.Count < 1 || cfg.Workers.QueueSize < 1 {
		return fmt.Errorf("%w: worker count and queue size must be positive", ErrInvalidWorkerConfigs)
	}

	if cfg.App.HashConcurrency < 0 {
		return fmt.Errorf("%w: hash concurrency must not be negative", ErrInvalidAppConfigs)
	}

	return nil
}
