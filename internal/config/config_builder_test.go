package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns the defaults completed with a DSN.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://u:p@localhost/messages"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.NotNil(t, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source
// is not overridden by later ones while unset fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: ":1"}, App: App{PublicHostname: "https://m.example.org"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "https://m.example.org", cfg.App.PublicHostname)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_PUBLIC_HOSTNAME", "https://env.example.org")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")
	t.Setenv("WORKERS_QUEUE_SIZE", "7")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "5s")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://env.example.org", b.configs[0].App.PublicHostname)
	assert.Equal(t, "postgres://env", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, 7, b.configs[0].Workers.QueueSize)
	assert.Equal(t, 5*time.Second, b.configs[0].Server.RequestTimeout)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("WORKERS_QUEUE_SIZE", "many")

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withLegacyEnv ─────────────────────────────────────────────────────────────

func TestWithLegacyEnv_MapsUnprefixedVariables(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://legacy")
	t.Setenv("DIR", "/srv/files")
	t.Setenv("FILE_SERVICE_HOSTNAME", "https://files.example.org")
	t.Setenv("AUTH_SERVICE_ADDRESS", "https://auth.example.org")

	b := newConfigBuilder().withLegacyEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	cfg := b.configs[0]
	assert.Equal(t, "postgres://legacy", cfg.Storage.DB.DSN)
	assert.Equal(t, "/srv/files", cfg.Storage.Files.Dir)
	assert.Equal(t, "https://files.example.org", cfg.App.PublicHostname)
	assert.Equal(t, "https://auth.example.org", cfg.Adapter.AuthAddress)
	assert.Equal(t, AuthModeRemote, cfg.Adapter.AuthMode)
}

func TestWithLegacyEnv_PrefixedWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://legacy")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://prefixed")

	cfg, err := newConfigBuilder().withEnv().withLegacyEnv().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://prefixed", cfg.Storage.DB.DSN)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DB_DATABASE_URI=postgres://dotenv\n"), 0o600))
	t.Setenv("DOTENV", path)
	t.Setenv("STORAGE_DB_DATABASE_URI", "")
	require.NoError(t, os.Unsetenv("STORAGE_DB_DATABASE_URI"))

	cfg, err := newConfigBuilder().withDotEnv().withEnv().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://dotenv", cfg.Storage.DB.DSN)
}

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

func TestWithFlags_EnvTakesPrecedence(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-d", "postgres://flag", "-a", "127.0.0.1:9999"}).
		withDefaults().
		build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "postgres://json"}},
		"workers": map[string]any{"queue_size": 3},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "postgres://json", b.configs[1].Storage.DB.DSN)
	assert.Equal(t, 3, b.configs[1].Workers.QueueSize)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "defaults with dsn", mutate: func(*StructuredConfig) {}},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown backend", mutate: func(c *StructuredConfig) { c.Storage.Files.Backend = "ftp" }, wantErr: ErrInvalidStorageConfigs},
		{name: "s3 without bucket", mutate: func(c *StructuredConfig) { c.Storage.Files.Backend = FilesBackendS3 }, wantErr: ErrInvalidStorageConfigs},
		{name: "s3 with bucket", mutate: func(c *StructuredConfig) {
			c.Storage.Files.Backend = FilesBackendS3
			c.Storage.Files.S3.Bucket = "messages"
		}},
		{name: "cert without key", mutate: func(c *StructuredConfig) { c.Server.TLSCertFile = "cert.pem" }, wantErr: ErrInvalidServerConfigs},
		{name: "client ca without tls", mutate: func(c *StructuredConfig) { c.Server.ClientCAFile = "ca.pem" }, wantErr: ErrInvalidServerConfigs},
		{name: "remote without address", mutate: func(c *StructuredConfig) { c.Adapter.AuthMode = AuthModeRemote }, wantErr: ErrInvalidAdapterConfigs},
		{name: "unknown auth mode", mutate: func(c *StructuredConfig) { c.Adapter.AuthMode = "ldap" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero workers", mutate: func(c *StructuredConfig) { c.Workers.Count = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "negative hash concurrency", mutate: func(c *StructuredConfig) { c.App.HashConcurrency = -1 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
