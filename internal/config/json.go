package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel        string `json:"log_level"`
		PublicHostname  string `json:"public_hostname"`
		HashConcurrency int    `json:"hash_concurrency"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`

		Files struct {
			Backend       string `json:"backend"`
			Dir           string `json:"dir"`
			MaxUploadSize int64  `json:"max_upload_size"`
			S3            struct {
				Bucket          string `json:"bucket"`
				Region          string `json:"region"`
				Endpoint        string `json:"endpoint"`
				AccessKeyID     string `json:"access_key_id"`
				SecretAccessKey string `json:"secret_access_key"`
				UsePathStyle    bool   `json:"use_path_style"`
			} `json:"s3,omitempty"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		TLSCertFile     string   `json:"tls_cert"`
		TLSKeyFile      string   `json:"tls_key"`
		ClientCAFile    string   `json:"client_ca"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		AuthMode       string   `json:"auth_mode"`
		AuthAddress    string   `json:"auth_address"`
		RequestTimeout Duration `json:"request_timeout"`
		CertFile       string   `json:"cert"`
		KeyFile        string   `json:"key"`
	} `json:"adapter,omitempty"`

	Workers struct {
		Count      int      `json:"count"`
		QueueSize  int      `json:"queue_size"`
		JobTimeout Duration `json:"job_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Storage.Files.S3
	cfg := &StructuredConfig{
		App: App{
			LogLevel:        jsonCfg.App.LogLevel,
			PublicHostname:  jsonCfg.App.PublicHostname,
			HashConcurrency: jsonCfg.App.HashConcurrency,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
			Files: Files{
				Backend:       jsonCfg.Storage.Files.Backend,
				Dir:           jsonCfg.Storage.Files.Dir,
				MaxUploadSize: jsonCfg.Storage.Files.MaxUploadSize,
				S3: S3{
					Bucket:          s3.Bucket,
					Region:          s3.Region,
					Endpoint:        s3.Endpoint,
					AccessKeyID:     s3.AccessKeyID,
					SecretAccessKey: s3.SecretAccessKey,
					UsePathStyle:    s3.UsePathStyle,
				},
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			TLSCertFile:     jsonCfg.Server.TLSCertFile,
			TLSKeyFile:      jsonCfg.Server.TLSKeyFile,
			ClientCAFile:    jsonCfg.Server.ClientCAFile,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			AuthMode:       jsonCfg.Adapter.AuthMode,
			AuthAddress:    jsonCfg.Adapter.AuthAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			CertFile:       jsonCfg.Adapter.CertFile,
			KeyFile:        jsonCfg.Adapter.KeyFile,
		},
		Workers: Workers{
			Count:      jsonCfg.Workers.Count,
			QueueSize:  jsonCfg.Workers.QueueSize,
			JobTimeout: time.Duration(jsonCfg.Workers.JobTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
