package utils

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. CertFile and KeyFile, when
// both set, are presented to servers that require mutual TLS.
type HTTPClientOptions struct {
	BaseURL  string
	Timeout  time.Duration
	CertFile string
	KeyFile  string
}

// NewHTTPClient creates a resty client that trusts the system certificate
// pool. Each call returns an independent client with its own connection
// pool.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://auth.local"})
//	resp, err := client.R().Get("/users/@me")
func NewHTTPClient(opts HTTPClientOptions) (*HTTPClient, error) {
	roots, err := x509.SystemCertPool()
	if err != nil {
		roots = x509.NewCertPool()
	}

	tlsConfig := &tls.Config{
		RootCAs:    roots,
		MinVersion: tls.VersionTLS12,
	}

	if opts.CertFile != "" || opts.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("load client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	client := resty.New().SetTLSClientConfig(tlsConfig)
	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &HTTPClient{Client: client}, nil
}
