package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server flags from args (without the program name).
// A nil args slice yields an empty config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f file storage directory
//	-files-backend file content backend (local, s3)
//	-c/-config json file path with configs
//	-auth-mode authentication mode (local, remote)
//	-auth-address remote auth service base URL
//	-public-hostname hostname used in message links
//	-tls-cert / -tls-key server certificate and key
//	-client-ca CA bundle for client certificates
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var fileStoragePath, filesBackend string
	var databaseDSN string
	var jsonConfigPath string
	var authMode, authAddress string
	var publicHostname string
	var tlsCert, tlsKey, clientCA string
	var requestTimeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("message-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&fileStoragePath, "f", "", "File storage directory")
	fs.StringVar(&filesBackend, "files-backend", "", "File content backend (local, s3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&authMode, "auth-mode", "", "Authentication mode (local, remote)")
	fs.StringVar(&authAddress, "auth-address", "", "Remote auth service base URL")
	fs.StringVar(&publicHostname, "public-hostname", "", "Hostname used in message links")
	fs.StringVar(&tlsCert, "tls-cert", "", "Server TLS certificate")
	fs.StringVar(&tlsKey, "tls-key", "", "Server TLS private key")
	fs.StringVar(&clientCA, "client-ca", "", "CA bundle for client certificates")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			PublicHostname: publicHostname,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				Backend: filesBackend,
				Dir:     fileStoragePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			TLSCertFile:    tlsCert,
			TLSKeyFile:     tlsKey,
			ClientCAFile:   clientCA,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			AuthMode:    authMode,
			AuthAddress: authAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Hosts other than "localhost" must
// be IP addresses.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
