// Command certgen writes the TLS material for the message keeper and its
// peers: ca.crt/ca.key (created once, reused afterwards) and one leaf pair
// per service name, all under the output directory.
//
//	certgen -out .ssl "Auth Service" "Message Service" "REST Service"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/certs"
)

const defaultValidity = 20 * 365 * 24 * time.Hour

var defaultNames = []string{"Auth Service", "File Service", "REST Service"}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "certgen:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fset := flag.NewFlagSet("certgen", flag.ContinueOnError)
	dir := fset.String("out", ".ssl", "output directory")
	validity := fset.Duration("validity", defaultValidity, "validity of generated certificates")
	if err := fset.Parse(args); err != nil {
		return err
	}

	names := fset.Args()
	if len(names) == 0 {
		names = defaultNames
	}

	ca, err := loadOrCreateAuthority(*dir, *validity, out)
	if err != nil {
		return err
	}

	for _, name := range names {
		pair, err := ca.Issue(name, *validity)
		if err != nil {
			return err
		}
		base := certs.FileBaseName(name)
		if err = certs.WritePair(*dir, base, pair); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s.crt and %s.key\n", filepath.Join(*dir, base), filepath.Join(*dir, base))
	}
	return nil
}

func loadOrCreateAuthority(dir string, validity time.Duration, out io.Writer) (*certs.Authority, error) {
	certPEM, certErr := os.ReadFile(filepath.Join(dir, certs.CAName+".crt"))
	keyPEM, keyErr := os.ReadFile(filepath.Join(dir, certs.CAName+".key"))

	switch {
	case certErr == nil && keyErr == nil:
		fmt.Fprintln(out, "reusing existing CA")
		return certs.ParseAuthority(certPEM, keyPEM)
	case errors.Is(certErr, fs.ErrNotExist) && errors.Is(keyErr, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("incomplete CA in %s: %w", dir, errors.Join(certErr, keyErr))
	}

	ca, err := certs.NewAuthority(validity)
	if err != nil {
		return nil, err
	}
	if err = certs.WritePair(dir, certs.CAName, certs.Pair{CertPEM: ca.CertPEM, KeyPEM: ca.KeyPEM}); err != nil {
		return nil, err
	}
	fmt.Fprintln(out, "created new CA")
	return ca, nil
}
