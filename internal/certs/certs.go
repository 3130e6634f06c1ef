// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package certs issues the TLS material used between the message keeper and
// its peers: a self-signed ECDSA P-256 authority and leaf certificates it
// signs for every service name, usable for both server and client auth.
package certs

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	certPEMType = "CERTIFICATE"
	keyPEMType  = "EC PRIVATE KEY"

	// CAName is the base file name of the authority pair.
	CAName = "ca"
)

// Authority signs leaf certificates.
type Authority struct {
	Cert *x509.Certificate
	Key  *ecdsa.PrivateKey

	CertPEM []byte
	KeyPEM  []byte
}

// Pair is a PEM encoded certificate and its private key.
type Pair struct {
	CertPEM []byte
	KeyPEM  []byte
}

// NewAuthority creates a self-signed CA valid for validity from now.
func NewAuthority(validity time.Duration) (*Authority, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("error generating CA key: %w", err)
	}

	serial, err := serialNumber()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: fmt.Sprintf("message-keeper CA %d", now.Unix())},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(validity),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("error signing CA certificate: %w", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("error parsing CA certificate: %w", err)
	}

	keyPEM, err := encodeKey(key)
	if err != nil {
		return nil, err
	}

	return &Authority{
		Cert:    cert,
		Key:     key,
		CertPEM: pem.EncodeToMemory(&pem.Block{Type: certPEMType, Bytes: der}),
		KeyPEM:  keyPEM,
	}, nil
}

// ParseAuthority reads a CA previously written by [NewAuthority].
func ParseAuthority(certPEM, keyPEM []byte) (*Authority, error) {
	certBlock, _ := pem.Decode(certPEM)
	if certBlock == nil || certBlock.Type != certPEMType {
		return nil, fmt.Errorf("%w: CA certificate", ErrDecodingPEM)
	}
	cert, err := x509.ParseCertificate(certBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("error parsing CA certificate: %w", err)
	}
	if !cert.IsCA {
		return nil, ErrNotAuthority
	}

	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil || keyBlock.Type != keyPEMType {
		return nil, fmt.Errorf("%w: CA key", ErrDecodingPEM)
	}
	key, err := x509.ParseECPrivateKey(keyBlock.Bytes)
	if err != nil {
		return nil, fmt.Errorf("error parsing CA key: %w", err)
	}

	pub, ok := cert.PublicKey.(*ecdsa.PublicKey)
	if !ok || !pub.Equal(&key.PublicKey) {
		return nil, ErrKeyMismatch
	}

	return &Authority{Cert: cert, Key: key, CertPEM: certPEM, KeyPEM: keyPEM}, nil
}

// Issue signs a leaf certificate for name. Its DNS names are name and
// localhost, and it may be used for server and client authentication.
func (a *Authority) Issue(name string, validity time.Duration) (Pair, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Pair{}, ErrEmptyName
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return Pair{}, fmt.Errorf("error generating key for %q: %w", name, err)
	}

	serial, err := serialNumber()
	if err != nil {
		return Pair{}, err
	}

	now := time.Now()
	notAfter := now.Add(validity)
	if notAfter.After(a.Cert.NotAfter) {
		notAfter = a.Cert.NotAfter
	}

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: name},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              notAfter,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		DNSNames:              dnsNames(name),
	}

	der, err := x509.CreateCertificate(rand.Reader, template, a.Cert, &key.PublicKey, a.Key)
	if err != nil {
		return Pair{}, fmt.Errorf("error signing certificate for %q: %w", name, err)
	}

	keyPEM, err := encodeKey(key)
	if err != nil {
		return Pair{}, err
	}

	return Pair{
		CertPEM: pem.EncodeToMemory(&pem.Block{Type: certPEMType, Bytes: der}),
		KeyPEM:  keyPEM,
	}, nil
}

// FileBaseName turns a service name into the base name of its files,
// e.g. "REST Service" becomes "rest_service".
func FileBaseName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// WritePair writes <base>.crt and <base>.key into dir. Keys are readable by
// the owner only.
func WritePair(dir, base string, pair Pair) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err := os.WriteFile(filepath.Join(dir, base+".crt"), pair.CertPEM, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	if err := os.WriteFile(filepath.Join(dir, base+".key"), pair.KeyPEM, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingOutput, err)
	}
	return nil
}

func dnsNames(name string) []string {
	host := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	if host == "localhost" {
		return []string{"localhost"}
	}
	return []string{host, "localhost"}
}

func encodeKey(key *ecdsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("error encoding private key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: keyPEMType, Bytes: der}), nil
}

func serialNumber() (*big.Int, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 64))
	if err != nil {
		return nil, fmt.Errorf("error generating serial number: %w", err)
	}
	return serial, nil
}
