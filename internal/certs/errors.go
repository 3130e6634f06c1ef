package certs

import "errors"

var (
	ErrDecodingPEM   = errors.New("failed to decode PEM block")
	ErrNotAuthority  = errors.New("certificate is not a CA")
	ErrEmptyName     = errors.New("empty certificate name")
	ErrKeyMismatch   = errors.New("private key does not match certificate")
	ErrWritingOutput = errors.New("failed to write certificate files")
)
