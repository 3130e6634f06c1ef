// Package server runs the HTTP(S) server of the message keeper together
// with its background workers.
//
// It covers startup, optional mutual TLS, signal handling and graceful
// shutdown: the HTTP server drains first, then the workers finish the jobs
// accepted while it was running.
package server
