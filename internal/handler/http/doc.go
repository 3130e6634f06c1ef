// Package http implements the REST surface of the message keeper.
//
// It wires the chi routes of users, devices, messages, views, links, files
// and permissions, authenticates requests with Basic credentials or message
// link tokens, and carries the cross-cutting middleware: trace ids, access
// logging, prometheus request metrics, gzip and per-request timeouts.
// Service errors are mapped to statuses and {"detail": ...} bodies in
// errors_mapper.go.
package http
