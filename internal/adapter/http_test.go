// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-message-keeper/internal/config"
	"github.com/MKhiriev/go-message-keeper/internal/logger"
	"github.com/MKhiriev/go-message-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = models.Credentials{Username: "alice", Password: "password1"}

// newTestAdapter creates an adapter pointed at the test server
func newTestAdapter(t *testing.T, serverURL string) AuthAdapter {
	t.Helper()

	a, err := NewHTTPAuthAdapter(config.Adapter{AuthAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func assertBasicAuth(t *testing.T, r *http.Request) {
	t.Helper()
	username, password, ok := r.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, testCreds.Username, username)
	assert.Equal(t, testCreds.Password, password)
}

func TestNewHTTPAuthAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAuthAdapter(config.Adapter{AuthAddress: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAuthAddress)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("auth.local:8081/")
	require.NoError(t, err)
	assert.Equal(t, "http://auth.local:8081", got)

	got, err = normalizeBaseURL("https://auth.example.org")
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.org", got)
}

// ── GetCurrentUser ──────────────────────────────────────────────────────────

func TestGetCurrentUser_Success(t *testing.T) {
	want := models.AuthUser{ID: uuid.New(), Username: "alice", Flags: models.FlagCreateUser, CreatedAt: time.Now().UTC().Truncate(time.Second)}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/@me", r.URL.Path)
		assertBasicAuth(t, r)
		writeJSON(w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetCurrentUser(context.Background(), testCreds)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Username, got.Username)
	assert.Equal(t, want.Flags, got.Flags)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestGetCurrentUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", `Basic realm="auth"`)
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"errors": []map[string]string{{"detail": "Incorrect username or password"}},
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetCurrentUser(context.Background(), testCreds)

	require.ErrorIs(t, err, ErrUpstream)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.Status)
	assert.Equal(t, "Incorrect username or password", upstream.Detail)
	assert.Equal(t, `Basic realm="auth"`, upstream.WWWAuthenticate)
}

func TestGetCurrentUser_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GetCurrentUser(context.Background(), testCreds)
	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── CreateUser ──────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/bob", r.URL.Path)
		assertBasicAuth(t, r)

		var body models.ReceivedUser
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hunter222", body.Password)

		writeJSON(w, http.StatusCreated, models.AuthUser{ID: uuid.New(), Username: "bob"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), testCreds, "bob", models.ReceivedUser{Password: "hunter222"})

	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}

func TestCreateUser_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"detail": "User already exists"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), testCreds, "bob", models.ReceivedUser{Password: "hunter222"})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusConflict, upstream.Status)
	assert.Equal(t, "User already exists", upstream.Detail)
}

// ── UpdateUser ──────────────────────────────────────────────────────────────

func TestUpdateUser_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"username":"alice2"}`, string(body))
		writeJSON(w, http.StatusOK, models.AuthUser{Username: "alice2"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UpdateUser(context.Background(), testCreds, models.UserUpdate{Username: models.Some("alice2")})

	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Username)
}

func TestUpdateUser_EmptySendsNothing(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UpdateUser(context.Background(), testCreds, models.UserUpdate{})

	assert.ErrorIs(t, err, ErrEmptyUpdate)
	assert.False(t, called)
}

// ── DeleteUser ──────────────────────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assertBasicAuth(t, r)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).DeleteUser(context.Background(), testCreds))
}

func TestDeleteUser_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteUser(context.Background(), testCreds)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Internal server error", upstream.Detail)
}

// ── GetMessageLink ──────────────────────────────────────────────────────────

func TestGetMessageLink_Success(t *testing.T) {
	messageID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/"+messageID.String()+"/links", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("link"))
		_, _, hasAuth := r.BasicAuth()
		assert.False(t, hasAuth)
		writeJSON(w, http.StatusOK, models.LinkResponse{Token: "tok", MessageID: messageID, Access: models.PermissionRead})
	}))
	defer srv.Close()

	link, err := newTestAdapter(t, srv.URL).GetMessageLink(context.Background(), messageID, "tok")

	require.NoError(t, err)
	assert.Equal(t, messageID, link.MessageID)
	assert.Equal(t, models.PermissionRead, link.Access)
}

func TestGetMessageLink_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetMessageLink(context.Background(), uuid.New(), "tok")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.Status)
	assert.Equal(t, "Unknown error", upstream.Detail)
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "errors envelope", status: 400, body: `{"errors":[{"detail":"first"},{"detail":"second"}]}`, want: "first"},
		{name: "detail body", status: 403, body: `{"detail":"nope"}`, want: "nope"},
		{name: "plain text client error", status: 418, body: `teapot`, want: "Unknown error"},
		{name: "empty server error", status: 503, body: ``, want: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDetail(tt.status, []byte(tt.body)))
		})
	}
}
