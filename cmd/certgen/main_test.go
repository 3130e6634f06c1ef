package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CreatesThenReusesAuthority(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, run([]string{"-out", dir, "-validity", time.Hour.String(), "Message Service"}, &out))
	assert.Contains(t, out.String(), "created new CA")
	for _, name := range []string{"ca.crt", "ca.key", "message_service.crt", "message_service.key"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	caBefore, err := os.ReadFile(filepath.Join(dir, "ca.crt"))
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, run([]string{"-out", dir, "Auth Service"}, &out))
	assert.Contains(t, out.String(), "reusing existing CA")
	assert.FileExists(t, filepath.Join(dir, "auth_service.crt"))

	caAfter, err := os.ReadFile(filepath.Join(dir, "ca.crt"))
	require.NoError(t, err)
	assert.Equal(t, caBefore, caAfter)
}

func TestRun_DefaultNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run([]string{"-out", dir}, &bytes.Buffer{}))

	for _, base := range []string{"auth_service", "file_service", "rest_service"} {
		assert.FileExists(t, filepath.Join(dir, base+".crt"))
	}
}

func TestRun_IncompleteAuthority(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ca.crt"), []byte("orphan"), 0o644))

	err := run([]string{"-out", dir}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "incomplete CA")
}
