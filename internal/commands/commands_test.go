package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usersJSON = `[
  {"id": "7b0e6c1e-3c53-4a0e-9d5e-3f1f2a7f0c11", "username": "ana", "first_name": "Ana", "last_name": "Pierre",
   "user_type": "client", "is_active": true, "date_joined": "2025-03-01T10:00:00Z"},
  {"id": "1f0a2b3c-4d5e-4f60-8a7b-9c0d1e2f3a4b", "username": "bo", "user_type": "client", "is_active": false,
   "date_joined": "2025-01-15T10:00:00Z"},
  {"id": "2a1b2c3d-4e5f-4a6b-8c7d-8e9f0a1b2c3d", "username": "root", "user_type": "admin", "is_active": true}
]`

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail": "Invalid token."}`))
			return
		}
		switch r.URL.Path {
		case "/api/auth/admin/users/":
			_, _ = w.Write([]byte(usersJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func TestExportUsers_Stdout(t *testing.T) {
	srv := newUpstream(t)
	t.Setenv("CONSOLE_CONFIG", "")
	t.Setenv("UPSTREAM_BASE_URL", srv.URL)

	out, err := run(t, "export", "users", "--token", "tok", "--stdout", "--status", "active")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID,"))
	assert.Contains(t, lines[1], "ana")
	assert.NotContains(t, out, "root")
}

func TestExportUsers_File(t *testing.T) {
	srv := newUpstream(t)
	dir := t.TempDir()
	t.Setenv("CONSOLE_CONFIG", "")
	t.Setenv("UPSTREAM_BASE_URL", srv.URL)
	t.Setenv(TokenEnv, "tok")

	_, err := run(t, "export", "users", "--out", dir, "--sort", "name", "--dir", "asc")
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "users_*.csv"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	body, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	lines := strings.Split(string(body), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "ana")
	assert.Contains(t, lines[2], "bo")
}

func TestExportUsers_NoToken(t *testing.T) {
	t.Setenv("CONSOLE_CONFIG", "")
	t.Setenv(TokenEnv, "")

	_, err := run(t, "export", "users", "--stdout")
	assert.ErrorContains(t, err, "--token")
}

func TestExportUsers_Rejected(t *testing.T) {
	srv := newUpstream(t)
	t.Setenv("CONSOLE_CONFIG", "")
	t.Setenv("UPSTREAM_BASE_URL", srv.URL)

	_, err := run(t, "export", "users", "--token", "expired", "--stdout")
	assert.ErrorContains(t, err, "Invalid token.")
}

func TestExportUsers_BadDate(t *testing.T) {
	srv := newUpstream(t)
	t.Setenv("CONSOLE_CONFIG", "")
	t.Setenv("UPSTREAM_BASE_URL", srv.URL)

	_, err := run(t, "export", "users", "--token", "tok", "--stdout", "--from", "yesterday")
	assert.Error(t, err)
}
