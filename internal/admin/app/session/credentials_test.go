package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/klwxsrx/content-admin-service/internal/admin/app/session"
)

func TestCredentials_Match(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	plain := session.Credentials{Username: "admin", Password: "pw1"}
	hashed := session.Credentials{Username: "admin", Password: string(hash)}

	tests := []struct {
		name        string
		credentials session.Credentials
		username    string
		password    string
		match       bool
	}{
		{"plain_match", plain, "admin", "pw1", true},
		{"plain_username_case", plain, "Admin", "pw1", false},
		{"plain_longer_password", plain, "admin", "pw1x", false},
		{"plain_shorter_password", plain, "admin", "pw", false},
		{"plain_empty_password", plain, "admin", "", false},
		{"hashed_match", hashed, "admin", "pw1", true},
		{"hashed_wrong_password", hashed, "admin", "pw2", false},
		{"hashed_wrong_username", hashed, "root", "pw1", false},
		{"hash_as_password_is_rejected", hashed, "admin", string(hash), false},
		{"not_configured", session.Credentials{Username: "admin"}, "admin", "", false},
		{"not_configured_empty", session.Credentials{}, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.match, tt.credentials.Match(tt.username, tt.password))
		})
	}
}

func TestCredentials_Configured(t *testing.T) {
	t.Parallel()

	assert.True(t, session.Credentials{Username: "a", Password: "b"}.Configured())
	assert.False(t, session.Credentials{Username: "a"}.Configured())
	assert.False(t, session.Credentials{Password: "b"}.Configured())
}
