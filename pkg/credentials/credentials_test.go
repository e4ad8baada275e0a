package credentials

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saymynamenow/lossantos-cli/pkg/config"
)

// TestCredentialsIsExpired validates token expiration check
func TestCredentialsIsExpired(t *testing.T) {
	testCases := []struct {
		expiresAt time.Time
		expect    bool
		name      string
	}{
		{time.Now().Add(-1 * time.Hour), true, "past expiration"},
		{time.Now().Add(1 * time.Hour), false, "future expiration"},
		{time.Now().Add(-1 * time.Minute), true, "recently expired"},
		{time.Now().Add(1 * time.Minute), false, "expiring soon"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creds := &Credentials{
				AccessToken: "test_token",
				ExpiresAt:   tc.expiresAt,
			}

			if got := creds.IsExpired(); got != tc.expect {
				t.Errorf("Expected IsExpired=%v, got %v", tc.expect, got)
			}
		})
	}
}

// TestCredentialsIsValid validates credential validity check
func TestCredentialsIsValid(t *testing.T) {
	testCases := []struct {
		accessToken string
		expiresAt   time.Time
		expect      bool
		name        string
	}{
		{"valid_token", time.Now().Add(1 * time.Hour), true, "valid credentials"},
		{"", time.Now().Add(1 * time.Hour), false, "empty access token"},
		{"valid_token", time.Now().Add(-1 * time.Hour), false, "expired token"},
		{"", time.Now().Add(-1 * time.Hour), false, "empty and expired"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creds := &Credentials{
				AccessToken: tc.accessToken,
				ExpiresAt:   tc.expiresAt,
			}

			if got := creds.IsValid(); got != tc.expect {
				t.Errorf("Expected IsValid=%v, got %v", tc.expect, got)
			}
		})
	}
}

// TestCredentialsZeroValues handles zero-valued credentials
func TestCredentialsZeroValues(t *testing.T) {
	creds := &Credentials{}

	if !creds.IsExpired() {
		t.Error("Zero-value credentials should be expired (ExpiresAt is zero)")
	}
	if creds.IsValid() {
		t.Error("Zero-value credentials should be invalid")
	}
}

// TestSaveLoadRoundTrip validates credentials persist to disk and back
func TestSaveLoadRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	if err := config.Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	saved := &Credentials{
		AccessToken: "token_abc",
		ExpiresAt:   time.Now().Add(1 * time.Hour).UTC(),
		UserID:      "u1",
		Username:    "franklin",
		Email:       "franklin@example.com",
		IsAdmin:     true,
	}

	if err := Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil after Save")
	}

	if loaded.AccessToken != saved.AccessToken {
		t.Errorf("AccessToken = %s, want %s", loaded.AccessToken, saved.AccessToken)
	}
	if loaded.Username != saved.Username {
		t.Errorf("Username = %s, want %s", loaded.Username, saved.Username)
	}
	if !loaded.IsAdmin {
		t.Error("IsAdmin should survive round trip")
	}
	if !loaded.ExpiresAt.Equal(saved.ExpiresAt) {
		t.Errorf("ExpiresAt = %v, want %v", loaded.ExpiresAt, saved.ExpiresAt)
	}
}

// TestSaveFilePermissions validates credentials file is owner-only
func TestSaveFilePermissions(t *testing.T) {
	tempDir := t.TempDir()
	if err := config.Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	if err := Save(&Credentials{AccessToken: "secret"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(config.GetCredentialsPath())
	if err != nil {
		t.Fatalf("Failed to stat credentials file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Credentials file permissions = %o, want 0600", perm)
	}
}

// TestLoadMissingFile validates missing credentials load as nil
func TestLoadMissingFile(t *testing.T) {
	tempDir := t.TempDir()
	if err := config.Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	creds, err := Load()
	if err != nil {
		t.Fatalf("Load of missing file should not error: %v", err)
	}
	if creds != nil {
		t.Errorf("Load of missing file should return nil, got %+v", creds)
	}
}

// TestDelete validates credentials removal
func TestDelete(t *testing.T) {
	tempDir := t.TempDir()
	if err := config.Init(filepath.Join(tempDir, "config.toml")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	if err := Save(&Credentials{AccessToken: "to_delete"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	creds, err := Load()
	if err != nil {
		t.Fatalf("Load after delete errored: %v", err)
	}
	if creds != nil {
		t.Error("Credentials should be gone after Delete")
	}
}
