package config

import (
	"errors"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.AppPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", c.AppPort)
	}
	if c.DataDir != "./data" {
		t.Fatalf("expected default data dir, got %q", c.DataDir)
	}
	if c.AuthMode != AuthModeCredentials {
		t.Fatalf("expected credentials mode by default, got %q", c.AuthMode)
	}
}

func TestLoad_InvalidAuthMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "magic")

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_SharedSecretRequiredInSharedMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "shared_secret")
	t.Setenv("STAFF_SHARED_SECRET", "")

	if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig without shared secret, got %v", err)
	}

	t.Setenv("STAFF_SHARED_SECRET", "swordfish")
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.AuthMode != AuthModeSharedSecret {
		t.Fatalf("expected shared_secret mode, got %q", c.AuthMode)
	}
}
