package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashSecret("hunter2")
	if err != nil {
		t.Fatalf("HashSecret returned error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("expected PHC argon2id format, got %q", hash)
	}

	ok, err := VerifySecret("hunter2", hash)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = VerifySecret("wrong", hash)
	if err != nil || ok {
		t.Fatalf("expected mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestHashIsSalted(t *testing.T) {
	a, _ := HashSecret("same")
	b, _ := HashSecret("same")
	if a == b {
		t.Fatalf("two hashes of the same secret must differ by salt")
	}
}

func TestVerify_LegacyPlaintext(t *testing.T) {
	ok, err := VerifySecret("abc123", "abc123")
	if err != nil || !ok {
		t.Fatalf("expected legacy plaintext match, got ok=%v err=%v", ok, err)
	}

	ok, err = VerifySecret("abc123", "other")
	if err != nil || ok {
		t.Fatalf("expected legacy plaintext mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if _, err := VerifySecret("x", "$argon2id$broken"); !errors.Is(err, ErrInvalidHash) {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}
