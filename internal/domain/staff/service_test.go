package staff

import (
	"context"
	"errors"
	"testing"

	authpkg "shelter-dashboard/internal/auth"
)

type testRepo struct {
	byID map[string]Employee
}

func (r *testRepo) GetByEmployerID(ctx context.Context, employerID string) (Employee, error) {
	e, ok := r.byID[employerID]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return e, nil
}

func newCredentialsFixture(t *testing.T) *Service {
	t.Helper()

	hash, err := authpkg.HashSecret("s3cret")
	if err != nil {
		t.Fatalf("HashSecret returned error: %v", err)
	}

	repo := &testRepo{byID: map[string]Employee{
		"100": {EmployerID: "100", Name: "Ana Torres", Secret: hash},
		"101": {EmployerID: "101", Name: "Luis Peralta", Secret: "plaintext-legacy"},
	}}
	return NewService(repo, ModeCredentials, "")
}

func TestLogin_Credentials_Success(t *testing.T) {
	svc := newCredentialsFixture(t)

	sess, err := svc.Login(context.Background(), LoginInput{EmployerID: "100", Secret: "s3cret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !sess.Authorized || sess.Token == "" {
		t.Fatalf("expected authorized session with token, got %#v", sess)
	}
	if sess.StaffName != "Ana Torres" {
		t.Fatalf("expected display name from employee row, got %q", sess.StaffName)
	}

	// El token resuelve a la misma sesión.
	got, err := svc.Verify(context.Background(), sess.Token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !got.Authorized || got.EmployerID != "100" {
		t.Fatalf("unexpected verified session: %#v", got)
	}
}

func TestLogin_Credentials_LegacyPlaintextStillAccepted(t *testing.T) {
	svc := newCredentialsFixture(t)

	sess, err := svc.Login(context.Background(), LoginInput{EmployerID: "101", Secret: "plaintext-legacy"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !sess.Authorized {
		t.Fatalf("expected authorized session for legacy row")
	}
}

func TestLogin_Credentials_WrongSecretRevokesPriorSession(t *testing.T) {
	svc := newCredentialsFixture(t)

	sess, err := svc.Login(context.Background(), LoginInput{EmployerID: "100", Secret: "s3cret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	// Intento fallido en la misma sesión: la autorización previa se limpia.
	_, err = svc.Login(context.Background(), LoginInput{
		PriorToken: sess.Token,
		EmployerID: "100",
		Secret:     "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Verify(context.Background(), sess.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected prior session revoked, got %v", err)
	}
}

func TestLogin_Credentials_UnknownEmployer(t *testing.T) {
	svc := newCredentialsFixture(t)

	if _, err := svc.Login(context.Background(), LoginInput{EmployerID: "999", Secret: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_SharedSecretMode(t *testing.T) {
	svc := NewService(nil, ModeSharedSecret, "swordfish")

	sess, err := svc.Login(context.Background(), LoginInput{Secret: "swordfish"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !sess.Authorized {
		t.Fatalf("expected authorized session")
	}
	// Sin identidad en este modo.
	if sess.EmployerID != "" || sess.StaffName != "" {
		t.Fatalf("shared-secret session must carry no identity: %#v", sess)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Secret: "nope"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogout_RemovesSession(t *testing.T) {
	svc := NewService(nil, ModeSharedSecret, "swordfish")

	sess, _ := svc.Login(context.Background(), LoginInput{Secret: "swordfish"})
	svc.Logout(sess.Token)

	if _, err := svc.Verify(context.Background(), sess.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected session gone after logout, got %v", err)
	}
}
