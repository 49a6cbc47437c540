package auth

import "context"

// SessionVerifier resuelve un token a su sesión vigente.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Session, error)
}
