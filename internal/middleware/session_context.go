package middleware

import (
	"context"
	"net/http"
	"strings"

	"shelter-dashboard/internal/ports/auth"
)

type ctxKey string

const sessionKey ctxKey = "session"

// SessionContext:
// - Si viene X-Session-Token, intenta resolverlo a una sesión y la setea en el contexto.
// - Si no hay token o el token no resuelve, el request sigue igual;
//   los handlers de mutación deciden el 401.
func SessionContext(verifier auth.SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get("X-Session-Token"))
			if token == "" || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos acá: las lecturas de invitado no requieren sesión.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (auth.Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return auth.Session{}, false
	}
	s, ok := v.(auth.Session)
	return s, ok
}
