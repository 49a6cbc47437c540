package staff

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	authpkg "shelter-dashboard/internal/auth"
	"shelter-dashboard/internal/ports/auth"

	"github.com/oklog/ulid/v2"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no session")
	ErrNotFound           = errors.New("employee not found")
)

type Mode string

const (
	// ModeCredentials: employer ID + secreto contra el dataset de empleados.
	ModeCredentials Mode = "credentials"
	// ModeSharedSecret: un único valor configurado a nivel proceso,
	// autoriza sin identidad.
	ModeSharedSecret Mode = "shared_secret"
)

// Service es el Access Guard: autentica y mantiene las sesiones en memoria.
// La sesión es un objeto explícito que viaja con cada mutación;
// no hay flag global de proceso.
type Service struct {
	repo         Repository
	mode         Mode
	sharedSecret string
	now          func() time.Time

	mu       sync.RWMutex
	sessions map[string]auth.Session
}

func NewService(repo Repository, mode Mode, sharedSecret string) *Service {
	return &Service{
		repo:         repo,
		mode:         mode,
		sharedSecret: sharedSecret,
		now:          time.Now,
		sessions:     make(map[string]auth.Session),
	}
}

type LoginInput struct {
	// PriorToken: token de una sesión previa del mismo cliente, si la hay.
	// Un intento fallido la revoca; nunca queda autorización vieja colgada.
	PriorToken string

	EmployerID string
	Secret     string
}

func (s *Service) Login(ctx context.Context, in LoginInput) (auth.Session, error) {
	switch s.mode {
	case ModeSharedSecret:
		return s.loginShared(in)
	default:
		return s.loginCredentials(ctx, in)
	}
}

func (s *Service) loginCredentials(ctx context.Context, in LoginInput) (auth.Session, error) {
	employerID := strings.TrimSpace(in.EmployerID)
	if employerID == "" || in.Secret == "" {
		return s.deny(in.PriorToken)
	}

	e, err := s.repo.GetByEmployerID(ctx, employerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s.deny(in.PriorToken)
		}
		return auth.Session{}, err
	}

	ok, err := authpkg.VerifySecret(in.Secret, e.Secret)
	if err != nil || !ok {
		return s.deny(in.PriorToken)
	}

	return s.grant(auth.Session{
		EmployerID: e.EmployerID,
		StaffName:  e.Name,
	}), nil
}

func (s *Service) loginShared(in LoginInput) (auth.Session, error) {
	ok, err := authpkg.VerifySecret(in.Secret, s.sharedSecret)
	if err != nil || !ok {
		return s.deny(in.PriorToken)
	}

	// Autorización sin identidad.
	return s.grant(auth.Session{}), nil
}

func (s *Service) grant(sess auth.Session) auth.Session {
	sess.Token = ulid.Make().String()
	sess.Authorized = true
	sess.CreatedAt = s.now()

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

func (s *Service) deny(priorToken string) (auth.Session, error) {
	if tok := strings.TrimSpace(priorToken); tok != "" {
		s.mu.Lock()
		delete(s.sessions, tok)
		s.mu.Unlock()
	}
	return auth.Session{}, ErrInvalidCredentials
}

func (s *Service) Logout(token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Verify implementa auth.SessionVerifier para el middleware.
func (s *Service) Verify(ctx context.Context, token string) (auth.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[strings.TrimSpace(token)]
	s.mu.RUnlock()

	if !ok {
		return auth.Session{}, ErrNoSession
	}
	return sess, nil
}
