package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tasklist/internal/model"
	"tasklist/internal/repository"
)

// SessionManager issues and resolves opaque session tokens backed by the
// sessions table.
type SessionManager struct {
	verifier   *Verifier
	identities *IdentityStore
	sessions   *repository.SessionRepository
	ttl        time.Duration
}

func NewSessionManager(verifier *Verifier, identities *IdentityStore, sessions *repository.SessionRepository, ttl time.Duration) *SessionManager {
	return &SessionManager{
		verifier:   verifier,
		identities: identities,
		sessions:   sessions,
		ttl:        ttl,
	}
}

// Login verifies the credentials and opens a session, returning the
// identity together with the new token.
func (m *SessionManager) Login(ctx context.Context, email, password string) (Identity, string, error) {
	identity, err := m.verifier.Verify(ctx, email, password)
	if err != nil {
		return Identity{}, "", err
	}

	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    m.identities.Serialize(identity),
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.sessions.Create(ctx, &session); err != nil {
		return Identity{}, "", fmt.Errorf("open session: %w", err)
	}

	return identity, session.Token, nil
}

// Resolve maps a session token back to the identity it was opened for.
// Expired or unknown tokens, and tokens whose account has since been
// removed, fail with ErrUserNotFound.
func (m *SessionManager) Resolve(ctx context.Context, token string) (Identity, error) {
	session, err := m.sessions.FindByToken(ctx, token, time.Now())
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return Identity{}, ErrUserNotFound
	case err != nil:
		return Identity{}, fmt.Errorf("resolve session: %w", err)
	}
	return m.identities.Deserialize(ctx, session.UserID)
}

// Logout destroys the session. Unknown tokens are not an error.
func (m *SessionManager) Logout(ctx context.Context, token string) error {
	return m.sessions.Delete(ctx, token)
}
