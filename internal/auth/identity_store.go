package auth

import (
	"context"
	"errors"
	"fmt"

	"tasklist/internal/repository"
)

// IdentityStore maps identities to the compact id persisted in a session
// and back. It is the only contract the session transport relies on
// between requests.
type IdentityStore struct {
	users *repository.UserRepository
}

func NewIdentityStore(users *repository.UserRepository) *IdentityStore {
	return &IdentityStore{users: users}
}

// Serialize reduces an identity to its stable, reversible session id.
func (s *IdentityStore) Serialize(identity Identity) uint {
	return identity.ID
}

// Deserialize resolves a serialized id back to the full identity. It
// fails with ErrUserNotFound when the id no longer resolves, e.g. the
// account was removed while the session was still live.
func (s *IdentityStore) Deserialize(ctx context.Context, id uint) (Identity, error) {
	user, err := s.users.FindByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return Identity{}, ErrUserNotFound
	case err != nil:
		return Identity{}, fmt.Errorf("deserialize identity: %w", err)
	}
	return Identity{ID: user.ID, Username: user.Email}, nil
}
