package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"tasklist/internal/repository"
)

var (
	// ErrUserNotFound reports that the login email or a serialized id
	// resolves to no account.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword reports a password mismatch against the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
)

// Verifier checks submitted credentials against stored bcrypt hashes.
// It is read-only.
type Verifier struct {
	users *repository.UserRepository
}

func NewVerifier(users *repository.UserRepository) *Verifier {
	return &Verifier{users: users}
}

// Verify looks the account up by email and compares the password against
// the stored salted hash.
func (v *Verifier) Verify(ctx context.Context, email, password string) (Identity, error) {
	user, err := v.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return Identity{}, ErrUserNotFound
	case err != nil:
		return Identity{}, fmt.Errorf("verify credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidPassword
	}

	return Identity{ID: user.ID, Username: user.Email}, nil
}
