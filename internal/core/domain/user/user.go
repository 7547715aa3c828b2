package user

import (
	"fmt"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/token"
	"time"
)

type ID string

func (id ID) String() string {
	return string(id)
}

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type User struct {
	ID             ID
	Email          c.Email
	FirstName      string
	LastName       string
	PasswordHash   PasswordHash
	EmailConfirmed bool
	CreatedAt      time.Time
}

func (u User) String() string {
	return fmt.Sprintf("User(%s, %s, confirmed=%t)", u.ID, u.Email, u.EmailConfirmed)
}

type ConfirmationToken struct {
	UserID    ID
	Token     token.Value
	ExpiresAt time.Time
}

func (t ConfirmationToken) IsValidAt(at time.Time) bool {
	return token.IsValidAt(t.ExpiresAt, at)
}

type ResetToken struct {
	UserID    ID
	Token     token.Value
	ExpiresAt time.Time
}

func (t ResetToken) IsValidAt(at time.Time) bool {
	return token.IsValidAt(t.ExpiresAt, at)
}

// FindValidConfirmationToken reports whether one of the tokens carries the
// given value and is still valid at the given instant. Any live token
// matches, not only the latest one.
func FindValidConfirmationToken(tokens []ConfirmationToken, value token.Value, at time.Time) bool {
	for _, t := range tokens {
		if t.Token == value && t.IsValidAt(at) {
			return true
		}
	}
	return false
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type IdentityGenerator interface {
	GenerateID() ID
}
