package user

import (
	"context"
	c "onboarding/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	ID           ID
	Email        c.Email
	FirstName    string
	LastName     string
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	FirstName      c.Optional[string]
	LastName       c.Optional[string]
	PasswordHash   c.Optional[PasswordHash]
	EmailConfirmed c.Optional[bool]
}

// UserRepository reports a missing user with ErrUserNotFound and a duplicate
// email with ErrUserAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	Update(ctx context.Context, id ID, input UpdateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
}

// ConfirmationTokenRepository is append-only: several live tokens may exist
// for one user.
type ConfirmationTokenRepository interface {
	Save(ctx context.Context, token ConfirmationToken) error
	GetByUserID(ctx context.Context, userID ID) ([]ConfirmationToken, error)
}

// ResetTokenRepository keeps at most one token per user, Save overwrites it.
type ResetTokenRepository interface {
	Save(ctx context.Context, token ResetToken) error
	GetByUserID(ctx context.Context, userID ID) (ResetToken, error)
	Delete(ctx context.Context, userID ID) error
}
