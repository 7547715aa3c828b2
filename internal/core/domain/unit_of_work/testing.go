package uow

import (
	"context"
	"errors"
	"onboarding/internal/core/domain/user"
)

var ErrFakeBegin = errors.New("could not begin fake unit of work")

type FakeUnitOfWorkContext struct {
	UserRepository              *user.FakeUserRepository
	ConfirmationTokenRepository *user.FakeConfirmationTokenRepository
	ResetTokenRepository        *user.FakeResetTokenRepository
	WasRollbackCalled           bool
	WasCommitCalled             bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	confirmationTokenRepository *user.FakeConfirmationTokenRepository,
	resetTokenRepository *user.FakeResetTokenRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:              userRepository,
		ConfirmationTokenRepository: confirmationTokenRepository,
		ResetTokenRepository:        resetTokenRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) ConfirmationTokens() user.ConfirmationTokenRepository {
	return c.ConfirmationTokenRepository
}

func (c *FakeUnitOfWorkContext) ResetTokens() user.ResetTokenRepository {
	return c.ResetTokenRepository
}

// FakeUnitOfWork does not isolate writes: a rollback leaves them in the fake
// repositories, tests inspect WasRollbackCalled instead.
type FakeUnitOfWork struct {
	Context     *FakeUnitOfWorkContext
	ReturnError bool
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			user.NewFakeUserRepository(),
			user.NewFakeConfirmationTokenRepository(),
			user.NewFakeResetTokenRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.ReturnError {
		return nil, ErrFakeBegin
	}
	u.Context.WasCommitCalled = false
	u.Context.WasRollbackCalled = false
	return u.Context, nil
}
