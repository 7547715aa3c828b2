package user

import (
	"context"
	"errors"
	c "onboarding/internal/core/domain/common"
)

type RegistrationStatus struct {
	IsRegistered bool
	IsConfirmed  bool
}

func CheckRegistrationStatus(
	ctx context.Context,
	repository UserRepository,
	email c.Email,
) (status RegistrationStatus, err error) {
	u, err := repository.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return status, nil
	}
	if err != nil {
		return status, err
	}
	return RegistrationStatus{IsRegistered: true, IsConfirmed: u.EmailConfirmed}, nil
}
