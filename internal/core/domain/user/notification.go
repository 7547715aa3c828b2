package user

import (
	"context"
	c "onboarding/internal/core/domain/common"
	"onboarding/internal/core/domain/token"
)

type ConfirmationTokenSender interface {
	SendConfirmationToken(ctx context.Context, email c.Email, token token.Value) error
}

type ResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, email c.Email, token token.Value) error
}
