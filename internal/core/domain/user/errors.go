package user

import (
	e "onboarding/internal/core/domain/errors"
)

var (
	ErrUserAlreadyExists      = e.New(e.KindUserAlreadyExists, "user already exists")
	ErrEmailUnconfirmed       = e.New(e.KindEmailUnconfirmed, "email is registered but not confirmed")
	ErrEmailInvalid           = e.New(e.KindEmailInvalid, "email is invalid")
	ErrPasswordInvalid        = e.New(e.KindPasswordInvalid, "password is invalid")
	ErrFirstNameInvalid       = e.New(e.KindFirstNameInvalid, "first name is invalid")
	ErrLastNameInvalid        = e.New(e.KindLastNameInvalid, "last name is invalid")
	ErrUserNotFound           = e.New(e.KindUserNotFound, "user not found")
	ErrTokenNotFoundOrExpired = e.New(e.KindTokenNotFoundOrExpired, "token not found or expired")
	ErrUserAlreadyConfirmed   = e.New(e.KindUserAlreadyConfirmed, "user is already confirmed")
	ErrUserNotConfirmed       = e.New(e.KindUserNotConfirmed, "user is not confirmed")
	ErrSendConfirmationEmail  = e.New(e.KindSendConfirmationEmail, "could not send confirmation email")
	ErrSendResetPasswordEmail = e.New(e.KindSendResetPasswordEmail, "could not send password reset email")
)
