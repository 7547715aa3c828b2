package errors

import (
	stderrors "errors"
	"fmt"
)

type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return e.msg
}

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

// Kind tags a DomainError so that callers can switch over every failure
// an operation may return.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindUserAlreadyExists
	KindEmailUnconfirmed
	KindEmailInvalid
	KindPasswordInvalid
	KindFirstNameInvalid
	KindLastNameInvalid
	KindUserNotFound
	KindTokenNotFoundOrExpired
	KindUserAlreadyConfirmed
	KindUserNotConfirmed
	KindSendConfirmationEmail
	KindSendResetPasswordEmail
)

var kindNames = map[Kind]string{
	KindUnknown:                "unknown",
	KindUserAlreadyExists:      "user_already_exists",
	KindEmailUnconfirmed:       "email_unconfirmed",
	KindEmailInvalid:           "email_invalid",
	KindPasswordInvalid:        "password_invalid",
	KindFirstNameInvalid:       "first_name_invalid",
	KindLastNameInvalid:        "last_name_invalid",
	KindUserNotFound:           "user_not_found",
	KindTokenNotFoundOrExpired: "token_not_found_or_expired",
	KindUserAlreadyConfirmed:   "user_already_confirmed",
	KindUserNotConfirmed:       "user_not_confirmed",
	KindSendConfirmationEmail:  "send_confirmation_email",
	KindSendResetPasswordEmail: "send_reset_password_email",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

type DomainError struct {
	Kind  Kind
	Msg   string
	Cause error
}

func New(kind Kind, msg string) *DomainError {
	return &DomainError{Kind: kind, Msg: msg}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports a match for any DomainError of the same kind, so wrapped
// copies still satisfy errors.Is against the package sentinels.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Kind == e.Kind
}

// Wrap returns a copy of e that keeps cause reachable through errors.Unwrap.
func (e *DomainError) Wrap(cause error) *DomainError {
	return &DomainError{Kind: e.Kind, Msg: e.Msg, Cause: cause}
}

func KindOf(err error) Kind {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindUnknown
}
