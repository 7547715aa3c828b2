package user

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

const MinPasswordLen = 8

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperCase    = regexp.MustCompile(`[A-Z]`)
	lowerCase    = regexp.MustCompile(`[a-z]`)
	digit        = regexp.MustCompile(`[0-9]`)
	symbol       = regexp.MustCompile(`[^A-Za-z0-9]`)
)

type RegistrationFields struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ValidateRegistration checks the fields in a fixed order and returns the
// error of the first failing one.
func ValidateRegistration(fields RegistrationFields) error {
	if err := ValidateEmail(fields.Email); err != nil {
		return err
	}
	if err := ValidatePassword(RawPassword(fields.Password)); err != nil {
		return err
	}
	if err := validation.Validate(strings.TrimSpace(fields.FirstName), validation.Required); err != nil {
		return ErrFirstNameInvalid.Wrap(err)
	}
	if err := validation.Validate(strings.TrimSpace(fields.LastName), validation.Required); err != nil {
		return ErrLastNameInvalid.Wrap(err)
	}
	return nil
}

func ValidateEmail(email string) error {
	err := validation.Validate(
		email,
		validation.Required,
		validation.Match(emailPattern),
	)
	if err != nil {
		return ErrEmailInvalid.Wrap(err)
	}
	return nil
}

func ValidatePassword(password RawPassword) error {
	err := validation.Validate(
		string(password),
		validation.Required,
		validation.Length(MinPasswordLen, 0),
		validation.Match(upperCase).Error("must contain an upper-case letter"),
		validation.Match(lowerCase).Error("must contain a lower-case letter"),
		validation.Match(digit).Error("must contain a digit"),
		validation.Match(symbol).Error("must contain a symbol"),
	)
	if err != nil {
		return ErrPasswordInvalid.Wrap(err)
	}
	return nil
}
