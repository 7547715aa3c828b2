package token

import (
	"onboarding/internal/core/domain/clock"
	e "onboarding/internal/core/domain/errors"
	"time"

	"github.com/golang-module/carbon/v2"
)

const (
	ConfirmationTTL = 24 * time.Hour
	ResetTTL        = 10 * time.Minute
)

// Value is an opaque token string delivered to the user.
type Value string

type Generator interface {
	GenerateToken() Value
}

// Offset maps the issuing instant to the expiration instant.
type Offset func(now time.Time) time.Time

func HoursLater(hours int) Offset {
	return func(now time.Time) time.Time {
		return carbon.Time2Carbon(now).AddHours(hours).Carbon2Time().In(now.Location())
	}
}

func MinutesLater(minutes int) Offset {
	return func(now time.Time) time.Time {
		return carbon.Time2Carbon(now).AddMinutes(minutes).Carbon2Time().In(now.Location())
	}
}

func After(d time.Duration) Offset {
	return func(now time.Time) time.Time {
		return now.Add(d)
	}
}

type Issued struct {
	Value     Value
	ExpiresAt time.Time
}

// IsValidAt reports whether the token can still be used at the given instant.
func IsValidAt(expiresAt time.Time, at time.Time) bool {
	return at.Before(expiresAt)
}

type Issuer struct {
	generator Generator
	offset    Offset
	clock     clock.Clock
}

func NewIssuer(generator Generator, offset Offset, clock clock.Clock) *Issuer {
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	if offset == nil {
		panic(e.NewNilArgumentError("offset"))
	}
	if clock == nil {
		panic(e.NewNilArgumentError("clock"))
	}
	return &Issuer{generator: generator, offset: offset, clock: clock}
}

// NewConfirmationIssuer issues email confirmation tokens. A nil offset
// falls back to 24 hours.
func NewConfirmationIssuer(generator Generator, offset Offset, clock clock.Clock) *Issuer {
	if offset == nil {
		offset = HoursLater(24)
	}
	return NewIssuer(generator, offset, clock)
}

// NewResetIssuer issues password reset tokens. A nil offset falls back to
// 10 minutes.
func NewResetIssuer(generator Generator, offset Offset, clock clock.Clock) *Issuer {
	if offset == nil {
		offset = MinutesLater(10)
	}
	return NewIssuer(generator, offset, clock)
}

func (i *Issuer) Issue() Issued {
	return Issued{
		Value:     i.generator.GenerateToken(),
		ExpiresAt: i.offset(i.clock.Now()),
	}
}
