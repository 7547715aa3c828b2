package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
}

func TestOptionalOrElse(t *testing.T) {
	assert := require.New(t)

	assert.Equal(true, Some(true).OrElse(false))
	assert.Equal("fallback", None[string]().OrElse("fallback"))
	assert.False(None[int]().IsPresent)
}

func TestNewEmailKeepsCase(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Email("John@Doe.com"), NewEmail("  John@Doe.com "))
	assert.NotEqual(NewEmail("john@doe.com"), NewEmail("John@doe.com"))
}
