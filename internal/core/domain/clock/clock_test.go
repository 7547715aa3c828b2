package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemClockIsUTC(t *testing.T) {
	require.Equal(t, time.UTC, NewSystem().Now().Location())
}

func TestFakeClockAdvance(t *testing.T) {
	assert := require.New(t)
	start := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	c := NewFakeClock(start)
	assert.Equal(start, c.Now())

	c.Advance(time.Hour)
	assert.Equal(start.Add(time.Hour), c.Now())

	c.Set(start)
	assert.Equal(start, c.Now())
}

func TestFunc(t *testing.T) {
	at := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	var c Clock = Func(func() time.Time { return at })
	require.Equal(t, at, c.Now())
}
