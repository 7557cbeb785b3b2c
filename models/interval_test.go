package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, start, end string) TimeInterval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)
	return TimeInterval{Start: s, End: e}
}

func TestOverlapsSymmetry(t *testing.T) {
	a := interval(t, "2024-01-01T09:00:00Z", "2024-01-01T11:00:00Z")
	b := interval(t, "2024-01-01T10:00:00Z", "2024-01-01T12:00:00Z")

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlapsSelf(t *testing.T) {
	a := interval(t, "2024-01-01T09:00:00Z", "2024-01-01T11:00:00Z")
	assert.True(t, a.Overlaps(a))
}

func TestTouchingIntervalsDoNotOverlap(t *testing.T) {
	a := interval(t, "2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z")
	b := interval(t, "2024-01-01T10:00:00Z", "2024-01-01T11:00:00Z")

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestContainmentOverlaps(t *testing.T) {
	outer := interval(t, "2024-01-01T08:00:00Z", "2024-01-01T18:00:00Z")
	inner := interval(t, "2024-01-01T10:00:00Z", "2024-01-01T11:00:00Z")

	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestClamp(t *testing.T) {
	windowStart, _ := time.Parse(time.RFC3339, "2024-01-01T07:00:00Z")
	windowEnd, _ := time.Parse(time.RFC3339, "2024-01-01T20:00:00Z")

	t.Run("fully inside", func(t *testing.T) {
		iv := interval(t, "2024-01-01T09:00:00Z", "2024-01-01T11:00:00Z")
		clamped, ok := iv.Clamp(windowStart, windowEnd)
		require.True(t, ok)
		assert.Equal(t, iv, clamped)
	})

	t.Run("truncated at both edges", func(t *testing.T) {
		iv := interval(t, "2024-01-01T06:00:00Z", "2024-01-01T21:00:00Z")
		clamped, ok := iv.Clamp(windowStart, windowEnd)
		require.True(t, ok)
		assert.Equal(t, windowStart, clamped.Start)
		assert.Equal(t, windowEnd, clamped.End)
	})

	t.Run("disjoint before window", func(t *testing.T) {
		iv := interval(t, "2024-01-01T05:00:00Z", "2024-01-01T06:30:00Z")
		_, ok := iv.Clamp(windowStart, windowEnd)
		assert.False(t, ok)
	})

	t.Run("touching window start", func(t *testing.T) {
		iv := interval(t, "2024-01-01T06:00:00Z", "2024-01-01T07:00:00Z")
		_, ok := iv.Clamp(windowStart, windowEnd)
		assert.False(t, ok)
	})
}

func TestBookingIsActive(t *testing.T) {
	assert.True(t, Booking{Status: BookingStatusPending}.IsActive())
	assert.True(t, Booking{Status: BookingStatusApproved}.IsActive())
	assert.False(t, Booking{Status: BookingStatusRejected}.IsActive())
	assert.False(t, Booking{Status: BookingStatusCancelled}.IsActive())
}
