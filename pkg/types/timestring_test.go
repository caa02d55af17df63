package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("9:30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 10, 14, 5, 0, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestOrdering(t *testing.T) {
	early, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("17:30")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
}

func TestAddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:45")
	require.NoError(t, err)

	moved, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "11:15", moved.String())

	_, err = ts.AddMinutes(14 * 60)
	assert.Error(t, err, "crossing midnight must fail")
}

func TestMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("02:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 150, minutes)
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String(), "seconds from postgres TIME columns are trimmed")

	require.NoError(t, ts.Scan([]byte("16:45:59")))
	assert.Equal(t, "16:45", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 9, 10, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, "08:15", ts.String())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)
}
