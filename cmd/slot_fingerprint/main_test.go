package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/study_system/internal/model"
)

func TestParseArgs(t *testing.T) {
	ts, err := parseArgs([]string{"Hétfő", "10", "15"})
	require.NoError(t, err)
	assert.Equal(t, 1910915, ts.Fingerprint())

	ts, err = parseArgs([]string{"friday", "9"})
	require.NoError(t, err)
	assert.Equal(t, "Friday 9:00", ts.String())

	_, err = parseArgs([]string{"Tuesday", "24", "0"})
	assert.ErrorIs(t, err, model.ErrInvalidTimeSlot)

	_, err = parseArgs([]string{"Tuesday", "ten"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"Tuesday"})
	assert.Error(t, err)
}

func TestCheckWeek(t *testing.T) {
	n, err := checkWeek()
	require.NoError(t, err)
	assert.Equal(t, 10080, n)
}
