package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/study_system/internal/model"
)

func TestDayName(t *testing.T) {
	hu := []string{"Hétfő", "Kedd", "Szerda", "Csütörtök", "Péntek", "Szombat", "Vasárnap"}
	for i, day := range model.Days() {
		assert.Equal(t, hu[i], DayName(LocaleHungarian, day))
		assert.Equal(t, day.String(), DayName(LocaleEnglish, day))
	}

	assert.Equal(t, "?", DayName(LocaleHungarian, model.DayUnset))
	assert.Equal(t, "Friday", DayName(Locale("de"), model.Friday))
	assert.Equal(t, "Sze", DayShortName(LocaleHungarian, model.Wednesday))
	assert.Equal(t, "Sun", DayShortName(LocaleEnglish, model.Sunday))
}

func TestFormatTimeSlot(t *testing.T) {
	ts, err := model.NewTimeSlot(model.Monday, 10, 15)
	require.NoError(t, err)
	assert.Equal(t, "Hétfő 10:15", FormatTimeSlot(LocaleHungarian, ts))
	assert.Equal(t, ts.String(), FormatTimeSlot(LocaleEnglish, ts))

	ts, err = model.NewTimeSlot(model.Sunday, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Vasárnap 0:00", FormatTimeSlot(LocaleHungarian, ts))
}

func TestParseLocale(t *testing.T) {
	loc, err := ParseLocale(" HU ")
	require.NoError(t, err)
	assert.Equal(t, LocaleHungarian, loc)

	loc, err = ParseLocale("en")
	require.NoError(t, err)
	assert.Equal(t, LocaleEnglish, loc)

	_, err = ParseLocale("fr")
	assert.ErrorIs(t, err, ErrUnknownLocale)
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want model.Day
	}{
		{"Monday", model.Monday},
		{"hétfő", model.Monday},
		{"  Vasárnap ", model.Sunday},
		{"CSÜTÖRTÖK", model.Thursday},
		{"saturday", model.Saturday},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			day, err := ParseDay(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, day)
		})
	}

	_, err := ParseDay("Funday")
	assert.ErrorIs(t, err, ErrUnknownDay)
}
