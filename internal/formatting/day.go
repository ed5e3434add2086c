package formatting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/study_system/internal/model"
)

// Locale язык отображения названий дней
type Locale string

const (
	LocaleEnglish   Locale = "en"
	LocaleHungarian Locale = "hu"
)

var (
	ErrUnknownLocale = errors.New("unknown locale")
	ErrUnknownDay    = errors.New("unknown day")
)

var dayNames = map[Locale][]string{
	LocaleEnglish: {
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
		"Saturday",
		"Sunday",
	},
	LocaleHungarian: {
		"Hétfő",
		"Kedd",
		"Szerda",
		"Csütörtök",
		"Péntek",
		"Szombat",
		"Vasárnap",
	},
}

var dayShortNames = map[Locale][]string{
	LocaleEnglish:   {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	LocaleHungarian: {"H", "K", "Sze", "Cs", "P", "Szo", "V"},
}

// ParseLocale разбирает код языка ("en", "hu")
func ParseLocale(s string) (Locale, error) {
	loc := Locale(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := dayNames[loc]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
	return loc, nil
}

// DayName возвращает название дня недели на выбранном языке
func DayName(loc Locale, day model.Day) string {
	return lookup(dayNames, loc, day, "?")
}

// DayShortName возвращает краткое название дня недели
func DayShortName(loc Locale, day model.Day) string {
	return lookup(dayShortNames, loc, day, "?")
}

func lookup(table map[Locale][]string, loc Locale, day model.Day, fallback string) string {
	names, ok := table[loc]
	if !ok {
		names = table[LocaleEnglish]
	}
	if !day.IsValid() {
		return fallback
	}
	return names[day.Code()-1]
}

// FormatTimeSlot форматирует точку времени с локализованным днём: "Hétfő 10:15"
func FormatTimeSlot(loc Locale, ts model.TimeSlot) string {
	return fmt.Sprintf("%s %d:%02d", DayName(loc, ts.Day()), ts.Hour(), ts.Minute())
}

// ParseDay находит день по полному названию на любом из языков
func ParseDay(name string) (model.Day, error) {
	needle := strings.TrimSpace(name)
	for _, names := range dayNames {
		for i, n := range names {
			if strings.EqualFold(n, needle) {
				return model.Day(i + 1), nil
			}
		}
	}
	return model.DayUnset, fmt.Errorf("%w: %q", ErrUnknownDay, name)
}
