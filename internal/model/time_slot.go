package model

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrInvalidTimeSlot возвращается при попытке создать некорректную точку времени
var ErrInvalidTimeSlot = errors.New("invalid time point")

// ValidationError описывает все нарушения, найденные при создании TimeSlot
type ValidationError struct {
	Day    Day
	Hour   int
	Minute int
	Err    error // объединённые нарушения (multierr)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%s %d:%02d): %v", ErrInvalidTimeSlot, e.Day, e.Hour, e.Minute, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidTimeSlot
}

// Violations возвращает нарушения по отдельности
func (e *ValidationError) Violations() []error {
	return multierr.Errors(e.Err)
}

// TimeSlot еженедельная точка времени: день недели, час и минута.
// Значение неизменяемо; изменение поля создаёт новый TimeSlot через NewTimeSlot.
type TimeSlot struct {
	day    Day
	hour   int
	minute int
}

// NewTimeSlot создаёт точку времени, проверяя день, час (0-23) и минуту (0-59)
func NewTimeSlot(day Day, hour, minute int) (TimeSlot, error) {
	var violations error
	if !day.IsValid() {
		violations = multierr.Append(violations, errors.New("day is not set"))
	}
	if hour < 0 || hour > 23 {
		violations = multierr.Append(violations, fmt.Errorf("hour %d out of range 0-23", hour))
	}
	if minute < 0 || minute > 59 {
		violations = multierr.Append(violations, fmt.Errorf("minute %d out of range 0-59", minute))
	}
	if violations != nil {
		return TimeSlot{}, &ValidationError{Day: day, Hour: hour, Minute: minute, Err: violations}
	}

	ts := TimeSlot{day: day, hour: hour, minute: minute}
	zap.L().Debug("TimeSlot created",
		zap.Stringer("time_slot", ts),
		zap.Int("fingerprint", ts.Fingerprint()))

	return ts, nil
}

// NewTimeSlotAtHour создаёт точку времени в начале часа (минута = 0)
func NewTimeSlotAtHour(day Day, hour int) (TimeSlot, error) {
	return NewTimeSlot(day, hour, 0)
}

func (t TimeSlot) Day() Day {
	return t.day
}

func (t TimeSlot) Hour() int {
	return t.hour
}

func (t TimeSlot) Minute() int {
	return t.minute
}

// WithDay возвращает копию с другим днём
func (t TimeSlot) WithDay(day Day) (TimeSlot, error) {
	return NewTimeSlot(day, t.hour, t.minute)
}

// WithHour возвращает копию с другим часом
func (t TimeSlot) WithHour(hour int) (TimeSlot, error) {
	return NewTimeSlot(t.day, hour, t.minute)
}

// WithMinute возвращает копию с другой минутой
func (t TimeSlot) WithMinute(minute int) (TimeSlot, error) {
	return NewTimeSlot(t.day, t.hour, minute)
}

// String форматирует как "Monday 10:15": час без дополнения нулём, минута всегда двумя цифрами
func (t TimeSlot) String() string {
	return fmt.Sprintf("%s %d:%02d", t.day, t.hour, t.minute)
}

// Equal сравнивает день, час и минуту
func (t TimeSlot) Equal(other TimeSlot) bool {
	return t.day == other.day && t.hour == other.hour && t.minute == other.minute
}

// Fingerprint возвращает числовой отпечаток вида {ДЕНЬ}9{ЧЧ}9{ММ}.
// День занимает одну позицию, час и минута по две,
// между ними разделитель 9, поэтому разные точки времени дают разные отпечатки.
//
// Пример для Monday 10:15: 1910915
func (t TimeSlot) Fingerprint() int {
	return t.day.Code()*1_000_000 + // день
		9*100_000 + // разделитель день - час
		t.hour*1_000 + // час, две позиции
		9*100 + // разделитель час - минута
		t.minute // минута, две позиции
}

// Compare упорядочивает по дню, часу и минуте: -1, 0 или 1
func (t TimeSlot) Compare(other TimeSlot) int {
	a, b := t.MinuteOfWeek(), other.MinuteOfWeek()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MinuteOfWeek возвращает номер минуты от начала недели (понедельник 0:00 = 0)
func (t TimeSlot) MinuteOfWeek() int {
	return (t.day.Code()-1)*24*60 + t.hour*60 + t.minute
}
