package model

import "time"

// Day день недели с фиксированным кодом: Monday = 1 ... Sunday = 7
type Day int

const (
	// DayUnset нулевое значение, день не задан
	DayUnset Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Days возвращает все дни недели начиная с понедельника
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// IsValid проверяет что день один из семи дней недели
func (d Day) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// Code возвращает код дня 1..7, для неизвестного дня 0
func (d Day) Code() int {
	if !d.IsValid() {
		return 0
	}
	return int(d)
}

func (d Day) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return dayNames[d]
}

// Weekday переводит день в time.Weekday (0 = Sunday).
// Имеет смысл только для валидного дня.
func (d Day) Weekday() time.Weekday {
	return time.Weekday(d.Code() % 7)
}

// DayFromWeekday переводит time.Weekday в Day
func DayFromWeekday(wd time.Weekday) Day {
	if wd < time.Sunday || wd > time.Saturday {
		return DayUnset
	}
	if wd == time.Sunday {
		return Sunday
	}
	return Day(wd)
}
