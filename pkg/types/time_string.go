package types

import (
	"fmt"
	"strconv"
	"time"
)

const timeLayout = "15:04"

// TimeString время суток в формате HH:MM (например, "09:30")
type TimeString string

// NewTimeString создает TimeString из времени (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит и валидирует строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Clock возвращает часы и минуты
func (t TimeString) Clock() (hour, minute int, err error) {
	if err := t.Validate(); err != nil {
		return 0, 0, err
	}
	hour, _ = strconv.Atoi(string(t[0:2]))
	minute, _ = strconv.Atoi(string(t[3:5]))
	return hour, minute, nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	hour, minute, err := t.Clock()
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}
