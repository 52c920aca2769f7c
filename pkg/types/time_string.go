package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString clock time of day in "HH:MM" form
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда время выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

const minutesPerDay = 24 * 60

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку вида "HH:MM" или "HH:MM:00"
// Секунды допускаются только нулевые: форма браузера присылает их именно так
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts) == 3 && parts[2] != "00" {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := parseTwoDigits(parts[0], 23)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minutes, err := parseTwoDigits(parts[1], 59)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return fromMinutes(hours*60 + minutes), nil
}

// Validate проверяет формат строки
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := NewTimeStringFromString(string(t))
	if err != nil {
		return 0, err
	}
	h, _ := strconv.Atoi(string(parsed[0:2]))
	m, _ := strconv.Atoi(string(parsed[3:5]))
	return h*60 + m, nil
}

// AddMinutes возвращает время, сдвинутое на n минут в пределах тех же суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	base, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := base + n
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d min", ErrTimeOverflow, t, n)
	}
	return fromMinutes(total), nil
}

// IsBefore сравнивает два значения; некорректные значения не упорядочены
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

// IsAfter сравнивает два значения; некорректные значения не упорядочены
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a > b
}

func (t TimeString) String() string {
	return string(t)
}

func fromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

func parseTwoDigits(s string, max int) (int, error) {
	if len(s) != 2 {
		return 0, ErrInvalidTimeString
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > max {
		return 0, ErrInvalidTimeString
	}
	return v, nil
}
