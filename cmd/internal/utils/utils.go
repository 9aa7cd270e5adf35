package utils

import (
	"reflect"
	"strings"
	"time"
)

// TimeLayout is the wire format for every timestamp: ISO-8601 in UTC with
// millisecond precision (e.g., "2025-09-09T10:00:00.000Z").
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// MillisInHour is the length of one meeting slot.
const MillisInHour int64 = 3600000

func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(TimeLayout)
}

func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

func FromEpoch(iso string) (int64, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// IsHourExact checks if the given epoch milliseconds represents
// an exact hour (e.g., 14:00:00.000).
func IsHourExact(millis int64) bool {
	// An exact hour is perfectly divisible by the number
	// of milliseconds in one hour.
	return millis%MillisInHour == 0
}

// IsHourMark reports whether the string is a parseable timestamp landing on
// an exact UTC hour. Anything unparseable reads as "not at the hour mark".
func IsHourMark(iso string) bool {
	millis, err := FromEpoch(iso)
	if err != nil {
		return false
	}
	return IsHourExact(millis)
}

// FloorToHour truncates epoch milliseconds down to the enclosing hour.
func FloorToHour(millis int64) int64 {
	return millis - millis%MillisInHour
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
