package utils

import (
	"backoffice-service/internal/pkg/constvars"
	"errors"
	"strings"
	"time"
)

var errISO8601NotUTC = errors.New("datetime must carry the UTC designator Z")

// ParseISO8601 accepts RFC 3339 datetimes expressed in UTC ("Z" suffix) with optional
// fractional seconds.
func ParseISO8601(value string) (time.Time, error) {
	if !strings.HasSuffix(value, "Z") {
		return time.Time{}, errISO8601NotUTC
	}
	return time.Parse(time.RFC3339Nano, value)
}

// ShiftByZoneOffset moves t by the offset of loc at that instant, so the wall clock
// shown in loc equals the UTC wall clock of t.
func ShiftByZoneOffset(t time.Time, loc *time.Location) time.Time {
	_, offset := t.In(loc).Zone()
	return t.Add(-time.Duration(offset) * time.Second).In(loc)
}

func FormatClockTime(t time.Time) string {
	return t.Format(constvars.AppointmentTimeLayout)
}

var flexibleTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// ParseFlexibleTime is the lenient counterpart of ParseISO8601 for query filters and stored records:
// any RFC 3339 offset, a bare local datetime or a date. Values without an offset are read in loc.
func ParseFlexibleTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	var err error
	for _, layout := range flexibleTimeLayouts {
		var t time.Time
		t, err = time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
