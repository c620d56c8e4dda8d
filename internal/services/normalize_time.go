package services

import (
	"birth-chart-service/internal/domain"
	"fmt"
	"time"
)

// Accepted local date-time layouts. The seconds layout is selected by
// string length: anything longer than "YYYY-MM-DD HH:MM" carries seconds.
const (
	layoutMinute = "2006-01-02 15:04"
	layoutSecond = "2006-01-02 15:04:05"
)

// NormalizeLocalTime parses a local wall-clock string in the given IANA
// zone and returns the corresponding UTC instant. The zone's full
// historical offset/DST rules apply, not a fixed offset.
func NormalizeLocalTime(localDT string, tzName string) (time.Time, error) {
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrUnknownTimezone, tzName)
	}

	layout := layoutMinute
	if len(localDT) > len(layoutMinute) {
		layout = layoutSecond
	}

	local, err := time.ParseInLocation(layout, localDT, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want %q)", domain.ErrBadDateTime, localDT, layout)
	}

	return local.UTC(), nil
}

// JulianDayUT converts a UTC instant to the Julian Day number (UT) used
// by the ephemeris engine, with proleptic Gregorian calendar semantics.
// The fractional part comes from hour + minute/60 + second/3600.
func JulianDayUT(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()

	a := (14 - int(month)) / 12
	y := year + 4800 - a
	m := int(month) + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	hour := float64(t.Hour()) + float64(t.Minute())/60.0 + float64(t.Second())/3600.0

	return float64(jdn) + (hour-12.0)/24.0
}
