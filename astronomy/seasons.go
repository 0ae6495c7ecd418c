// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/datetime"
)

var (
	_ datetime.DynamicDateRange = SummerSolstice{}
	_ datetime.DynamicDateRange = WinterSolstice{}
	_ datetime.DynamicDateRange = SpringEquinox{}
	_ datetime.DynamicDateRange = AutumnEquinox{}
	_ datetime.DynamicDateRange = Winter{}
	_ datetime.DynamicDateRange = Spring{}
	_ datetime.DynamicDateRange = Summer{}
	_ datetime.DynamicDateRange = Autumn{}
)

// calendarDate returns the calendar date of the event computed by fn for
// year in loc, UTC if loc is nil.
func calendarDate(fn func(int, *time.Location) time.Time, year int, loc *time.Location) datetime.CalendarDate {
	if loc == nil {
		loc = time.UTC
	}
	return datetime.CalendarDateFromTime(fn(year, loc))
}

func singleDay(cd datetime.CalendarDate) datetime.CalendarDateRange {
	return datetime.NewCalendarDateRange(cd, cd)
}

// SummerSolstice implements datetime.DynamicDateRange for the summer solstice
// as observed in Location (UTC if nil).
type SummerSolstice struct{ Location *time.Location }

func (s SummerSolstice) Name() string {
	return "SummerSolstice"
}

func (s SummerSolstice) Evaluate(year int) datetime.CalendarDateRange {
	return singleDay(calendarDate(June, year, s.Location))
}

// WinterSolstice implements datetime.DynamicDateRange for the winter solstice.
type WinterSolstice struct{ Location *time.Location }

func (s WinterSolstice) Name() string {
	return "WinterSolstice"
}

func (s WinterSolstice) Evaluate(year int) datetime.CalendarDateRange {
	return singleDay(calendarDate(December, year, s.Location))
}

// SpringEquinox implements datetime.DynamicDateRange for the spring equinox.
type SpringEquinox struct{ Location *time.Location }

func (s SpringEquinox) Name() string {
	return "SpringEquinox"
}

func (s SpringEquinox) Evaluate(year int) datetime.CalendarDateRange {
	return singleDay(calendarDate(March, year, s.Location))
}

// AutumnEquinox implements datetime.DynamicDateRange for the autumn equinox.
type AutumnEquinox struct{ Location *time.Location }

func (s AutumnEquinox) Name() string {
	return "AutumnEquinox"
}

func (s AutumnEquinox) Evaluate(year int) datetime.CalendarDateRange {
	return singleDay(calendarDate(September, year, s.Location))
}

// Winter implements datetime.DynamicDateRange for the winter season, from
// the winter solstice to the following spring equinox.
type Winter struct{ Location *time.Location }

func (w Winter) Name() string {
	return "Winter"
}

func (w Winter) Evaluate(year int) datetime.CalendarDateRange {
	return datetime.NewCalendarDateRange(
		calendarDate(December, year, w.Location),
		calendarDate(March, year+1, w.Location))
}

// Spring implements datetime.DynamicDateRange for the spring season.
type Spring struct{ Location *time.Location }

func (s Spring) Name() string {
	return "Spring"
}

func (s Spring) Evaluate(year int) datetime.CalendarDateRange {
	return datetime.NewCalendarDateRange(
		calendarDate(March, year, s.Location),
		calendarDate(June, year, s.Location))
}

// Summer implements datetime.DynamicDateRange for the summer season.
type Summer struct{ Location *time.Location }

func (s Summer) Name() string {
	return "Summer"
}

func (s Summer) Evaluate(year int) datetime.CalendarDateRange {
	return datetime.NewCalendarDateRange(
		calendarDate(June, year, s.Location),
		calendarDate(September, year, s.Location))
}

// Autumn implements datetime.DynamicDateRange for the autumn season,
// LocalName, eg. Fall, is returned by Name if set.
type Autumn struct {
	LocalName string
	Location  *time.Location
}

func (a Autumn) Name() string {
	if a.LocalName != "" {
		return a.LocalName
	}
	return "Autumn"
}

func (a Autumn) Evaluate(year int) datetime.CalendarDateRange {
	return datetime.NewCalendarDateRange(
		calendarDate(September, year, a.Location),
		calendarDate(December, year, a.Location))
}
