// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"context"
	"math"
	"time"

	"cloudeng.io/suntimes"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// JDEToTime returns the instant for the specified Julian ephemeris day.
// The difference between TT and UTC, about a minute, is ignored.
func JDEToTime(jde float64) time.Time {
	y, m, d := julian.JDToCalendar(jde)
	day := math.Floor(d)
	midnight := time.Date(y, time.Month(m), int(day), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration((d - day) * 24 * float64(time.Hour)))
}

func dateIn(jde float64, loc *time.Location) time.Time {
	y, m, d := JDEToTime(jde).In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// December returns midnight of the day of the winter solstice, in the
// northern hemisphere, in the specified location.
func December(year int, loc *time.Location) time.Time {
	return dateIn(solstice.December(year), loc)
}

// March returns midnight of the day of the vernal/spring equinox,
// in the northern hemisphere, in the specified location.
func March(year int, loc *time.Location) time.Time {
	return dateIn(solstice.March(year), loc)
}

// June returns midnight of the day of the summer solstice, in the
// northern hemisphere, in the specified location.
func June(year int, loc *time.Location) time.Time {
	return dateIn(solstice.June(year), loc)
}

// September returns midnight of the day of the autumnal equinox,
// in the northern hemisphere, in the specified location.
func September(year int, loc *time.Location) time.Time {
	return dateIn(solstice.September(year), loc)
}

// solsticeWindow is the number of days either side of a solstice that
// are searched for the longest or shortest day.
const solsticeWindow = 3

// LongestDay returns the day with the longest time between sunrise and
// sunset near the summer solstice for the hemisphere containing c.
func LongestDay(ctx context.Context, year int, loc *time.Location, c suntimes.Coordinate, opts ...suntimes.Option) (suntimes.Day, error) {
	near := June(year, loc)
	if c.Latitude < 0 {
		near = December(year, loc)
	}
	return extremeDay(ctx, near, c, opts, func(a, b time.Duration) bool { return a > b })
}

// ShortestDay returns the day with the shortest time between sunrise and
// sunset near the winter solstice for the hemisphere containing c.
func ShortestDay(ctx context.Context, year int, loc *time.Location, c suntimes.Coordinate, opts ...suntimes.Option) (suntimes.Day, error) {
	near := December(year, loc)
	if c.Latitude < 0 {
		near = June(year, loc)
	}
	return extremeDay(ctx, near, c, opts, func(a, b time.Duration) bool { return a < b })
}

func extremeDay(ctx context.Context, near time.Time, c suntimes.Coordinate, opts []suntimes.Option, better func(a, b time.Duration) bool) (suntimes.Day, error) {
	days, err := suntimes.Days(ctx,
		c, near.AddDate(0, 0, -solsticeWindow), near.AddDate(0, 0, solsticeWindow), opts...)
	if err != nil {
		return suntimes.Day{}, err
	}
	best := -1
	for i, d := range days {
		if d.Err != nil {
			continue
		}
		if best < 0 || better(d.DayLength(), days[best].DayLength()) {
			best = i
		}
	}
	if best < 0 {
		return suntimes.Day{}, days[0].Err
	}
	return days[best], nil
}
