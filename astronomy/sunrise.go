// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/suntimes"
	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"
)

// ErrNoReference is returned by Compare when the reference ephemeris
// could not compute a sunrise or sunset.
var ErrNoReference = errors.New("reference ephemeris has no sunrise or sunset")

// Reference returns the times of sunrise and sunset for the day containing
// date at c as computed by an independent ephemeris. ok is false if the
// ephemeris could not compute them.
type Reference func(date time.Time, c suntimes.Coordinate) (rise, set time.Time, ok bool)

// GoSunrise is a Reference implemented by github.com/nathan-osman/go-sunrise.
// The returned times are in date's location.
func GoSunrise(date time.Time, c suntimes.Coordinate) (rise, set time.Time, ok bool) {
	y, m, d := date.Date()
	rise, set = sunrise.SunriseSunset(c.Latitude, c.Longitude, y, m, d)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, false
	}
	return rise.In(date.Location()), set.In(date.Location()), true
}

// SunCalc is a Reference implemented by github.com/sixdouglas/suncalc.
// The returned times are in date's location.
func SunCalc(date time.Time, c suntimes.Coordinate) (rise, set time.Time, ok bool) {
	y, m, d := date.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, date.Location())
	times := suncalc.GetTimes(noon, c.Latitude, c.Longitude)
	rise, set = times[suncalc.Sunrise].Value, times[suncalc.Sunset].Value
	// suncalc returns unusable times, rather than an error, when the
	// sun does not rise or set.
	if rise.IsZero() || set.IsZero() || !rise.Before(set) || set.Sub(rise) > 24*time.Hour {
		return time.Time{}, time.Time{}, false
	}
	return rise.In(date.Location()), set.In(date.Location()), true
}

// Deviation represents the signed difference between sunrise and sunset
// computed by suntimes.Solve and a Reference.
type Deviation struct {
	Sunrise time.Duration
	Sunset  time.Duration
}

// Max returns the larger of the absolute sunrise and sunset deviations.
func (d Deviation) Max() time.Duration {
	return max(absDuration(d.Sunrise), absDuration(d.Sunset))
}

func (d Deviation) String() string {
	return fmt.Sprintf("sunrise %+v, sunset %+v", d.Sunrise, d.Sunset)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// Compare returns the deviation of suntimes.Solve from the specified
// reference for the day containing date at c.
func Compare(ref Reference, date time.Time, c suntimes.Coordinate, opts ...suntimes.Option) (Deviation, error) {
	t, err := suntimes.Solve(c, date, opts...)
	if err != nil {
		return Deviation{}, err
	}
	rise, set, ok := ref(date, c)
	if !ok {
		return Deviation{}, fmt.Errorf("%v on %v: %w", c, date.Format(time.DateOnly), ErrNoReference)
	}
	return Deviation{
		Sunrise: t.Sunrise.Sub(rise),
		Sunset:  t.Sunset.Sub(set),
	}, nil
}
