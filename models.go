// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package suntimes

import (
	"math"
	"time"

	"cloudeng.io/datetime"
	"github.com/soniakeys/unit"
)

// The equation of time series is fitted against a fixed 366 day year
// regardless of whether the year is a leap year.
const eotPeriod = 366.0

// Declination returns the solar declination for j days elapsed since
// January 1 00:00 of a year, eg. j = n - 0.5 for mean noon of the n'th day.
// leap selects a 366 rather than 365 day period. The returned angle is
// accurate to within a few hundredths of a degree.
func Declination(j float64, leap bool) unit.Angle {
	period := 365.0
	if leap {
		period = 366
	}
	wj := 2 * math.Pi / period * j
	return unit.Angle(0.006918 -
		0.399912*math.Cos(wj) - 0.006758*math.Cos(2*wj) - 0.002697*math.Cos(3*wj) +
		0.070257*math.Sin(wj) + 0.000907*math.Sin(2*wj) + 0.001480*math.Sin(3*wj))
}

// DeclinationAt returns the solar declination at the specified instant.
func DeclinationAt(t time.Time) unit.Angle {
	t = t.UTC()
	return Declination(daysSinceNewYear(t), datetime.IsLeap(t.Year()))
}

// EquationOfTime returns the difference, in hours, between apparent and
// mean solar time at the specified instant.
func EquationOfTime(t time.Time) float64 {
	return equationOfTime(2 * math.Pi * daysSinceNewYear(t.UTC()) / eotPeriod)
}

func equationOfTime(wj float64) float64 {
	return -0.0002789049 +
		0.1227715*math.Cos(wj+1.498311) -
		0.1654575*math.Cos(2*wj-1.261546) -
		0.0053538*math.Cos(3*wj-1.1571)
}

// daysSinceNewYear returns the fractional number of days since
// January 1 00:00 of t's year, t must be in UTC.
func daysSinceNewYear(t time.Time) float64 {
	ny := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return t.Sub(ny).Hours() / 24
}

// Angles represents the solar declination and equation of time at
// a given instant.
type Angles struct {
	Declination    unit.Angle
	EquationOfTime float64 // hours
}

// AnglesAt returns the solar declination and equation of time at the
// specified instant.
func AnglesAt(t time.Time) Angles {
	return Angles{
		Declination:    DeclinationAt(t),
		EquationOfTime: EquationOfTime(t),
	}
}

// meanNoonAngles returns the angles used by the first pass of the solver,
// evaluated at mean noon of the day containing midnight.
func meanNoonAngles(midnight time.Time) Angles {
	n := float64(midnight.YearDay())
	return Angles{
		Declination:    Declination(n-0.5, datetime.IsLeap(midnight.Year())),
		EquationOfTime: equationOfTime(2 * math.Pi * (n - 1) / eotPeriod),
	}
}
