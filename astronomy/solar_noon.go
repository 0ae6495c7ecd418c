// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/suntimes"
)

// ApparentSolarNoon returns the midpoint of sunrise and sunset on the
// day containing date.
func ApparentSolarNoon(date time.Time, c suntimes.Coordinate, opts ...suntimes.Option) (time.Time, error) {
	t, err := suntimes.Solve(c, date, opts...)
	if err != nil {
		return time.Time{}, err
	}
	return t.SolarNoon(), nil
}

// DynamicTimeOfDay is implemented by events, such as sunrise, whose time
// of day depends on the date and location.
type DynamicTimeOfDay interface {
	Name() string
	Evaluate(date time.Time, c suntimes.Coordinate) (datetime.TimeOfDay, error)
}

var (
	none datetime.TimeOfDay

	_ DynamicTimeOfDay = Sunrise{}
	_ DynamicTimeOfDay = Sunset{}
	_ DynamicTimeOfDay = SolarNoon{}
)

// Sunrise implements DynamicTimeOfDay for sunrise.
type Sunrise struct {
	Options []suntimes.Option
}

func (s Sunrise) Name() string {
	return "Sunrise"
}

func (s Sunrise) Evaluate(date time.Time, c suntimes.Coordinate) (datetime.TimeOfDay, error) {
	t, err := suntimes.Solve(c, date, s.Options...)
	if err != nil {
		return none, err
	}
	return datetime.TimeOfDayFromTime(t.Sunrise), nil
}

// Sunset implements DynamicTimeOfDay for sunset.
type Sunset struct {
	Options []suntimes.Option
}

func (s Sunset) Name() string {
	return "Sunset"
}

func (s Sunset) Evaluate(date time.Time, c suntimes.Coordinate) (datetime.TimeOfDay, error) {
	t, err := suntimes.Solve(c, date, s.Options...)
	if err != nil {
		return none, err
	}
	return datetime.TimeOfDayFromTime(t.Sunset), nil
}

// SolarNoon implements DynamicTimeOfDay for the apparent solar noon
// (aka Zenith).
type SolarNoon struct {
	Options []suntimes.Option
}

func (s SolarNoon) Name() string {
	return "SolarNoon"
}

func (s SolarNoon) Evaluate(date time.Time, c suntimes.Coordinate) (datetime.TimeOfDay, error) {
	t, err := ApparentSolarNoon(date, c, s.Options...)
	if err != nil {
		return none, err
	}
	return datetime.TimeOfDayFromTime(t), nil
}
