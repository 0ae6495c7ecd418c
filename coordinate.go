// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package suntimes

import (
	"fmt"
	"time"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// Coordinate represents a location on the earth's surface in degrees.
type Coordinate struct {
	Latitude  float64 // [-90, 90], positive north
	Longitude float64 // [-180, 180], positive east
}

// Validate returns a *RangeError if either the latitude or longitude is
// out of range.
func (c Coordinate) Validate() error {
	if err := checkRange("latitude", c.Latitude, -90, 90); err != nil {
		return err
	}
	return checkRange("longitude", c.Longitude, -180, 180)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%#.0s, %#.0s",
		sexa.FmtAngle(unit.AngleFromDeg(c.Latitude)),
		sexa.FmtAngle(unit.AngleFromDeg(c.Longitude)))
}

// Times represents the sunrise and sunset for a single day.
type Times struct {
	Sunrise time.Time
	Sunset  time.Time
}

// DayLength returns the time between sunrise and sunset.
func (t Times) DayLength() time.Duration {
	return t.Sunset.Sub(t.Sunrise)
}

// SolarNoon returns the midpoint of sunrise and sunset, an estimate of
// apparent solar noon.
func (t Times) SolarNoon() time.Time {
	return t.Sunrise.Add(t.DayLength() / 2)
}
