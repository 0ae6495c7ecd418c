// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package suntimes

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

var (
	// Semi-diameter of the solar disc and standard atmospheric refraction
	// at the horizon.
	semiDiameter = unit.AngleFromMin(31.8 / 2)
	refraction   = unit.AngleFromMin(34.3333333)

	// horizonCorrection is the time, in hours, the sun takes to move
	// through the combined semi-diameter and refraction angle.
	horizonCorrection = (semiDiameter + refraction).HourAngle().Hour()
)

// SunriseSunset returns the times of sunrise and sunset for the day
// containing date at the specified latitude and longitude in degrees.
// The returned times are in date's location. The times are computed
// by SunriseSunsetCoarse and then refined by re-evaluating the solar
// declination and equation of time at the estimated sunrise and sunset.
func SunriseSunset(lat, long float64, date time.Time, opts ...Option) (sunrise, sunset time.Time, err error) {
	t, err := Solve(Coordinate{Latitude: lat, Longitude: long}, date, opts...)
	return t.Sunrise, t.Sunset, err
}

// SunriseSunsetCoarse is like SunriseSunset but returns the single pass
// estimate computed using the solar declination and equation of time
// at mean noon.
func SunriseSunsetCoarse(lat, long float64, date time.Time, opts ...Option) (sunrise, sunset time.Time, err error) {
	t, err := SolveCoarse(Coordinate{Latitude: lat, Longitude: long}, date, opts...)
	return t.Sunrise, t.Sunset, err
}

// Solve is like SunriseSunset but accepts a Coordinate and returns Times.
func Solve(c Coordinate, date time.Time, opts ...Option) (Times, error) {
	s, err := newSolver(c, date, opts)
	if err != nil {
		return Times{}, err
	}
	t, err := s.coarse()
	if err != nil {
		return Times{}, err
	}
	return s.refine(t)
}

// SolveCoarse is like SunriseSunsetCoarse but accepts a Coordinate and
// returns Times.
func SolveCoarse(c Coordinate, date time.Time, opts ...Option) (Times, error) {
	s, err := newSolver(c, date, opts)
	if err != nil {
		return Times{}, err
	}
	return s.coarse()
}

type solver struct {
	latDeg   float64
	lat      unit.Angle
	offset   float64 // hours from the reference meridian, positive east
	midnight time.Time
}

func newSolver(c Coordinate, date time.Time, opts []Option) (solver, error) {
	if err := c.Validate(); err != nil {
		return solver{}, err
	}
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	meridian, err := newOptions(opts).meridianFor(midnight)
	if err != nil {
		return solver{}, err
	}
	return solver{
		latDeg:   c.Latitude,
		lat:      unit.AngleFromDeg(c.Latitude),
		offset:   (c.Longitude - meridian) / 15,
		midnight: midnight,
	}, nil
}

// hourAngle returns the hour angle, in hours, of sunrise for the given
// declination.
func (s solver) hourAngle(decl unit.Angle) (float64, error) {
	x := -decl.Tan() * s.lat.Tan()
	if !(x >= -1 && x <= 1) {
		return 0, &DomainError{Latitude: s.latDeg, Declination: decl, Cos: x}
	}
	return unit.HourAngle(math.Acos(x)).Hour(), nil
}

func (s solver) sunrise(a Angles) (time.Time, error) {
	h, err := s.hourAngle(a.Declination)
	if err != nil {
		return time.Time{}, err
	}
	return s.at(12 - (h + s.offset + a.EquationOfTime) - horizonCorrection), nil
}

func (s solver) sunset(a Angles) (time.Time, error) {
	h, err := s.hourAngle(a.Declination)
	if err != nil {
		return time.Time{}, err
	}
	return s.at(12 - (-h + s.offset + a.EquationOfTime) + horizonCorrection), nil
}

// at returns local midnight plus the specified number of hours, rounded
// to the nearest second.
func (s solver) at(hours float64) time.Time {
	return s.midnight.Add(time.Duration(math.Round(hours*3600)) * time.Second)
}

func (s solver) coarse() (Times, error) {
	a := meanNoonAngles(s.midnight)
	rise, err := s.sunrise(a)
	if err != nil {
		return Times{}, err
	}
	set, err := s.sunset(a)
	if err != nil {
		return Times{}, err
	}
	return Times{Sunrise: rise, Sunset: set}, nil
}

// refine recomputes sunrise and sunset using the declination and equation
// of time at the estimates in t, each event independently.
func (s solver) refine(t Times) (Times, error) {
	rise, err := s.sunrise(AnglesAt(t.Sunrise))
	if err != nil {
		return Times{}, err
	}
	set, err := s.sunset(AnglesAt(t.Sunset))
	if err != nil {
		return Times{}, err
	}
	return Times{Sunrise: rise, Sunset: set}, nil
}
