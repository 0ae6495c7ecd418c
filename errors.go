// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package suntimes

import (
	"fmt"

	"cloudeng.io/errors"
	"github.com/soniakeys/unit"
)

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("hour angle undefined")
	// ErrPolarDay is matched by a *DomainError for which the sun does not set.
	ErrPolarDay = errors.New("sun does not set")
	// ErrPolarNight is matched by a *DomainError for which the sun does not rise.
	ErrPolarNight = errors.New("sun does not rise")
	// ErrRange is matched by every *RangeError.
	ErrRange = errors.New("value out of range")
)

// DomainError is returned when the cosine of the sunrise hour angle,
// -tan(declination)·tan(latitude), falls outside of [-1, 1], ie. when
// the sun remains above or below the horizon for the whole day.
type DomainError struct {
	Latitude    float64    // degrees
	Declination unit.Angle // at the instant the hour angle was evaluated
	Cos         float64    // the out of range arc-cosine argument
}

// PolarDay returns true if the sun does not set.
func (e *DomainError) PolarDay() bool {
	return e.Cos < -1
}

// PolarNight returns true if the sun does not rise.
func (e *DomainError) PolarNight() bool {
	return e.Cos > 1
}

func (e *DomainError) Error() string {
	cond := ErrPolarNight
	if e.PolarDay() {
		cond = ErrPolarDay
	}
	return fmt.Sprintf("%v at latitude %.4f, declination %.4f°: cos(hour angle) = %.6f",
		cond, e.Latitude, e.Declination.Deg(), e.Cos)
}

// Is supports errors.Is for ErrDomain, ErrPolarDay and ErrPolarNight.
func (e *DomainError) Is(target error) bool {
	switch target {
	case ErrDomain:
		return true
	case ErrPolarDay:
		return e.PolarDay()
	case ErrPolarNight:
		return e.PolarNight()
	}
	return false
}

// RangeError is returned for inputs outside of their valid range, no
// computation is attempted.
type RangeError struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %v: %v not in [%v, %v]", ErrRange, e.Name, e.Value, e.Min, e.Max)
}

// Is supports errors.Is for ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func checkRange(name string, v, lo, hi float64) error {
	// NaN fails both comparisons.
	if v >= lo && v <= hi {
		return nil
	}
	return &RangeError{Name: name, Value: v, Min: lo, Max: hi}
}
