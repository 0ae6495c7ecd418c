// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package suntimes

import (
	"math"
	"time"
)

// DefaultReferenceMeridian is the standard meridian used to convert local
// mean solar time to clock time unless overridden, that of Japan Standard
// Time (UTC+9).
const DefaultReferenceMeridian = 135.0

// Option represents an option to the solver.
type Option func(o *options)

type options struct {
	meridian     float64
	zoneMeridian bool
}

// WithReferenceMeridian sets the longitude, in degrees, of the standard
// meridian that the returned clock times are relative to.
func WithReferenceMeridian(deg float64) Option {
	return func(o *options) {
		o.meridian = deg
		o.zoneMeridian = false
	}
}

// WithZoneMeridian derives the standard meridian from the UTC offset of
// the date's location at midnight, 15° per hour, wrapped into
// [-180°, 180°] so that zones such as UTC+14 map onto the meridian of
// their longitude. It overrides any previous WithReferenceMeridian.
func WithZoneMeridian() Option {
	return func(o *options) {
		o.zoneMeridian = true
	}
}

func newOptions(opts []Option) options {
	o := options{meridian: DefaultReferenceMeridian}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// meridianFor returns the validated reference meridian for the given
// local midnight.
func (o options) meridianFor(midnight time.Time) (float64, error) {
	m := o.meridian
	if o.zoneMeridian {
		_, offset := midnight.Zone()
		return math.Remainder(float64(offset)/3600*15, 360), nil
	}
	return m, checkRange("reference meridian", m, -180, 180)
}
