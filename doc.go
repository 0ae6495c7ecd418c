// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package suntimes computes approximate sunrise and sunset times for a
// location and calendar date using closed-form Fourier approximations of
// the solar declination and the equation of time.
//
// The solver runs in two passes. The first pass evaluates declination and
// the equation of time at mean local noon and solves for the hour angle at
// which the upper limb of the sun crosses the horizon. The second pass
// re-evaluates both models at the instants estimated by the first pass,
// separately for sunrise and sunset, which accounts for their drift over
// the course of the day:
//
//	rise, set, err := suntimes.SunriseSunset(35.6895, 139.6917,
//		time.Date(2013, 3, 20, 0, 0, 0, 0, jst))
//
// Times are expressed relative to a standard meridian, 135°E by default,
// and anchored to midnight of the supplied date in that date's location.
// WithReferenceMeridian or WithZoneMeridian select a different meridian.
//
// The approximations are accurate to within a few minutes at non-polar
// latitudes. Dates and latitudes for which the sun does not rise or set
// are reported as a *DomainError rather than as malformed times.
package suntimes
