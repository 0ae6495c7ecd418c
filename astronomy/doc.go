// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides calendar oriented helpers built on
// cloudeng.io/suntimes: solstices and equinoxes, the longest and shortest
// days of a year, apparent solar noon, named time-of-day evaluators and
// comparisons against independent sunrise/sunset ephemerides.
package astronomy
