// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package suntimes

import (
	"context"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Day represents the sunrise and sunset for a single calendar day. Err
// is set, typically to a *DomainError, if they could not be computed.
type Day struct {
	Date time.Time // midnight in the location of the requested range
	Times
	Err error
}

// Days returns the sunrise and sunset for every calendar day from the
// day containing from to the day containing to, inclusive, in from's
// location. An invalid coordinate or option is returned immediately;
// days on which the sun does not rise or set are recorded in Day.Err
// and logged at debug level to the context's logger.
func Days(ctx context.Context, c Coordinate, from, to time.Time, opts ...Option) ([]Day, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	logger := ctxlog.Logger(ctx).With("coordinate", c.String())
	loc := from.Location()
	y, m, d := from.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, loc)
	y, m, d = to.In(loc).Date()
	last := time.Date(y, m, d, 0, 0, 0, 0, loc)

	var days []Day
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return days, err
		}
		t, err := Solve(c, date, opts...)
		if err != nil {
			if !errors.Is(err, ErrDomain) {
				return days, err
			}
			logger.Debug("no sunrise or sunset", "date", date.Format(time.DateOnly), "error", err)
		}
		days = append(days, Day{Date: date, Times: t, Err: err})
	}
	return days, nil
}

// DayLengths returns the day length for each of the supplied days, zero
// for days with an error.
func DayLengths(days []Day) []time.Duration {
	lengths := make([]time.Duration, len(days))
	for i, d := range days {
		if d.Err == nil {
			lengths[i] = d.DayLength()
		}
	}
	return lengths
}
