// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package suntimes_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/suntimes"
)

func TestDays(t *testing.T) {
	ctx := context.Background()
	c := suntimes.Coordinate{Latitude: 35.6895, Longitude: 139.6917}
	from := time.Date(2013, 3, 1, 15, 0, 0, 0, jst)
	to := time.Date(2013, 3, 31, 1, 0, 0, 0, jst)
	days, err := suntimes.Days(ctx, c, from, to)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(days), 31; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, d := range days {
		if got, want := d.Date, time.Date(2013, 3, i+1, 0, 0, 0, 0, jst); !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if d.Err != nil {
			t.Errorf("%v: %v", d.Date, d.Err)
		}
		want, err := suntimes.Solve(c, d.Date)
		if err != nil || d.Times != want {
			t.Errorf("%v: got %v, want %v", d.Date, d.Times, want)
		}
	}
	lengths := suntimes.DayLengths(days)
	if lengths[30] <= lengths[0] {
		t.Errorf("days should lengthen during march: %v .. %v", lengths[0], lengths[30])
	}

	days, err = suntimes.Days(ctx, c, to, from)
	if err != nil || len(days) != 0 {
		t.Errorf("got %v %v, want no days", days, err)
	}
}

func TestDaysPolar(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	c := suntimes.Coordinate{Latitude: 75, Longitude: 135}
	from := time.Date(2013, 12, 1, 0, 0, 0, 0, jst)
	to := time.Date(2013, 12, 10, 0, 0, 0, 0, jst)
	days, err := suntimes.Days(ctx, c, from, to)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(days), 10; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for _, d := range days {
		if !errors.Is(d.Err, suntimes.ErrPolarNight) {
			t.Errorf("%v: expected polar night: %v", d.Date, d.Err)
		}
	}
	for _, l := range suntimes.DayLengths(days) {
		if l != 0 {
			t.Errorf("expected zero day length: %v", l)
		}
	}
	if got, want := strings.Count(buf.String(), "no sunrise or sunset"), 10; got != want {
		t.Errorf("got %v log entries, want %v: %s", got, want, buf.String())
	}
	if !strings.Contains(buf.String(), "2013-12-01") {
		t.Errorf("expected date in log output: %s", buf.String())
	}
}

func TestDaysErrors(t *testing.T) {
	from := time.Date(2013, 1, 1, 0, 0, 0, 0, jst)
	to := from.AddDate(1, 0, 0)

	_, err := suntimes.Days(context.Background(), suntimes.Coordinate{Latitude: 100}, from, to)
	if !errors.Is(err, suntimes.ErrRange) {
		t.Errorf("expected a range error: %v", err)
	}

	_, err = suntimes.Days(context.Background(), suntimes.Coordinate{Latitude: 35}, from, to,
		suntimes.WithReferenceMeridian(-190))
	if !errors.Is(err, suntimes.ErrRange) {
		t.Errorf("expected a range error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	days, err := suntimes.Days(ctx, suntimes.Coordinate{Latitude: 35}, from, to)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected no days: %v", len(days))
	}
}
