// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zipcode provides postal code to suntimes.Coordinate lookups
// using data from www.geonames.org so that sunrise and sunset can be
// computed for a postal code.
package zipcode

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/suntimes"
)

// DB is an in-memory postal code database. It is safe for concurrent
// lookups once loaded.
type DB struct {
	lookup map[string]suntimes.Coordinate
}

func NewDB() *DB {
	return &DB{lookup: make(map[string]suntimes.Coordinate)}
}

type Option func(o *options)

// WithCountry restricts loading to rows for the specified ISO country
// code, eg. US or GB.
func WithCountry(country string) Option {
	return func(o *options) {
		o.country = country
	}
}

type options struct {
	country string
}

// Coordinate returns the estimated location of the specified postal code
// and admin code (eg. AK 99553). GB and CA postal codes come in two
// formats, either the short form or long form:
//
//	GB: Eng BN91, or Eng "BN91 9AA".
//	CA: AB T0A, or AB "T0A 0A0".
func (zdb *DB) Coordinate(admin, postal string) (suntimes.Coordinate, bool) {
	c, ok := zdb.lookup[admin+" "+postal]
	return c, ok
}

// Len returns the number of postal codes in the database.
func (zdb *DB) Len() int {
	return len(zdb.lookup)
}

// ErrNotFound is returned by SunriseSunset for unknown postal codes.
var ErrNotFound = errors.New("postal code not found")

// SunriseSunset returns the sunrise and sunset for the specified postal
// code on the day containing date, see suntimes.Solve.
func (zdb *DB) SunriseSunset(admin, postal string, date time.Time, opts ...suntimes.Option) (suntimes.Times, error) {
	c, ok := zdb.Coordinate(admin, postal)
	if !ok {
		return suntimes.Times{}, fmt.Errorf("%v %v: %w", admin, postal, ErrNotFound)
	}
	return suntimes.Solve(c, date, opts...)
}

// Load parses geonames tab separated postal code data. Malformed lines
// cause Load to fail immediately, rows whose latitude or longitude are
// out of range are skipped and reported together, as an errors.M, once
// all other rows are loaded.
func (zdb *DB) Load(data []byte, opts ...Option) error {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	var skipped errors.M
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if len(scanner.Text()) == 0 {
			continue
		}
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) != 12 {
			return fmt.Errorf("invalid line, wrong number of fields: (%v != 12) %v", len(parts), scanner.Text())
		}
		if len(o.country) > 0 && parts[0] != o.country {
			continue
		}
		latStr, longStr := parts[9], parts[10]
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return fmt.Errorf("invalid latitude: %v: %v", latStr, err)
		}
		long, err := strconv.ParseFloat(longStr, 64)
		if err != nil {
			return fmt.Errorf("invalid longitude: %v: %v", longStr, err)
		}
		key := parts[4] + " " + parts[1]
		c := suntimes.Coordinate{Latitude: lat, Longitude: long}
		if err := c.Validate(); err != nil {
			skipped.Append(fmt.Errorf("%v: %w", key, err))
			continue
		}
		zdb.lookup[key] = c
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data: %v", err)
	}
	return skipped.Err()
}
