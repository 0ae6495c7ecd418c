// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zipcode_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"cloudeng.io/suntimes"
	"cloudeng.io/suntimes/zipcode"
)

const sampleData = `
US	99553	Akutan	Alaska	AK	Aleutians East	013			54.143	-165.7854	1
GB	BN91	Worthing	England	ENG					50.818	-0.3754	
GB	AL3 8QE	Slip End	England	ENG	Bedfordshire		Central Bedfordshire	E06000056	51.8479	-0.4474	6
JP	100-0001	Chiyoda	Tokyo To	40	Chiyoda Ku	13101			35.6895	139.6917	4
`

const badRanges = `US	00001	Nowhere	Nowhere	XX					95.0	-165.7854	1
US	00002	Nowhere	Nowhere	XX					45.0	-200.0	1
`

func TestCoordinate(t *testing.T) {
	zdb := zipcode.NewDB()
	if err := zdb.Load([]byte(sampleData)); err != nil {
		t.Fatalf("failed to load sample data: %v", err)
	}
	for _, tc := range []struct {
		admin, postal string
		want          suntimes.Coordinate
	}{
		{"AK", "99553", suntimes.Coordinate{Latitude: 54.143, Longitude: -165.7854}},
		{"ENG", "BN91", suntimes.Coordinate{Latitude: 50.818, Longitude: -0.3754}},
		{"ENG", "AL3 8QE", suntimes.Coordinate{Latitude: 51.8479, Longitude: -0.4474}},
	} {
		c, ok := zdb.Coordinate(tc.admin, tc.postal)
		if !ok {
			t.Errorf("%v %v: not found", tc.admin, tc.postal)
		}
		if got, want := c, tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, ok := zdb.Coordinate("ENG", "AL3 8QF"); ok {
		t.Errorf("expected not to find AL3 8QF")
	}
	if got, want := zdb.Len(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoadOptionsAndErrors(t *testing.T) {
	zdb := zipcode.NewDB()
	if err := zdb.Load([]byte(sampleData), zipcode.WithCountry("GB")); err != nil {
		t.Fatal(err)
	}
	if got, want := zdb.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	zdb = zipcode.NewDB()
	err := zdb.Load([]byte(sampleData + badRanges))
	if !errors.Is(err, suntimes.ErrRange) {
		t.Fatalf("expected a range error: %v", err)
	}
	for _, key := range []string{"XX 00001", "XX 00002"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("%v missing from %v", key, err)
		}
	}
	// Valid rows are still loaded.
	if got, want := zdb.Len(), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	err = zipcode.NewDB().Load([]byte("US\t99553\tAkutan\n"))
	if err == nil || !strings.Contains(err.Error(), "wrong number of fields") {
		t.Errorf("unexpected error: %v", err)
	}
	err = zipcode.NewDB().Load([]byte("US	99553	Akutan	Alaska	AK	Aleutians East	013			north	-165.7854	1\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid latitude") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSunriseSunset(t *testing.T) {
	zdb := zipcode.NewDB()
	if err := zdb.Load([]byte(sampleData)); err != nil {
		t.Fatal(err)
	}
	jst := time.FixedZone("JST", 9*3600)
	tm, err := zdb.SunriseSunset("40", "100-0001", time.Date(2013, 3, 20, 0, 0, 0, 0, jst))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tm.Sunrise, time.Date(2013, 3, 20, 5, 47, 40, 0, jst); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err = zdb.SunriseSunset("ENG", "AL3 8QF", time.Now())
	if !errors.Is(err, zipcode.ErrNotFound) {
		t.Errorf("expected not found: %v", err)
	}

	// Akutan, Alaska in December.
	_, err = zdb.SunriseSunset("AK", "99553", time.Date(2013, 12, 21, 0, 0, 0, 0, time.UTC),
		suntimes.WithReferenceMeridian(-135))
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
