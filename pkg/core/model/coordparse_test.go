// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commaFormat = model.NumberFormat{DecimalSeparator: ','}

func TestParseCoordinateScenarios(t *testing.T) {
	for _, tc := range []struct {
		name           string
		text           string
		latMin, latMax float64
		lonMin, lonMax float64
	}{
		{"dms", `41°54'10.0"N 12°29'38.8"E`, 41.9, 42.0, 12.4, 12.5},
		{"dm", `41°54.5'N 12°29.5'E`, 41.9, 42.0, 12.4, 12.5},
		{"degrees", `41.95°N 12.45°E`, 41.9, 42.0, 12.4, 12.5},
		{"decimal pair", `-41.95 12.45`, -42.0, -41.9, 12.4, 12.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := model.TryParseCoordinate(tc.text, model.InvariantNumberFormat)
			require.True(t, ok, "failed to parse %q", tc.text)
			assert.GreaterOrEqual(t, c.Lat(), tc.latMin)
			assert.LessOrEqual(t, c.Lat(), tc.latMax)
			assert.GreaterOrEqual(t, c.Lon(), tc.lonMin)
			assert.LessOrEqual(t, c.Lon(), tc.lonMax)
		})
	}
}

func TestParseCoordinateValues(t *testing.T) {
	for _, tc := range []struct {
		name     string
		text     string
		nf       model.NumberFormat
		lat, lon float64
	}{
		{
			name: "dms",
			text: `41°54'10.0"N 12°29'38.8"E`,
			lat:  41 + 54.0/60 + 10.0/3600,
			lon:  12 + 29.0/60 + 38.8/3600,
		},
		{
			name: "dms with spaces around marks",
			text: `41° 54' 10.0" N   12 ° 29 ' 38.8 " E`,
			lat:  41 + 54.0/60 + 10.0/3600,
			lon:  12 + 29.0/60 + 38.8/3600,
		},
		{
			name: "dms south west",
			text: `33°48'7"S 118°24'3.7"W`,
			lat:  -(33 + 48.0/60 + 7.0/3600),
			lon:  -(118 + 24.0/60 + 3.7/3600),
		},
		{
			name: "dms with comma decimals",
			text: `41°54'10,5"N 12°29'38,8"E`,
			nf:   commaFormat,
			lat:  41 + 54.0/60 + 10.5/3600,
			lon:  12 + 29.0/60 + 38.8/3600,
		},
		{
			name: "dm",
			text: `41°54.5'N 12°29.5'E`,
			lat:  41 + 54.5/60,
			lon:  12 + 29.5/60,
		},
		{
			name: "dm with whole minutes",
			text: `41°54'N 12°29'W`,
			lat:  41 + 54.0/60,
			lon:  -(12 + 29.0/60),
		},
		{
			name: "degrees",
			text: `41.95°N 12.45°E`,
			lat:  41.95,
			lon:  12.45,
		},
		{
			name: "degrees south west",
			text: `33.801944° S 118.401028°W`,
			lat:  -33.801944,
			lon:  -118.401028,
		},
		{
			name: "degrees without longitude letter",
			text: `33.801944°S 118.401028°`,
			lat:  -33.801944,
			lon:  118.401028,
		},
		{
			name: "decimal hemisphere",
			text: `40.55 N 79.95 W`,
			lat:  40.55,
			lon:  -79.95,
		},
		{
			name: "decimal hemisphere without spaces",
			text: `40.55S79.95E`,
			lat:  -40.55,
			lon:  79.95,
		},
		{
			name: "space separated pair",
			text: `-41.95 12.45`,
			lat:  -41.95,
			lon:  12.45,
		},
		{
			name: "semicolon separated pair",
			text: `-41.95;12.45`,
			lat:  -41.95,
			lon:  12.45,
		},
		{
			name: "comma separated pair",
			text: `-41.95,12.45`,
			lat:  -41.95,
			lon:  12.45,
		},
		{
			name: "comma and space separated pair",
			text: `-41.95, 12.45`,
			lat:  -41.95,
			lon:  12.45,
		},
		{
			name: "explicit signs",
			text: "+41.95 −12.45",
			lat:  41.95,
			lon:  -12.45,
		},
		{
			name: "integral pair",
			text: "  90\t-180  ",
			lat:  90,
			lon:  -180,
		},
		{
			name: "comma decimals separated by space",
			text: `-41,95 12,45`,
			nf:   commaFormat,
			lat:  -41.95,
			lon:  12.45,
		},
		{
			name: "comma decimals separated by semicolon",
			text: `-41,95; 12,45`,
			nf:   commaFormat,
			lat:  -41.95,
			lon:  12.45,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := model.ParseCoordinate(tc.text, tc.nf)
			require.NoError(t, err, "parsing %q", tc.text)
			assert.InDelta(t, tc.lat, c.Lat(), 1e-9, "wrong latitude")
			assert.InDelta(t, tc.lon, c.Lon(), 1e-9, "wrong longitude")
		})
	}
}

func TestParseCoordinateMarkVariants(t *testing.T) {
	for _, pair := range [][2]string{
		{`41°54'10.0"N 12°29'38.8"E`, "41°54′10.0″N 12°29′38.8″E"},
		{`41°54'10.0"N 12°29'38.8"E`, "41º54'10.0\"N 12º29′38.8″E"},
		{`41°54.5'N 12°29.5'E`, "41°54.5′N 12°29.5′E"},
		{`41.95°N 12.45°E`, "41.95ºN 12.45ºE"},
	} {
		ascii, err := model.ParseCoordinate(pair[0], model.InvariantNumberFormat)
		require.NoError(t, err, "parsing %q", pair[0])
		typo, err := model.ParseCoordinate(pair[1], model.InvariantNumberFormat)
		require.NoError(t, err, "parsing %q", pair[1])
		assert.Equal(t, ascii, typo, "variants of %q differ", pair[0])
	}
}

func TestParseCoordinateFailures(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		nf   model.NumberFormat
		err  error
	}{
		{"empty", "", model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"blank", " \t ", model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"letters", "abc", model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"single number", "41.95", model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"three numbers", "41.95 12.45 3", model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"out of range pair", "400 400", model.InvariantNumberFormat, model.ErrCoordinateOutOfRange},
		{"out of range longitude", "10 -180.5", model.InvariantNumberFormat, model.ErrCoordinateOutOfRange},
		{"out of range degrees", `91°N 0°E`, model.InvariantNumberFormat, model.ErrCoordinateOutOfRange},
		{"comma ambiguity", "-41,95,12,45", commaFormat, model.ErrMalformedCoordinate},
		{"wrong decimal separator", "-41.95 12.45", commaFormat, model.ErrMalformedCoordinate},
		{"exponent", "1e1 2", model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"infinity", "Inf 0", model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"double sign", "--41 12", model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"signed degrees", `-41°54'N 12°29'E`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"signed minutes", `41°-54.5'N 12°29.5'E`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"signed hemisphere decimal", `-40.55 N 79.95 W`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"fractional degrees with minutes", `41.5°54'N 12°29'E`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"degree mark without letter", `41.95° 12.45°`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"degree mark commits to branch", `41.95° 12.45`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"second without minute", `41°10"N 12°38"E`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"minute without degree", `54'N 29'E`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"missing longitude", `41°54'10.0"N`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"longitude letter only", `41.95 E`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"misplaced letter", `41 N 12 E 5`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"mixed notations", `41°54.5'N 12.45°E`, model.InvariantNumberFormat, model.ErrMalformedCoordinate},
		{"invalid number format", "1 2", model.NumberFormat{DecimalSeparator: ';'}, model.ErrInvalidNumberFormat},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.ParseCoordinate(tc.text, tc.nf)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			_, ok := model.TryParseCoordinate(tc.text, tc.nf)
			assert.False(t, ok, "TryParseCoordinate(%q) succeeded", tc.text)
		})
	}
}

func TestParseCoordinateRangeError(t *testing.T) {
	_, err := model.ParseCoordinate("12 400", model.InvariantNumberFormat)
	var re *model.CoordinateRangeError
	require.True(t, errors.As(err, &re), "expected a range error: %v", err)
	assert.Equal(t, "longitude", re.Axis)
	assert.Equal(t, 400.0, re.Value)
}

func TestParseCoordinateRef(t *testing.T) {
	_, err := model.ParseCoordinateRef(nil, model.InvariantNumberFormat)
	assert.ErrorIs(t, err, model.ErrNoCoordinateText)
	assert.NotErrorIs(t, err, model.ErrMalformedCoordinate)

	empty := ""
	_, err = model.ParseCoordinateRef(&empty, model.InvariantNumberFormat)
	assert.ErrorIs(t, err, model.ErrMalformedCoordinate)

	text := "1.5 2.5"
	c, err := model.ParseCoordinateRef(&text, model.InvariantNumberFormat)
	require.NoError(t, err)
	assert.Equal(t, model.MustCoordinate(1.5, 2.5), c)

	_, ok := model.TryParseCoordinateRef(nil, model.InvariantNumberFormat)
	assert.False(t, ok)
	_, ok = model.TryParseCoordinateRef(&empty, model.InvariantNumberFormat)
	assert.False(t, ok)
	c, ok = model.TryParseCoordinateRef(&text, model.InvariantNumberFormat)
	assert.True(t, ok)
	assert.Equal(t, 2.5, c.Lon())
}

func TestDecimalPairRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("rendered decimal pairs parse back", prop.ForAll(
		func(lat, lon float64) bool {
			text := strconv.FormatFloat(lat, 'f', -1, 64) + " " +
				strconv.FormatFloat(lon, 'f', -1, 64)
			c, ok := model.TryParseCoordinate(text, model.InvariantNumberFormat)
			return ok && c.Lat() == lat && c.Lon() == lon
		},
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
	))

	properties.Property("String output parses back", prop.ForAll(
		func(lat, lon float64) bool {
			c := model.MustCoordinate(lat, lon)
			c2, ok := model.TryParseCoordinate(c.String(), model.InvariantNumberFormat)
			return ok && c == c2
		},
		gen.Float64Range(-90, 90),
		gen.Float64Range(-180, 180),
	))

	properties.Property("out of range latitudes are rejected", prop.ForAll(
		func(lat, lon float64) bool {
			text := fmt.Sprintf("%f %f", lat, lon)
			_, ok := model.TryParseCoordinate(text, model.InvariantNumberFormat)
			return !ok
		},
		gen.Float64Range(90.001, 1e6),
		gen.Float64Range(-180, 180),
	))

	properties.TestingRun(t)
}

func TestParseCoordinateConcurrently(t *testing.T) {
	texts := []string{
		`41°54'10.0"N 12°29'38.8"E`,
		`41°54.5'N 12°29.5'E`,
		`41.95°N 12.45°E`,
		`40.55 N 79.95 W`,
		`-41.95;12.45`,
	}
	want := make([]model.Coordinate, len(texts))
	for i, text := range texts {
		c, err := model.ParseCoordinate(text, model.InvariantNumberFormat)
		require.NoError(t, err)
		want[i] = c
	}
	var wg sync.WaitGroup
	errs := make(chan string, 10*len(texts))
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, text := range texts {
				c, ok := model.TryParseCoordinate(text, model.InvariantNumberFormat)
				if !ok || c != want[i] {
					errs <- text
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for text := range errs {
		t.Errorf("concurrent parsing of %q diverged", text)
	}
}
