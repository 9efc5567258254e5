// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"fmt"
	"testing"

	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleCoordinate_Format() {
	c := model.MustCoordinate(41.902778, 12.494111)
	for _, n := range []model.Notation{
		model.NotationDMS,
		model.NotationDM,
		model.NotationDegrees,
		model.NotationDecimalHemisphere,
		model.NotationDecimalPair,
	} {
		s, err := c.Format(n, model.InvariantNumberFormat)
		fmt.Println(s, err)
	}
	s, err := model.MustCoordinate(-33.8, -118.4).Format(
		model.NotationDecimalPair, model.NumberFormat{DecimalSeparator: ','},
	)
	fmt.Println(s, err)
	// Output:
	// 41°54'10.0"N 12°29'38.8"E <nil>
	// 41°54.167'N 12°29.647'E <nil>
	// 41.902778°N 12.494111°E <nil>
	// 41.902778 N 12.494111 E <nil>
	// 41.902778 12.494111 <nil>
	// -33,8 -118,4 <nil>
}

func TestFormatParsesBack(t *testing.T) {
	for _, c := range []model.Coordinate{
		model.MustCoordinate(41.902778, 12.494111),
		model.MustCoordinate(-33.801944, -118.401028),
		model.MustCoordinate(89.99999999, 179.99999999),
		model.MustCoordinate(-90, -180),
		{},
	} {
		for _, nf := range []model.NumberFormat{
			model.InvariantNumberFormat, {DecimalSeparator: ','},
		} {
			for n, delta := range map[model.Notation]float64{
				model.NotationDMS:               0.05 / 3600,
				model.NotationDM:                0.0005 / 60,
				model.NotationDegrees:           0,
				model.NotationDecimalHemisphere: 0,
				model.NotationDecimalPair:       0,
			} {
				s, err := c.Format(n, nf)
				require.NoError(t, err)
				assert.Equal(t, n, model.DetectNotation(s), "text=%q", s)
				parsed, err := model.ParseCoordinate(s, nf)
				require.NoError(t, err, "text=%q", s)
				assert.InDelta(t, c.Lat(), parsed.Lat(), delta, "text=%q", s)
				assert.InDelta(t, c.Lon(), parsed.Lon(), delta, "text=%q", s)
			}
		}
	}
}

func TestFormatInvalidNotation(t *testing.T) {
	_, err := model.Coordinate{}.Format(model.NotationUnknown, model.InvariantNumberFormat)
	assert.Error(t, err)
	_, err = model.Coordinate{}.Format(model.NotationDMS, model.NumberFormat{DecimalSeparator: '-'})
	assert.ErrorIs(t, err, model.ErrInvalidNumberFormat)
}
