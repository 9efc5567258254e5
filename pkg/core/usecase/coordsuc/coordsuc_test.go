// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package coordsuc_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/momeni/geocoord/pkg/core/cerr"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/momeni/geocoord/pkg/core/usecase/coordsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringAddr(s string) *string {
	return &s
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var ce *cerr.Error
	require.True(t, errors.As(err, &ce), "expected a cerr.Error: %v", err)
	return ce.HTTPStatusCode
}

func TestNewOptions(t *testing.T) {
	_, err := coordsuc.New(
		coordsuc.WithNumberFormat(model.InvariantNumberFormat),
		coordsuc.WithNumberFormat(model.InvariantNumberFormat),
	)
	assert.Error(t, err, "duplicate options must be rejected")

	_, err = coordsuc.New(coordsuc.WithNumberFormat(
		model.NumberFormat{DecimalSeparator: ';'},
	))
	assert.ErrorIs(t, err, model.ErrInvalidNumberFormat)

	_, err = coordsuc.New(coordsuc.WithMaxBatch(0))
	assert.Error(t, err)

	uc, err := coordsuc.New()
	require.NoError(t, err)
	assert.Equal(t, model.InvariantNumberFormat, uc.NumberFormat(nil))
}

func TestParse(t *testing.T) {
	ctx := context.Background()
	comma := model.NumberFormat{DecimalSeparator: ','}
	uc, err := coordsuc.New(coordsuc.WithNumberFormat(comma))
	require.NoError(t, err)

	p, err := uc.Parse(ctx, stringAddr("41,95°N 12,45°E"), nil)
	require.NoError(t, err)
	assert.Equal(t, model.MustCoordinate(41.95, 12.45), p.Coordinate)
	assert.Equal(t, model.NotationDegrees, p.Notation)

	p, err = uc.Parse(
		ctx, stringAddr("-41.95,12.45"), &model.InvariantNumberFormat,
	)
	require.NoError(t, err)
	assert.Equal(t, model.MustCoordinate(-41.95, 12.45), p.Coordinate)
	assert.Equal(t, model.NotationDecimalPair, p.Notation)

	for _, tc := range []struct {
		name   string
		text   *string
		nf     *model.NumberFormat
		status int
		err    error
	}{
		{"nil", nil, nil, http.StatusBadRequest, model.ErrNoCoordinateText},
		{"empty", stringAddr(""), nil, http.StatusUnprocessableEntity, model.ErrMalformedCoordinate},
		{"garbage", stringAddr("abc"), nil, http.StatusUnprocessableEntity, model.ErrMalformedCoordinate},
		{"out of range", stringAddr("400 400"), nil, http.StatusUnprocessableEntity, model.ErrCoordinateOutOfRange},
		{"ambiguous comma", stringAddr("-41,95,12,45"), nil, http.StatusUnprocessableEntity, model.ErrMalformedCoordinate},
		{
			"bad number format", stringAddr("1 2"),
			&model.NumberFormat{DecimalSeparator: '7'},
			http.StatusBadRequest, model.ErrInvalidNumberFormat,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Parse(ctx, tc.text, tc.nf)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.status, statusOf(t, err))
		})
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	uc, err := coordsuc.New(coordsuc.WithMaxBatch(4))
	require.NoError(t, err)

	valid, err := uc.Validate(ctx, []string{
		`41°54'10.0"N 12°29'38.8"E`, "abc", "400 400", "",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, valid)

	_, err = uc.Validate(ctx, make([]string, 5), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	valid, err = uc.Validate(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, valid)
}

func TestDistance(t *testing.T) {
	ctx := context.Background()
	uc, err := coordsuc.New()
	require.NoError(t, err)

	km, err := uc.Distance(
		ctx, stringAddr(`41°54'10"N 12°29'47"E`), stringAddr("48.8566 2.3522"), nil,
	)
	require.NoError(t, err)
	assert.InDelta(t, 1106, km, 10)

	_, err = uc.Distance(ctx, stringAddr("0 0"), nil, nil)
	assert.ErrorIs(t, err, model.ErrNoCoordinateText)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	_, err = uc.Distance(ctx, stringAddr("0 0"), stringAddr("0 999"), nil)
	assert.ErrorIs(t, err, model.ErrCoordinateOutOfRange)
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	uc, err := coordsuc.New()
	require.NoError(t, err)

	s, err := uc.Convert(
		ctx, stringAddr("-33.8 -118.4"), model.NotationDecimalHemisphere,
		nil, &model.NumberFormat{DecimalSeparator: ','},
	)
	require.NoError(t, err)
	assert.Equal(t, "33,8 S 118,4 W", s)

	_, err = uc.Convert(
		ctx, stringAddr("0 0"), model.NotationUnknown, nil, nil,
	)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}
