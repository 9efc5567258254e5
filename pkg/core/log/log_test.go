// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/geocoord/pkg/core/log"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	_, err := log.Setup(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	ctx := context.Background()
	log.Debug(ctx, "hidden")
	log.Info(
		ctx, "parsed",
		log.Coordinate("coordinate", model.MustCoordinate(41.95, -12.5)),
		log.Notation("notation", model.NotationDegrees),
		log.Err("err", nil),
	)
	rec := struct {
		Msg        string
		Coordinate struct{ Lat, Lon float64 }
		Notation   string
		Err        string
		Source     struct{ File string }
	}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "one JSON record is expected")
	assert.Equal(t, "parsed", rec.Msg)
	assert.Equal(t, 41.95, rec.Coordinate.Lat)
	assert.Equal(t, -12.5, rec.Coordinate.Lon)
	assert.Equal(t, "degrees", rec.Notation)
	assert.Equal(t, "no-error", rec.Err)
	assert.Contains(t, rec.Source.File, "log_test.go", "caller must be reported")
}

func TestSetupUnknownFormat(t *testing.T) {
	_, err := log.Setup(&bytes.Buffer{}, slog.LevelInfo, "xml")
	assert.Error(t, err)
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, "boom", log.Err("err", errors.New("boom")).Value.String())
	assert.Equal(t, int64(9), log.Notation("n", model.Notation(9)).Value.Int64())
	assert.Equal(t, "unknown", log.Notation("n", model.NotationUnknown).Value.String())
}
