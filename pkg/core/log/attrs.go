// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/momeni/geocoord/pkg/core/model"
)

// Valuer returns an Attr for the given slog.LogValuer value.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// Coordinate returns a group Attr containing the lat and lon of the
// given coordinate as float64 values.
func Coordinate(key string, c model.Coordinate) slog.Attr {
	return slog.Group(
		key, slog.Float64("lat", c.Lat()), slog.Float64("lon", c.Lon()),
	)
}

// Notation returns an Attr for the given notation, using its name.
// Invalid notations, which cannot be named, are logged as numbers.
func Notation(key string, n model.Notation) slog.Attr {
	if n != model.NotationUnknown && n.Validate() != nil {
		return slog.Int(key, int(n))
	}
	return slog.String(key, n.String())
}
