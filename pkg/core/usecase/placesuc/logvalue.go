// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesuc

import (
	"log/slog"

	"github.com/google/uuid"
)

// placeID defers the string conversion of a place ID until a log
// record is actually going to be emitted.
type placeID uuid.UUID

// LogValue implements slog.LogValuer.
func (id placeID) LogValue() slog.Value {
	return slog.StringValue(uuid.UUID(id).String())
}
