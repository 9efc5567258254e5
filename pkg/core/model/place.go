// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/google/uuid"

// Place is a named location which may be persisted in a database.
// Its Coordinate is always valid because it is obtained by parsing
// a user entered text or by the NewCoordinate validation.
type Place struct {
	ID         uuid.UUID  // unique identifier of the place
	Name       string     // human readable name of the place
	Coordinate Coordinate // location of the place
}

// RankedPlace is a Place which is annotated by its distance from
// a reference location, e.g., while listing the nearest places.
type RankedPlace struct {
	Place
	DistanceKm float64 // haversine distance from the reference
}
