// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "math"

// BoundingBox is an inclusive latitude/longitude rectangle. It is used
// to pre-select the candidates of a distance based search, e.g., in a
// database query, before computing their exact haversine distances.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// kmPerDegree is the length of one degree of a great circle.
const kmPerDegree = EarthRadiusKm * math.Pi / 180

// BoundingBox returns a box which contains every location which is at
// most radiusKm kilometers away from c. Boxes touching a pole or
// crossing the antimeridian span all longitudes instead of wrapping.
func (c Coordinate) BoundingBox(radiusKm float64) BoundingBox {
	dLat := radiusKm / kmPerDegree
	b := BoundingBox{
		MinLat: math.Max(c.lat-dLat, -MaxLatitude),
		MaxLat: math.Min(c.lat+dLat, MaxLatitude),
		MinLon: -MaxLongitude,
		MaxLon: MaxLongitude,
	}
	if b.MinLat == -MaxLatitude || b.MaxLat == MaxLatitude {
		return b
	}
	dLon := math.Asin(math.Min(math.Sin(radiusKm/EarthRadiusKm)/math.Cos(radians(c.lat)), 1)) * 180 / math.Pi
	if c.lon-dLon < -MaxLongitude || c.lon+dLon > MaxLongitude {
		return b
	}
	b.MinLon, b.MaxLon = c.lon-dLon, c.lon+dLon
	return b
}

// Contains reports whether c lies in the b box.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.lat >= b.MinLat && c.lat <= b.MaxLat &&
		c.lon >= b.MinLon && c.lon <= b.MaxLon
}
