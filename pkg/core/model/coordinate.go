// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model contains the geocoord models which are independent of
// the use cases and adapters. The Coordinate value type is created by
// parsing the human written coordinate texts, using an explicit
// NumberFormat for their decimal separator, and may be rendered back
// in any supported Notation. Other models, such as Place, refer to it.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Legal bounds of the latitude and longitude values (in degrees).
const (
	MaxLatitude  = 90.0
	MaxLongitude = 180.0
)

// EarthRadiusKm is the mean earth radius which is used by the
// haversine distance computation.
const EarthRadiusKm = 6371.0

// ErrCoordinateOutOfRange indicates that a latitude or longitude value
// lies outside of its legal bound. It is wrapped by the
// CoordinateRangeError which also reports the offending axis and value.
var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// CoordinateRangeError reports an out of range latitude or longitude.
// Axis is either "latitude" or "longitude".
type CoordinateRangeError struct {
	Axis  string
	Value float64
}

// Error implements the error interface.
func (e *CoordinateRangeError) Error() string {
	bound := MaxLatitude
	if e.Axis == "longitude" {
		bound = MaxLongitude
	}
	return fmt.Sprintf(
		"%s %v is not in [-%v, %v] range", e.Axis, e.Value, bound, bound,
	)
}

// Unwrap returns ErrCoordinateOutOfRange, so callers may use errors.Is
// without caring about the axis.
func (e *CoordinateRangeError) Unwrap() error {
	return ErrCoordinateOutOfRange
}

// Coordinate represents a validated geographical location with a
// latitude and longitude (in degrees). Its fields are unexported, so
// a Coordinate may only be obtained through NewCoordinate or the
// parsing functions which enforce the legal ranges. The zero value
// is the (0, 0) location which is valid too.
// Two coordinates are equal iff both of their fields are equal, so
// the == operator may be used directly.
type Coordinate struct {
	lat, lon float64
}

// NewCoordinate validates lat and lon and returns the corresponding
// Coordinate. A *CoordinateRangeError is returned if lat is not in
// [-90, 90] or lon is not in [-180, 180] (NaN is never in range).
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if !(lat >= -MaxLatitude && lat <= MaxLatitude) {
		return Coordinate{}, &CoordinateRangeError{
			Axis: "latitude", Value: lat,
		}
	}
	if !(lon >= -MaxLongitude && lon <= MaxLongitude) {
		return Coordinate{}, &CoordinateRangeError{
			Axis: "longitude", Value: lon,
		}
	}
	return Coordinate{lat: lat, lon: lon}, nil
}

// MustCoordinate is like NewCoordinate but panics on invalid values.
// It simplifies the initialization of constant locations.
func MustCoordinate(lat, lon float64) Coordinate {
	c, err := NewCoordinate(lat, lon)
	if err != nil {
		panic(err)
	}
	return c
}

// Lat returns the latitude of c in degrees.
func (c Coordinate) Lat() float64 {
	return c.lat
}

// Lon returns the longitude of c in degrees.
func (c Coordinate) Lon() float64 {
	return c.lon
}

// IsNorth reports whether c lies in the northern hemisphere.
// The equator belongs to the northern hemisphere.
func (c Coordinate) IsNorth() bool {
	return c.lat >= 0
}

// IsSouth reports whether c lies in the southern hemisphere.
func (c Coordinate) IsSouth() bool {
	return !c.IsNorth()
}

// IsEast reports whether c lies in the eastern hemisphere.
// The prime meridian belongs to the eastern hemisphere.
func (c Coordinate) IsEast() bool {
	return c.lon >= 0
}

// IsWest reports whether c lies in the western hemisphere.
func (c Coordinate) IsWest() bool {
	return !c.IsEast()
}

// DistanceKm returns the great-circle distance between c and other
// in kilometers, using the haversine formula over a spherical earth
// with the EarthRadiusKm radius.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	lat1, lat2 := radians(c.lat), radians(other.lat)
	dLat := radians(other.lat - c.lat)
	dLon := radians(other.lon - c.lon)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// String renders c as "<lat> <lon>" using the invariant "." decimal
// separator and the shortest decimal representation which reads back
// to the same float64 values.
func (c Coordinate) String() string {
	return formatDecimal(c.lat, InvariantNumberFormat) + " " +
		formatDecimal(c.lon, InvariantNumberFormat)
}

func formatDecimal(v float64, nf NumberFormat) string {
	return nf.localize(strconv.FormatFloat(v, 'f', -1, 64))
}
