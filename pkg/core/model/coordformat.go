// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"math"
	"strconv"
)

// Format renders c in the n notation using the decimal separator of
// nf. Every rendering can be parsed back by ParseCoordinate with the
// same nf. The decimal-pair and decimal-hemisphere renderings are
// exact, while the DMS and DM renderings are rounded to a tenth of a
// second and a thousandth of a minute respectively.
// The NotationUnknown and other invalid notations are reported by a
// NotationError.
func (c Coordinate) Format(n Notation, nf NumberFormat) (string, error) {
	if err := nf.Validate(); err != nil {
		return "", err
	}
	if err := n.Validate(); err != nil {
		return "", err
	}
	if n == NotationDecimalPair {
		return formatDecimal(c.lat, nf) + " " + formatDecimal(c.lon, nf), nil
	}
	latH, lonH := "N", "E"
	if c.IsSouth() {
		latH = "S"
	}
	if c.IsWest() {
		lonH = "W"
	}
	return formatAxis(math.Abs(c.lat), latH, n, nf) + " " +
		formatAxis(math.Abs(c.lon), lonH, n, nf), nil
}

func formatAxis(v float64, h string, n Notation, nf NumberFormat) string {
	switch n {
	case NotationDecimalHemisphere:
		return formatDecimal(v, nf) + " " + h
	case NotationDegrees:
		return formatDecimal(v, nf) + string(degreeMark) + h
	case NotationDM:
		d, m := math.Floor(v), math.Round((v-math.Floor(v))*60*1000)/1000
		if m >= 60 {
			d, m = d+1, m-60
		}
		return strconv.Itoa(int(d)) + string(degreeMark) +
			formatDecimal(m, nf) + string(minuteMark) + h
	default:
		d := math.Floor(v)
		mm := (v - d) * 60
		m := math.Floor(mm)
		s := math.Round((mm-m)*60*10) / 10
		if s >= 60 {
			m, s = m+1, s-60
		}
		if m >= 60 {
			d, m = d+1, m-60
		}
		return strconv.Itoa(int(d)) + string(degreeMark) +
			strconv.Itoa(int(m)) + string(minuteMark) +
			nf.localize(strconv.FormatFloat(s, 'f', 1, 64)) +
			string(secondMark) + h
	}
}
