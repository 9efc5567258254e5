// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"strings"
)

// Notation enumerates the supported textual forms of a coordinate.
// Although this enum is numeric, it is (de)serialized as a string in
// the adapter layer for readability.
type Notation int

// Valid values for the Notation enum, in the order of their detection
// precedence.
const (
	NotationUnknown Notation = iota // zero value matches no notation

	NotationDMS               // 41°54'10.0"N 12°29'38.8"E
	NotationDM                // 41°54.5'N 12°29.5'E
	NotationDegrees           // 41.95°N 12.45°E
	NotationDecimalHemisphere // 40.55 N 79.95 W
	NotationDecimalPair       // -41.95 12.45
)

// ErrUnknownNotation indicates that a string may not be parsed as a
// known notation name.
var ErrUnknownNotation = errors.New("unknown notation")

// NotationError indicates an invalid Notation value.
type NotationError int

// Error implements the error interface.
func (e NotationError) Error() string {
	return fmt.Sprintf("invalid notation: %d", e)
}

// Validate returns nil if n is a known notation (other than
// NotationUnknown), otherwise, a NotationError is returned.
func (n Notation) Validate() error {
	switch n {
	case NotationDMS, NotationDM, NotationDegrees,
		NotationDecimalHemisphere, NotationDecimalPair:
		return nil
	default:
		return NotationError(n)
	}
}

// String converts n to its short name. NotationUnknown is rendered as
// "unknown" and other invalid values cause a panic.
func (n Notation) String() string {
	switch n {
	case NotationUnknown:
		return "unknown"
	case NotationDMS:
		return "dms"
	case NotationDM:
		return "dm"
	case NotationDegrees:
		return "degrees"
	case NotationDecimalHemisphere:
		return "decimal-hemisphere"
	case NotationDecimalPair:
		return "decimal-pair"
	default:
		panic(NotationError(n))
	}
}

// ParseNotation parses the short name of a known notation.
func ParseNotation(s string) (Notation, error) {
	switch s {
	case "dms":
		return NotationDMS, nil
	case "dm":
		return NotationDM, nil
	case "degrees":
		return NotationDegrees, nil
	case "decimal-hemisphere":
		return NotationDecimalHemisphere, nil
	case "decimal-pair":
		return NotationDecimalPair, nil
	default:
		return NotationUnknown, ErrUnknownNotation
	}
}

// Typographic and ASCII variants of the notation marks.
const (
	degreeMark     = '°'
	degreeMarkAlt  = 'º'
	minuteMark     = '\''
	minuteMarkAlt  = '′'
	secondMark     = '"'
	secondMarkAlt  = '″'
	typographicMin = '−' // U+2212 minus sign
)

func isDegreeMark(r rune) bool { return r == degreeMark || r == degreeMarkAlt }
func isMinuteMark(r rune) bool { return r == minuteMark || r == minuteMarkAlt }
func isSecondMark(r rune) bool { return r == secondMark || r == secondMarkAlt }

func isMark(r rune) bool {
	return isDegreeMark(r) || isMinuteMark(r) || isSecondMark(r)
}

func isSign(r rune) bool {
	return r == '+' || r == '-' || r == typographicMin
}

func isHemisphere(r rune) bool {
	return r == 'N' || r == 'S' || r == 'E' || r == 'W'
}

// marks records which notation symbols occur in a text. It is the only
// state which drives the notation detection.
type marks struct {
	degree, minute, second, hemisphere bool
}

func scanMarks(s string) (m marks) {
	for _, r := range s {
		switch {
		case isDegreeMark(r):
			m.degree = true
		case isMinuteMark(r):
			m.minute = true
		case isSecondMark(r):
			m.second = true
		case isHemisphere(r):
			m.hemisphere = true
		}
	}
	return m
}

// notation maps the symbols presence to a notation. Any sub-unit mark
// commits to a degree based notation which requires a hemisphere
// letter and all of its coarser marks, e.g., a second mark without a
// minute mark matches no notation.
func (m marks) notation() Notation {
	switch {
	case m.degree || m.minute || m.second:
		switch {
		case !m.hemisphere || !m.degree:
			return NotationUnknown
		case m.minute && m.second:
			return NotationDMS
		case m.minute:
			return NotationDM
		case m.second:
			return NotationUnknown
		default:
			return NotationDegrees
		}
	case m.hemisphere:
		return NotationDecimalHemisphere
	default:
		return NotationDecimalPair
	}
}

// DetectNotation returns the notation which text is written in based
// on the notation symbols it contains. The detection does not validate
// the numeric fields, so ParseCoordinate may still reject a text
// with a known notation. A blank text matches no notation.
func DetectNotation(text string) Notation {
	if strings.TrimSpace(text) == "" {
		return NotationUnknown
	}
	return scanMarks(text).notation()
}
