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

// ErrNoCoordinateText indicates that no text was supplied at all,
// as opposed to an empty or malformed text.
var ErrNoCoordinateText = errors.New("no coordinate text")

// ErrMalformedCoordinate indicates that a coordinate text is empty,
// matches none of the supported notations, or has a numeric field
// which may not be parsed. The returned errors wrap it with the name
// of the offending field, so its description does not repeat the
// whole text which is already known by the caller.
var ErrMalformedCoordinate = errors.New("malformed coordinate")

// ParseCoordinate interprets text as a latitude/longitude pair written
// in one of the supported notations (see Notation) and returns the
// validated Coordinate. Numeric fields are read with the decimal
// separator of nf.
//
// The notation is chosen only by the presence of the degree, minute,
// and second marks and of the hemisphere letters. Once a notation is
// chosen, no other notation is tried, so a failure can always be
// explained by the symbols which the text contains.
//
// Returned errors wrap ErrMalformedCoordinate for blank or unparseable
// texts, ErrCoordinateOutOfRange (as a *CoordinateRangeError) for well
// formed texts with out of range values, and ErrInvalidNumberFormat
// if nf is not usable.
func ParseCoordinate(text string, nf NumberFormat) (Coordinate, error) {
	if err := nf.Validate(); err != nil {
		return Coordinate{}, err
	}
	s := strings.TrimSpace(text)
	if s == "" {
		return Coordinate{}, fmt.Errorf(
			"blank text: %w", ErrMalformedCoordinate,
		)
	}
	p := parser{nf: nf, notation: scanMarks(s).notation()}
	var lat, lon float64
	var err error
	switch p.notation {
	case NotationUnknown:
		err = fmt.Errorf("no known notation: %w", ErrMalformedCoordinate)
	case NotationDecimalPair:
		lat, lon, err = p.decimalPair(s)
	default:
		lat, lon, err = p.hemispheric(s)
	}
	if err != nil {
		return Coordinate{}, err
	}
	return NewCoordinate(lat, lon)
}

// ParseCoordinateRef is like ParseCoordinate, but accepts an optional
// text. A nil text is reported by ErrNoCoordinateText.
func ParseCoordinateRef(text *string, nf NumberFormat) (Coordinate, error) {
	if text == nil {
		return Coordinate{}, ErrNoCoordinateText
	}
	return ParseCoordinate(*text, nf)
}

// TryParseCoordinate is like ParseCoordinate, but reports all failures
// with a false boolean result and no diagnostics. It suits scanning
// large volumes of user entered texts. The returned Coordinate is only
// meaningful when ok is true.
func TryParseCoordinate(text string, nf NumberFormat) (c Coordinate, ok bool) {
	c, err := ParseCoordinate(text, nf)
	return c, err == nil
}

// TryParseCoordinateRef is the TryParseCoordinate counterpart of
// ParseCoordinateRef. A nil text is reported as false too.
func TryParseCoordinateRef(text *string, nf NumberFormat) (c Coordinate, ok bool) {
	c, err := ParseCoordinateRef(text, nf)
	return c, err == nil
}

// parser holds the state of one parsing operation. It is created per
// call and never shared.
type parser struct {
	nf       NumberFormat
	notation Notation
}

// hemispheric parses the notations which carry hemisphere letters.
// The text is split after its last N or S letter, so the latitude half
// keeps its letter at its end.
func (p parser) hemispheric(s string) (lat, lon float64, err error) {
	i := strings.LastIndexAny(s, "NS")
	if i < 0 {
		return 0, 0, fmt.Errorf(
			"no N/S hemisphere letter: %w", ErrMalformedCoordinate,
		)
	}
	latHalf := strings.TrimSpace(s[:i+1])
	lonHalf := strings.TrimSpace(s[i+1:])
	if lat, err = p.axis(latHalf, 'N', 'S'); err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	if lon, err = p.axis(lonHalf, 'E', 'W'); err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	return lat, lon, nil
}

// axis parses one half of a hemispheric text, negating its value for
// the neg hemisphere letter. Absence of a letter means pos.
func (p parser) axis(half string, pos, neg rune) (float64, error) {
	body, negative, err := cutHemisphere(half, pos, neg)
	if err != nil {
		return 0, err
	}
	v, err := p.magnitude(body)
	if err != nil {
		return 0, err
	}
	if negative {
		v = -v
	}
	return v, nil
}

// magnitude computes the unsigned value of an axis body (a half
// without its hemisphere letter) according to the detected notation.
// The degrees field is a whole number when minutes follow it.
func (p parser) magnitude(body string) (float64, error) {
	if p.notation == NotationDecimalHemisphere {
		return p.unsigned(body, "degrees", true)
	}
	deg, rest, ok := cutMark(body, isDegreeMark)
	if !ok {
		return 0, fmt.Errorf("no degree mark: %w", ErrMalformedCoordinate)
	}
	if p.notation == NotationDegrees {
		if rest != "" {
			return 0, trailingErr(rest)
		}
		return p.unsigned(deg, "degrees", true)
	}
	d, err := p.unsigned(deg, "degrees", false)
	if err != nil {
		return 0, err
	}
	mins, rest, ok := cutMark(rest, isMinuteMark)
	if !ok {
		return 0, fmt.Errorf("no minute mark: %w", ErrMalformedCoordinate)
	}
	m, err := p.unsigned(mins, "minutes", true)
	if err != nil {
		return 0, err
	}
	v := d + m/60
	if p.notation == NotationDM {
		if rest != "" {
			return 0, trailingErr(rest)
		}
		return v, nil
	}
	sec, rest, ok := cutMark(rest, isSecondMark)
	switch {
	case !ok:
		return 0, fmt.Errorf("no second mark: %w", ErrMalformedCoordinate)
	case rest != "":
		return 0, trailingErr(rest)
	}
	sv, err := p.unsigned(sec, "seconds", true)
	if err != nil {
		return 0, err
	}
	return v + sv/3600, nil
}

// decimalPair parses two signed decimals which are separated by
// whitespace, a semicolon, or a comma (in this order). The first
// separator which splits s into two valid numbers is taken. Comma is
// never considered when it is the decimal separator of p.nf because
// "1,5,2" may not be disambiguated.
func (p parser) decimalPair(s string) (lat, lon float64, err error) {
	sep := p.nf.Separator()
	for _, ps := range pairSeparators {
		if ps == ',' && sep == ',' {
			continue
		}
		first, second, ok := splitPair(s, ps)
		if !ok {
			continue
		}
		la, okLat := parseSigned(first, sep)
		lo, okLon := parseSigned(second, sep)
		if okLat && okLon {
			return la, lo, nil
		}
	}
	return 0, 0, fmt.Errorf(
		"no separated pair of decimals: %w", ErrMalformedCoordinate,
	)
}

func (p parser) unsigned(field, name string, fraction bool) (float64, error) {
	v, ok := parseDecimal(field, p.nf.Separator(), fraction)
	if !ok {
		return 0, fmt.Errorf(
			"%s field %q: %w", name, field, ErrMalformedCoordinate,
		)
	}
	return v, nil
}

func trailingErr(rest string) error {
	return fmt.Errorf("unexpected %q: %w", rest, ErrMalformedCoordinate)
}
