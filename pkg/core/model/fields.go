// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// pairSeparators lists the field separators of the decimal pair
// notation in their priority order. The space stands for any run of
// whitespace characters.
var pairSeparators = []rune{' ', ';', ','}

// cutHemisphere removes the trailing pos or neg letter of half and
// reports whether it was the neg letter. Any other hemisphere letter
// in half is rejected.
func cutHemisphere(half string, pos, neg rune) (
	body string, negative bool, err error,
) {
	r, size := utf8.DecodeLastRuneInString(half)
	switch r {
	case neg:
		negative = true
		fallthrough
	case pos:
		half = strings.TrimSpace(half[:len(half)-size])
	}
	if i := strings.IndexFunc(half, isHemisphere); i >= 0 {
		return "", false, fmt.Errorf(
			"misplaced hemisphere letter %q: %w",
			half[i], ErrMalformedCoordinate,
		)
	}
	return half, negative, nil
}

// cutMark splits s around the first rune which satisfies isMark and
// trims both sides. If no such rune exists, found is false.
func cutMark(s string, isMark func(rune) bool) (
	before, after string, found bool,
) {
	i := strings.IndexFunc(s, isMark)
	if i < 0 {
		return s, "", false
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+size:]), true
}

// splitPair splits s into two trimmed non-empty fields around sep.
// For the ' ' sep, any whitespace run separates the fields.
func splitPair(s string, sep rune) (first, second string, ok bool) {
	if sep == ' ' {
		f := strings.Fields(s)
		if len(f) != 2 {
			return "", "", false
		}
		return f[0], f[1], true
	}
	first, second, ok = strings.Cut(s, string(sep))
	first, second = strings.TrimSpace(first), strings.TrimSpace(second)
	return first, second, ok && first != "" && second != ""
}

// parseSigned parses a decimal with an optional leading sign.
func parseSigned(s string, sep rune) (float64, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if !isSign(r) {
		return parseDecimal(s, sep, true)
	}
	v, ok := parseDecimal(s[size:], sep, true)
	if r != '+' {
		v = -v
	}
	return v, ok
}

// parseDecimal parses s as a non-negative number consisting of ASCII
// digits and (if fraction is true) at most one sep decimal separator.
// Signs, exponents, grouping, and special values such as Inf are all
// rejected, although strconv.ParseFloat accepts them.
func parseDecimal(s string, sep rune, fraction bool) (float64, bool) {
	var b strings.Builder
	b.Grow(len(s))
	digits, seps := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == sep && fraction && seps == 0:
			seps++
			b.WriteByte('.')
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	return v, err == nil
}
