// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NumberFormat describes how numeric fields are written in a
// coordinate text. Only the decimal separator is configurable since
// coordinates never need grouping separators. The zero value is
// equivalent to InvariantNumberFormat.
//
// A NumberFormat is passed explicitly to every parsing and formatting
// function and no process-wide locale is consulted.
type NumberFormat struct {
	DecimalSeparator rune // separator of integral and fractional parts
}

// InvariantNumberFormat uses "." as the decimal separator.
var InvariantNumberFormat = NumberFormat{DecimalSeparator: '.'}

// ErrInvalidNumberFormat indicates that a decimal separator may not be
// used because it collides with the coordinate text grammar.
var ErrInvalidNumberFormat = errors.New("invalid number format")

// Separator returns the effective decimal separator of nf.
func (nf NumberFormat) Separator() rune {
	if nf.DecimalSeparator == 0 {
		return '.'
	}
	return nf.DecimalSeparator
}

// Validate returns nil if the decimal separator of nf can be told
// apart from the digits, signs, field separators, notation marks, and
// hemisphere letters of a coordinate text.
func (nf NumberFormat) Validate() error {
	sep := nf.Separator()
	switch {
	case sep == utf8.RuneError:
		return fmt.Errorf("%w: separator is not a valid rune", ErrInvalidNumberFormat)
	case unicode.IsDigit(sep), unicode.IsSpace(sep), unicode.IsLetter(sep):
		return fmt.Errorf("%w: separator %q", ErrInvalidNumberFormat, sep)
	case isSign(sep), sep == ';', isMark(sep):
		return fmt.Errorf("%w: separator %q is reserved", ErrInvalidNumberFormat, sep)
	}
	return nil
}

// String returns the decimal separator as a string.
func (nf NumberFormat) String() string {
	return string(nf.Separator())
}

// ParseNumberFormat reads a NumberFormat from its string form which
// must consist of exactly one rune, the decimal separator. An empty
// string stands for InvariantNumberFormat.
func ParseNumberFormat(s string) (NumberFormat, error) {
	if s == "" {
		return InvariantNumberFormat, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return NumberFormat{}, fmt.Errorf(
			"%w: separator must be one character", ErrInvalidNumberFormat,
		)
	}
	nf := NumberFormat{DecimalSeparator: r}
	if err := nf.Validate(); err != nil {
		return NumberFormat{}, err
	}
	return nf, nil
}

// localize replaces the "." of an invariant decimal text by the
// decimal separator of nf.
func (nf NumberFormat) localize(s string) string {
	if sep := nf.Separator(); sep != '.' {
		return strings.Replace(s, ".", string(sep), 1)
	}
	return s
}
