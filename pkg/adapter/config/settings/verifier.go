// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// OutOfRangeError reports a setting which was clamped into its
// [Bound, ...] or [..., Bound] range by VerifyRange.
type OutOfRangeError[T cmp.Ordered] struct {
	Value        *T   // the original value, nil for InvalidRange
	Bound        *T   // the violated boundary, nil for InvalidRange
	LessThanMin  bool // Bound is the minimum
	InvalidRange bool // the minimum is greater than the maximum
}

func (e *OutOfRangeError[T]) Error() string {
	switch {
	case e.InvalidRange:
		return "min is greater than max"
	case e.LessThanMin:
		return fmt.Sprintf("%v is less than min (%v)", *e.Value, *e.Bound)
	default:
		return fmt.Sprintf("%v is greater than max (%v)", *e.Value, *e.Bound)
	}
}

// VerifyRange checks the optional setting which *value points to
// against the optional minb and maxb boundaries. A nil setting is
// valid. A setting out of range is clamped to the violated boundary
// and reported, so callers may either fail or log and continue.
func VerifyRange[T cmp.Ordered](
	value **T, minb, maxb *T,
) *OutOfRangeError[T] {
	switch {
	case minb != nil && maxb != nil && *minb > *maxb:
		return &OutOfRangeError[T]{InvalidRange: true}
	case *value == nil:
		return nil
	}
	v := **value
	switch {
	case minb != nil && v < *minb:
		**value = *minb
		return &OutOfRangeError[T]{Value: &v, Bound: minb, LessThanMin: true}
	case maxb != nil && v > *maxb:
		**value = *maxb
		return &OutOfRangeError[T]{Value: &v, Bound: maxb}
	}
	return nil
}
