// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

// Nil2Zero points a nil *t to a new zero T, so boolean switches such
// as gin.logger may be read without nil checks. A non-nil *t is kept.
func Nil2Zero[T any](t **T) {
	if *t == nil {
		*t = new(T)
	}
}

// OverwriteNil points a nil *dst to a copy of *src. It is a no-op if
// *dst is already set or src is nil, so the defaults which are shared
// between several configs are never aliased.
func OverwriteNil[T any](dst **T, src *T) {
	if *dst != nil || src == nil {
		return
	}
	t := *src
	*dst = &t
}
