// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides the generic helpers and types which are
// shared by the configuration settings structs, such as filling the
// missing settings with their defaults, verifying the range of numeric
// settings, and a human-readable time duration type.
package settings

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Duration is a time.Duration which is read from and written to the
// YAML config files in the time.ParseDuration format, e.g., 1m30s.
type Duration time.Duration

// UnmarshalText parses data with time.ParseDuration. The d receiver
// is only updated when data is valid.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// Marshal returns the string form of d, or nil if d is nil.
// Trailing zero units are dropped, so an hour is "1h" rather than
// "1h0m0s". The returned pointer refers to a new string.
func (d *Duration) Marshal() *string {
	if d == nil {
		return nil
	}
	s := d.Std().String()
	if t, ok := strings.CutSuffix(s, "m0s"); ok {
		s = t + "m"
		if strings.HasSuffix(s, "h0m") {
			s = s[:len(s)-2]
		}
	}
	return &s
}

func (d *Duration) MarshalText() ([]byte, error) {
	if s := d.Marshal(); s != nil {
		return []byte(*s), nil
	}
	return nil, errors.New("nil duration")
}

// Std converts d to a time.Duration. A nil d is taken as zero, so
// optional settings may be passed to the http.Server fields directly.
func (d *Duration) Std() time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(*d)
}

// LogValue implements slog.LogValuer.
func (d *Duration) LogValue() slog.Value {
	if d == nil {
		return slog.StringValue("nil-duration")
	}
	return slog.DurationValue(d.Std())
}
