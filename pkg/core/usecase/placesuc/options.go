// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the places use case.
type Option func(uc *UseCase) error

// WithNearestLimit option configures the maximum number of places
// which may be returned by one Nearest call.
func WithNearestLimit(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("nearest limit (%d) is not positive", n)
		}
		if uc.nearestLimit != 0 {
			return errors.New("nearest limit is already configured")
		}
		uc.nearestLimit = n
		return nil
	}
}
