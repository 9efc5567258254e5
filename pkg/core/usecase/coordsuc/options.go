// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package coordsuc

import (
	"errors"
	"fmt"

	"github.com/momeni/geocoord/pkg/core/model"
)

// Option is a functional option for the coordinates use case.
type Option func(uc *UseCase) error

// WithNumberFormat option configures the default number format which
// is used whenever a request does not specify its own number format.
func WithNumberFormat(nf model.NumberFormat) Option {
	return func(uc *UseCase) error {
		if err := nf.Validate(); err != nil {
			return err
		}
		if uc.nf != nil {
			return errors.New("number format is already configured")
		}
		uc.nf = &nf
		return nil
	}
}

// WithMaxBatch option limits the number of texts which may be
// validated by one Validate call.
func WithMaxBatch(n int) Option {
	return func(uc *UseCase) error {
		if n <= 0 {
			return fmt.Errorf("max batch (%d) is not positive", n)
		}
		if uc.maxBatch != 0 {
			return errors.New("max batch is already configured")
		}
		uc.maxBatch = n
		return nil
	}
}
