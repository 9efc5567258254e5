// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"

	"github.com/momeni/geocoord/pkg/adapter/config/settings"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/momeni/geocoord/pkg/core/repo"
	"github.com/momeni/geocoord/pkg/core/usecase/coordsuc"
	"github.com/momeni/geocoord/pkg/core/usecase/placesuc"
)

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Coords Coords `yaml:"coords,omitempty"`
	Places Places `yaml:"places,omitempty"`
}

// ValidateAndNormalize validates settings of all use cases.
func (u *Usecases) ValidateAndNormalize() error {
	if err := u.Coords.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("coords: %w", err)
	}
	if err := u.Places.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("places: %w", err)
	}
	return nil
}

// Coords contains the configuration settings for the coordinates
// use cases. Nil fields are left for the use case defaults.
type Coords struct {
	// DecimalSeparator is the default decimal separator of numbers
	// in the coordinate texts, as a single character string.
	DecimalSeparator *string `yaml:"decimal-separator,omitempty"`
	// MaxBatch limits the number of texts of a validation request.
	MaxBatch *int `yaml:"max-batch,omitempty"`
}

// MaxBatchLimit is the inclusive upper bound of Coords.MaxBatch.
const MaxBatchLimit = 100000

// ValidateAndNormalize rejects an invalid decimal separator and
// clamps the MaxBatch into its [1, MaxBatchLimit] range.
func (c *Coords) ValidateAndNormalize() error {
	if c.DecimalSeparator != nil {
		if _, err := model.ParseNumberFormat(*c.DecimalSeparator); err != nil {
			return err
		}
	}
	minb, maxb := 1, MaxBatchLimit
	if err := settings.VerifyRange(&c.MaxBatch, &minb, &maxb); err != nil {
		return fmt.Errorf(
			"VerifyRange(max-batch=%d, minb=%d, maxb=%d): %w",
			*err.Value, minb, maxb, err,
		)
	}
	return nil
}

// NewUseCase instantiates a new coordinates use case based on the
// settings in the `c` struct.
func (c Coords) NewUseCase() (*coordsuc.UseCase, error) {
	opts := make([]coordsuc.Option, 0, 2)
	if c.DecimalSeparator != nil {
		nf, err := model.ParseNumberFormat(*c.DecimalSeparator)
		if err != nil {
			return nil, err
		}
		opts = append(opts, coordsuc.WithNumberFormat(nf))
	}
	if c.MaxBatch != nil {
		opts = append(opts, coordsuc.WithMaxBatch(*c.MaxBatch))
	}
	return coordsuc.New(opts...)
}

// Places contains the configuration settings for the places use cases.
type Places struct {
	// NearestLimit is the default and maximum number of places which
	// are returned by a nearest places query.
	NearestLimit *int `yaml:"nearest-limit,omitempty"`
}

// ValidateAndNormalize rejects a non-positive NearestLimit.
func (p *Places) ValidateAndNormalize() error {
	minb := 1
	if err := settings.VerifyRange(&p.NearestLimit, &minb, nil); err != nil {
		return fmt.Errorf(
			"VerifyRange(nearest-limit=%d, minb=%d): %w",
			*err.Value, minb, err,
		)
	}
	return nil
}

// NewUseCase instantiates a new places use case based on the settings
// in the `p` struct.
func (p Places) NewUseCase(
	pool repo.Pool, r repo.Places, coords *coordsuc.UseCase,
) (*placesuc.UseCase, error) {
	opts := make([]placesuc.Option, 0, 1)
	if p.NearestLimit != nil {
		opts = append(opts, placesuc.WithNearestLimit(*p.NearestLimit))
	}
	return placesuc.New(pool, r, coords, opts...)
}
