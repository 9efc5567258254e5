// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package coordsuc contains the coordinates UseCase which exposes the
// coordinate parser to the adapters. Supported use cases are:
//  1. Parsing one text strictly, reporting why it was rejected,
//  2. Validating a batch of texts without any diagnostics,
//  3. Measuring the distance between two coordinate texts,
//  4. Converting a coordinate text to another notation.
//
// No state is mutated by these use cases, so one UseCase instance may
// serve concurrent requests.
package coordsuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/momeni/geocoord/pkg/core/cerr"
	"github.com/momeni/geocoord/pkg/core/log"
	"github.com/momeni/geocoord/pkg/core/model"
)

// UseCase represents the coordinates use case. It only holds settings.
type UseCase struct {
	nf       *model.NumberFormat
	maxBatch int
}

// Parsed is the result of parsing a coordinate text.
type Parsed struct {
	Coordinate model.Coordinate
	Notation   model.Notation // notation which the text was written in
}

// New instantiates a coordinates use case. All parameters are optional
// and passed as functional options.
func New(opts ...Option) (*UseCase, error) {
	uc := &UseCase{}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.nf == nil {
		nf := model.InvariantNumberFormat
		uc.nf = &nf
	}
	if uc.maxBatch == 0 {
		uc.maxBatch = 1000
	}
	return uc, nil
}

// NumberFormat returns nf if it is not nil, otherwise, the configured
// default number format.
func (uc *UseCase) NumberFormat(nf *model.NumberFormat) model.NumberFormat {
	if nf != nil {
		return *nf
	}
	return *uc.nf
}

// Parse use case parses the text coordinate using the nf number format
// (or the default one if nf is nil). A nil text or an invalid nf are
// reported as bad requests, while malformed or out of range texts are
// reported as unprocessable entities.
func (uc *UseCase) Parse(
	ctx context.Context, text *string, nf *model.NumberFormat,
) (*Parsed, error) {
	c, err := model.ParseCoordinateRef(text, uc.NumberFormat(nf))
	if err != nil {
		log.Debug(ctx, "rejected coordinate text", log.Err("err", err))
		return nil, classify(err)
	}
	p := &Parsed{Coordinate: c, Notation: model.DetectNotation(*text)}
	log.Debug(
		ctx, "parsed coordinate text",
		log.Coordinate("coordinate", c), log.Notation("notation", p.Notation),
	)
	return p, nil
}

// Validate use case reports which of the given texts are valid
// coordinates, in the same order. No reason is reported for the
// invalid texts.
func (uc *UseCase) Validate(
	ctx context.Context, texts []string, nf *model.NumberFormat,
) ([]bool, error) {
	if n := len(texts); n > uc.maxBatch {
		return nil, cerr.BadRequest(fmt.Errorf(
			"%d texts exceed the batch limit of %d", n, uc.maxBatch,
		))
	}
	f := uc.NumberFormat(nf)
	if err := f.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	valid := make([]bool, len(texts))
	count := 0
	for i, text := range texts {
		if _, valid[i] = model.TryParseCoordinate(text, f); valid[i] {
			count++
		}
	}
	log.Debug(
		ctx, "validated coordinate texts",
		slog.Int("total", len(texts)), slog.Int("valid", count),
	)
	return valid, nil
}

// Distance use case parses the from and to texts and returns their
// haversine distance in kilometers.
func (uc *UseCase) Distance(
	ctx context.Context, from, to *string, nf *model.NumberFormat,
) (float64, error) {
	f := uc.NumberFormat(nf)
	a, err := model.ParseCoordinateRef(from, f)
	if err != nil {
		return 0, classify(fmt.Errorf("from: %w", err))
	}
	b, err := model.ParseCoordinateRef(to, f)
	if err != nil {
		return 0, classify(fmt.Errorf("to: %w", err))
	}
	return a.DistanceKm(b), nil
}

// Convert use case parses text with the src number format and renders
// it in the n notation with the dst number format. Nil number formats
// stand for the default number format.
func (uc *UseCase) Convert(
	ctx context.Context,
	text *string,
	n model.Notation,
	src, dst *model.NumberFormat,
) (string, error) {
	if err := n.Validate(); err != nil {
		return "", cerr.BadRequest(err)
	}
	p, err := uc.Parse(ctx, text, src)
	if err != nil {
		return "", err
	}
	s, err := p.Coordinate.Format(n, uc.NumberFormat(dst))
	if err != nil {
		return "", cerr.BadRequest(err)
	}
	return s, nil
}

// classify wraps a parsing error by a cerr.Error, choosing the status
// code based on its category.
func classify(err error) error {
	switch {
	case errors.Is(err, model.ErrNoCoordinateText),
		errors.Is(err, model.ErrInvalidNumberFormat):
		return cerr.BadRequest(err)
	default:
		return cerr.UnprocessableEntity(err)
	}
}
