// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placesuc contains the places UseCase which persists named
// locations whose coordinates are entered as free texts. Supported use
// cases are creating, fetching, deleting, and listing places, and
// finding the places which are nearest to a coordinate text.
package placesuc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/momeni/geocoord/pkg/core/cerr"
	"github.com/momeni/geocoord/pkg/core/log"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/momeni/geocoord/pkg/core/repo"
	"github.com/momeni/geocoord/pkg/core/usecase/coordsuc"
)

// ErrEmptyName indicates that a place may not be created without
// a name.
var ErrEmptyName = errors.New("empty place name")

// UseCase represents the places use case. It holds a database
// connection pool, the places repository instance, the coordinates
// use case for parsing the texts, and its own settings.
type UseCase struct {
	pool     repo.Pool
	placesrp repo.Places
	coords   *coordsuc.UseCase

	nearestLimit int
}

// New instantiates a places use case.
// Required parameters are passed individually, while the optional
// ones are passed as functional options.
func New(
	p repo.Pool, r repo.Places, coords *coordsuc.UseCase, opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{pool: p, placesrp: r, coords: coords}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.nearestLimit == 0 {
		uc.nearestLimit = 10
	}
	return uc, nil
}

// Create use case parses the text coordinate and stores it as a new
// place with the given name and a fresh random ID.
func (places *UseCase) Create(
	ctx context.Context, name string, text *string, nf *model.NumberFormat,
) (*model.Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cerr.BadRequest(ErrEmptyName)
	}
	parsed, err := places.coords.Parse(ctx, text, nf)
	if err != nil {
		return nil, err
	}
	p := &model.Place{
		ID:         uuid.New(),
		Name:       name,
		Coordinate: parsed.Coordinate,
	}
	err = places.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return places.placesrp.Conn(c).Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	log.Info(
		ctx, "created place",
		log.Coordinate("coordinate", p.Coordinate),
		log.Valuer("id", placeID(p.ID)),
	)
	return p, nil
}

// Get use case fetches the pid place.
func (places *UseCase) Get(
	ctx context.Context, pid uuid.UUID,
) (p *model.Place, err error) {
	err = places.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		p, err = places.placesrp.Conn(c).Get(ctx, pid)
		return err
	})
	if err != nil {
		p = nil
	}
	return
}

// Delete use case removes the pid place.
func (places *UseCase) Delete(ctx context.Context, pid uuid.UUID) error {
	return places.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return places.placesrp.Conn(c).Delete(ctx, pid)
	})
}

// List use case returns all places ordered by their names.
func (places *UseCase) List(
	ctx context.Context,
) (ps []*model.Place, err error) {
	err = places.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ps, err = places.placesrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		ps = nil
	}
	return
}

// Nearest use case parses the text coordinate and returns at most
// limit places ordered by their distances from it (nearest first).
// If radiusKm is positive, farther places are excluded. A zero limit
// stands for the configured nearest limit, while larger limits are
// capped by it.
func (places *UseCase) Nearest(
	ctx context.Context,
	text *string,
	nf *model.NumberFormat,
	radiusKm float64,
	limit int,
) ([]model.RankedPlace, error) {
	if limit < 0 || radiusKm < 0 {
		return nil, cerr.BadRequest(fmt.Errorf(
			"negative limit (%d) or radius (%v)", limit, radiusKm,
		))
	}
	if limit == 0 || limit > places.nearestLimit {
		limit = places.nearestLimit
	}
	parsed, err := places.coords.Parse(ctx, text, nf)
	if err != nil {
		return nil, err
	}
	center := parsed.Coordinate
	var candidates []*model.Place
	err = places.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := places.placesrp.Conn(c)
		if radiusKm > 0 {
			candidates, err = q.Within(ctx, center.BoundingBox(radiusKm))
		} else {
			candidates, err = q.List(ctx)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	ranked := make([]model.RankedPlace, 0, len(candidates))
	for _, p := range candidates {
		d := center.DistanceKm(p.Coordinate)
		if radiusKm > 0 && d > radiusKm {
			continue
		}
		ranked = append(ranked, model.RankedPlace{Place: *p, DistanceKm: d})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
