// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/geocoord/pkg/core/model"
)

// PlacesConnQueryer is the places repository which wraps a connection.
type PlacesConnQueryer interface {
	PlacesQueryer
}

// PlacesTxQueryer is the places repository which wraps a transaction.
type PlacesTxQueryer interface {
	PlacesQueryer
}

// PlacesQueryer lists the places queries.
//
// Create stores p with its ID. A duplicate name is reported as a
// cerr.Error with the conflict status code.
// Get and Delete report a missing place as a cerr.Error with the not
// found status code.
// List returns all places ordered by their names.
// Within returns those places whose latitude and longitude fall in the
// given (inclusive) bounding box, so callers can refine the candidates
// with an exact distance computation.
type PlacesQueryer interface {
	Create(ctx context.Context, p *model.Place) error
	Get(ctx context.Context, id uuid.UUID) (*model.Place, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Place, error)
	Within(ctx context.Context, box model.BoundingBox) ([]*model.Place, error)
}

// Places is the places repository factory. It wraps a connection or
// a transaction and returns the corresponding queryer.
type Places interface {
	Conn(Conn) PlacesConnQueryer
	Tx(Tx) PlacesTxQueryer
}
