// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placesrp implements the repo.Places interface using GORM.
// Each query is implemented once as a generic function over the
// postgres.Queryer constraint and is exposed by the connection and
// transaction based queryers.
package placesrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/momeni/geocoord/pkg/adapter/db/postgres"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/momeni/geocoord/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (places *Repo) Conn(c repo.Conn) repo.PlacesConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Create(ctx context.Context, p *model.Place) error {
	return Create(ctx, cq.Conn, p)
}

func (cq connQueryer) Get(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	return Get(ctx, cq.Conn, id)
}

func (cq connQueryer) Delete(ctx context.Context, id uuid.UUID) error {
	return Delete(ctx, cq.Conn, id)
}

func (cq connQueryer) List(ctx context.Context) ([]*model.Place, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Within(ctx context.Context, b model.BoundingBox) ([]*model.Place, error) {
	return Within(ctx, cq.Conn, b)
}

type txQueryer struct {
	*postgres.Tx
}

func (places *Repo) Tx(tx repo.Tx) repo.PlacesTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Create(ctx context.Context, p *model.Place) error {
	return Create(ctx, tq.Tx, p)
}

func (tq txQueryer) Get(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	return Get(ctx, tq.Tx, id)
}

func (tq txQueryer) Delete(ctx context.Context, id uuid.UUID) error {
	return Delete(ctx, tq.Tx, id)
}

func (tq txQueryer) List(ctx context.Context) ([]*model.Place, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Within(ctx context.Context, b model.BoundingBox) ([]*model.Place, error) {
	return Within(ctx, tq.Tx, b)
}
