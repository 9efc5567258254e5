// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memrepo is an internal helper for the test packages.
// It provides an in-memory repo.Pool whose connections also implement
// the places queries, so use cases and resources can be tested without
// a database server. Transactions are not supported.
package memrepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/momeni/geocoord/pkg/core/cerr"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/momeni/geocoord/pkg/core/repo"
)

var errNotSupported = errors.New("not supported by the in-memory pool")

// Pool keeps places in a map, guarded by a mutex.
type Pool struct {
	mu     sync.Mutex
	places map[uuid.UUID]model.Place
	within int
}

// New returns an empty Pool.
func New() *Pool {
	return &Pool{places: make(map[uuid.UUID]model.Place)}
}

// Len returns the number of stored places.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.places)
}

// WithinCalls returns the number of bounding box queries so far.
func (p *Pool) WithinCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.within
}

func (p *Pool) Conn(ctx context.Context, h repo.ConnHandler) error {
	return h(ctx, conn{pool: p})
}

type conn struct {
	pool *Pool
}

func (conn) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errNotSupported
}

func (conn) Query(context.Context, string, ...any) (repo.Rows, error) {
	return nil, errNotSupported
}

func (conn) Tx(context.Context, repo.TxHandler) error {
	return errNotSupported
}

func (conn) IsConn() {
}

// Repo implements repo.Places for connections of a Pool.
type Repo struct{}

func (Repo) Conn(c repo.Conn) repo.PlacesConnQueryer {
	return c.(conn)
}

func (Repo) Tx(repo.Tx) repo.PlacesTxQueryer {
	panic(errNotSupported)
}

func (c conn) Create(_ context.Context, p *model.Place) error {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	for _, q := range c.pool.places {
		if q.Name == p.Name {
			return cerr.Conflict(errors.New("duplicate name"))
		}
	}
	c.pool.places[p.ID] = *p
	return nil
}

func (c conn) Get(_ context.Context, id uuid.UUID) (*model.Place, error) {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	p, ok := c.pool.places[id]
	if !ok {
		return nil, cerr.NotFound(errors.New("no such place"))
	}
	return &p, nil
}

func (c conn) Delete(_ context.Context, id uuid.UUID) error {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	if _, ok := c.pool.places[id]; !ok {
		return cerr.NotFound(errors.New("no such place"))
	}
	delete(c.pool.places, id)
	return nil
}

func (c conn) List(context.Context) ([]*model.Place, error) {
	c.pool.mu.Lock()
	defer c.pool.mu.Unlock()
	ps := make([]*model.Place, 0, len(c.pool.places))
	for _, p := range c.pool.places {
		p := p
		ps = append(ps, &p)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Name < ps[j].Name })
	return ps, nil
}

func (c conn) Within(
	ctx context.Context, b model.BoundingBox,
) ([]*model.Place, error) {
	all, _ := c.List(ctx)
	c.pool.mu.Lock()
	c.pool.within++
	c.pool.mu.Unlock()
	var ps []*model.Place
	for _, p := range all {
		if b.Contains(p.Coordinate) {
			ps = append(ps, p)
		}
	}
	return ps, nil
}
