// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres implements the repo.Pool, repo.Conn, and repo.Tx
// interfaces using GORM and its PostgreSQL driver (which is backed by
// the pgx driver). Repository packages, such as placesrp, type assert
// the repo.Conn and repo.Tx instances to *Conn and *Tx respectively,
// so they can use GORM for their queries.
package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/momeni/geocoord/pkg/core/repo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool is a connections pool which is managed by GORM.
type Pool struct {
	*gorm.DB
}

// PoolOption is a functional option for the NewPool function.
type PoolOption func(c *logger.Config)

// WithSlowThreshold reports queries which take longer than d as slow
// queries in the GORM logs. Non-positive d disables those reports.
func WithSlowThreshold(d time.Duration) PoolOption {
	return func(c *logger.Config) {
		c.SlowThreshold = d
	}
}

// WithLogLevel configures the GORM log level.
func WithLogLevel(l logger.LogLevel) PoolOption {
	return func(c *logger.Config) {
		c.LogLevel = l
	}
}

// NewPool connects to the url PostgreSQL database and verifies the
// connection by acquiring one connection from the pool.
func NewPool(ctx context.Context, url string, opts ...PoolOption) (*Pool, error) {
	lc := logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
		// Set to false in order to log with replaced vars
		ParameterizedQueries: true,
	}
	for _, opt := range opts {
		opt(&lc)
	}
	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), lc),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

type ConnHandler = repo.ConnHandler

// NoOpConnHandler does nothing. It may be used for testing that a
// connection can be acquired.
func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn acquires a connection, passes it to f, and releases it when
// f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{session{c}}
		return f(ctx, cc)
	})
}

// Close closes all connections of the pool.
func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
