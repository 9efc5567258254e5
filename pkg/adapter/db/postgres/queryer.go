// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/momeni/geocoord/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer is the type constraint of the generic query functions of
// the repository packages, so they may be shared by the connection and
// transaction based queryers.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer
	GORM(ctx context.Context) *gorm.DB
}

// session holds the statement execution methods which are common
// between Conn and Tx. Both of them embed a session, so they satisfy
// the repo.Queryer interface and expose the underlying *gorm.DB.
type session struct {
	*gorm.DB
}

// Exec runs sql with args, returning the number of affected rows.
// Without args, sql may contain several semicolon separated statements
// (as placesrp.Schema does). Placeholders may be given as $1, ? or
// @name since GORM rewrites them for the pgx driver.
func (s session) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tt := s.DB.WithContext(ctx).Exec(sql, args...)
	if err := tt.Error; err != nil {
		return 0, err
	}
	return tt.RowsAffected, nil
}

// Query runs a single sql statement and returns its result set.
// The returned rows must be closed before the next statement may run
// on the same connection.
func (s session) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	rows, err := s.DB.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	return rowsAdapter{rows}, nil
}

// GORM returns the embedded *gorm.DB, configured to use ctx.
func (s session) GORM(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}
