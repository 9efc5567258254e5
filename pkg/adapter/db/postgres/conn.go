// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"
	"fmt"

	"github.com/momeni/geocoord/pkg/core/repo"
)

// Conn represents a database connection which is acquired from a Pool.
// Its session exposes the *gorm.DB, so repository packages may use
// GORM directly.
type Conn struct {
	session
}

type TxHandler = repo.TxHandler

// Tx begins a transaction and runs f in it. The transaction is
// committed if f returns nil and is rolled back if f returns an error
// or panics. A handler error stays reachable with errors.Is/As.
func (c *Conn) Tx(ctx context.Context, f TxHandler) (err error) {
	tx := c.DB.WithContext(ctx).Begin()
	if err = tx.Error; err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panicked: %v", r)
		}
		if err == nil {
			if err = tx.Commit().Error; err != nil {
				err = fmt.Errorf("commit: %w", err)
			}
			return
		}
		err = fmt.Errorf("handler: %w", err)
		if rbErr := tx.Rollback().Error; rbErr != nil {
			err = fmt.Errorf("%w, rollback: %w", err, rbErr)
		}
	}()
	return f(ctx, &Tx{session{tx}})
}

// IsConn method prevents a non-Conn object (such as a Tx) to
// mistakenly implement the Conn interface.
func (c *Conn) IsConn() {
}
