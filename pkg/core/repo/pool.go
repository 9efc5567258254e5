// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo specifies the repository interfaces which are used by
// the use cases in order to access the persisted models. They are
// implemented in the adapter layer (see pkg/adapter/db/postgres) and
// are passed to the use cases by the routes package.
package repo

import "context"

// ConnHandler is a callback which receives a connection from a Pool.
// The connection may not be used after the handler returns.
type ConnHandler func(context.Context, Conn) error

// Pool is a database connections pool. Its Conn method acquires a
// connection, passes it to handler, and releases it afterwards,
// returning the handler error (if any).
type Pool interface {
	Conn(ctx context.Context, handler ConnHandler) error
}
