// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"database/sql"
)

// rowsAdapter lets *sql.Rows satisfy repo.Rows whose Close reports
// no error; a failed close is observable through the Err method.
type rowsAdapter struct {
	*sql.Rows
}

func (ra rowsAdapter) Close() {
	_ = ra.Rows.Close()
}
