// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/geocoord/pkg/adapter/config"
	"github.com/momeni/geocoord/pkg/adapter/db/postgres/placesrp"
	"github.com/momeni/geocoord/pkg/core/log"
	"github.com/momeni/geocoord/pkg/core/repo"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation, the init action creates the places table.`,
}

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database tables",
	Long: `Create the places table and its index if they do not exist.
The database connection information are read from the config file,
or the DATABASE_URL environment variable. Existing rows are kept.`,
	RunE: initDB,
	Args: cobra.NoArgs,
}

func initDB(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	var n int64
	err = p.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := placesrp.InitSchema(ctx, tx); err != nil {
				return err
			}
			n, err = placesrp.Count(ctx, tx)
			return err
		})
	})
	if err != nil {
		return fmt.Errorf("initializing DB: %w", err)
	}
	log.Info(ctx, "database is initialized", slog.Int64("places", n))
	return nil
}

func init() {
	dbCmd.AddCommand(dbInitCmd)
	rootCmd.AddCommand(dbCmd)
}
