// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the geocoord
// project. Commands are organized using the cobra library.
// The root command starts the web server itself, the "parse" and
// "distance" sub-commands work on the command line arguments without
// any database, and the "db" sub-command manages the database.
//
//	./geocoord [-c /path/of/main/config.yaml]    # start web server
//	./geocoord parse [-d SEP] [--json] [--format NOTATION] TEXT
//	./geocoord distance [-d SEP] FROM TO
//	./geocoord db init [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/momeni/geocoord/pkg/adapter/config"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/routes"
	"github.com/momeni/geocoord/pkg/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "geocoord",
	Short: "Parse geographic coordinates and serve named places",
	Long: `Parse geographic coordinates which are written in the common
human notations (degrees/minutes/seconds with hemisphere letters, or
signed decimal pairs) with an explicit decimal separator, and serve
them over a REST API. Named places can be stored in a PostgreSQL
database and queried for the nearest places to a coordinate.
Without a sub-command, the web server is started.`,
	PersistentPreRunE: setup,
	RunE:              startWebServer,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// setup loads the .env file (if any) into the environment, resolves
// the configuration file path, and installs the default slog logger.
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env file: %w", err)
	}
	fixConfigPath()
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	if _, err := log.Setup(os.Stderr, level, logFormat); err != nil {
		return err
	}
	return nil
}

func startWebServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		cmd.Context(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	e := c.Gin.NewEngine()
	if err = routes.Register(e, p, c.Usecases); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	srv := c.Server.NewServer(e)
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err = <-errCh:
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down the server")
	timeout := c.Server.ShutdownTimeout.Std()
	sctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err = srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code is
// zero for success and one for failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "config file path")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")
	pf.StringVar(&logFormat, "log-format", "text", "text or json")
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/geocoord.yaml"
	}
}
