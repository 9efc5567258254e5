// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/momeni/geocoord/pkg/adapter/config/settings"
	"github.com/momeni/geocoord/pkg/adapter/db/postgres"
)

// Database contains the database related configuration settings.
// The connection may be described by a complete URL, or by its
// host, port, name, and user parts. In the latter case, the password
// is looked up in the .pgpass file of the PassDir directory (if any).
type Database struct {
	URL     string `yaml:"url,omitempty"`
	Host    string `yaml:"host,omitempty"` // DBMS server name or IP
	Port    int    `yaml:"port,omitempty"` // defaults to 5432
	Name    string `yaml:"name,omitempty"` // database name
	User    string `yaml:"user,omitempty"` // database role name
	PassDir string `yaml:"pass-dir,omitempty"`

	// SlowThreshold is the minimum duration of queries which are
	// logged as slow queries by GORM. A nil value keeps the GORM
	// default threshold.
	SlowThreshold *settings.Duration `yaml:"slow-threshold,omitempty"`
}

// ValidateAndNormalize ensures that a connection URL may be computed
// for the `d` settings and fills the default port number.
func (d *Database) ValidateAndNormalize() error {
	if d.SlowThreshold != nil && *d.SlowThreshold < 0 {
		return errors.New("slow-threshold may not be negative")
	}
	if d.URL != "" {
		if _, err := url.Parse(d.URL); err != nil {
			return fmt.Errorf("parsing url: %w", err)
		}
		return nil
	}
	switch {
	case d.Host == "":
		return errors.New("either url or host must be specified")
	case d.Name == "":
		return errors.New("database name is required with host")
	case d.User == "":
		return errors.New("database user is required with host")
	case d.Port < 0 || d.Port > 65535:
		return fmt.Errorf("invalid port number: %d", d.Port)
	case d.Port == 0:
		d.Port = 5432
	}
	return nil
}

// ConnectionURL returns the database connection URL. If the URL field
// is set, it is returned as is. Otherwise, a postgresql URL embedding
// the host, port, user, and database name is built. When PassDir is
// set, the password of the user is read from its .pgpass file which
// should conform with the pgpass files format with lines like this:
//
//	host:port:dbname:role:password
//
// Empty and `#`-commented lines of that file are ignored.
func (d Database) ConnectionURL() (string, error) {
	if d.URL != "" {
		return d.URL, nil
	}
	u := url.URL{
		Scheme: "postgresql",
		User:   url.User(d.User),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	if d.PassDir == "" {
		return u.String(), nil
	}
	path := filepath.Join(d.PassDir, ".pgpass")
	passLines, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading pass-file: %w", err)
	}
	prfx := fmt.Sprintf("%s:%d:%s:%s:", d.Host, d.Port, d.Name, d.User)
	var pass string
	for _, line := range strings.Split(string(passLines), "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.HasPrefix(line, prfx) {
			pass = line[len(prfx):]
			break
		}
	}
	if pass == "" {
		return "", fmt.Errorf("no matching password line in %q", path)
	}
	u.User = url.UserPassword(d.User, pass)
	return u.String(), nil
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the `d` settings.
func (d Database) ConnectionPool(ctx context.Context) (*postgres.Pool, error) {
	u, err := d.ConnectionURL()
	if err != nil {
		return nil, fmt.Errorf("computing connection url: %w", err)
	}
	var opts []postgres.PoolOption
	if d.SlowThreshold != nil {
		opts = append(opts, postgres.WithSlowThreshold(
			d.SlowThreshold.Std(),
		))
	}
	p, err := postgres.NewPool(ctx, u, opts...)
	if err != nil {
		return nil, fmt.Errorf("postgres.NewPool: %w", err)
	}
	return p, nil
}
