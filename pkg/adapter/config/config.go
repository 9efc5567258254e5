// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the geocoord commands to instantiate
// different components, from the adapter or use cases layers, using
// those loaded configuration settings.
// Parsed and validated settings are passed to their ultimate
// components as a series of individual params (for the mandatory
// items) and a series of functional options (for the optional items),
// so each component validates its own settings once more.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/momeni/geocoord/pkg/adapter/config/settings"
	"gopkg.in/yaml.v3"
)

// DatabaseURLEnv names the environment variable which overrides the
// database connection URL of a loaded configuration file.
const DatabaseURLEnv = "DATABASE_URL"

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is implemented with
// primitive fields or structs which are defined locally, not models
// of lower layers, so the configuration format can be kept intact
// while other layers change freely.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Server   Server   // HTTP server settings
	Usecases Usecases // Supported use cases configuration settings
}

// Load reads the yaml configuration file from the given path and
// passes its contents to the Parse function.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals the data byte slice and loads a Config instance.
// Unknown items are rejected and missing items take their default
// values. If the DATABASE_URL environment variable is set to a
// non-empty value, it replaces the database URL of the file.
// Thereafter, loaded Config will be validated and normalized.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	c := &Config{}
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if u := os.Getenv(DatabaseURLEnv); u != "" {
		c.Database.URL = u
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace nil values with
// their expected default values.
func (c *Config) ValidateAndNormalize() error {
	if err := c.Database.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating database settings: %w", err)
	}
	settings.Nil2Zero(&c.Gin.Logger)
	settings.Nil2Zero(&c.Gin.Slog)
	settings.OverwriteNil(&c.Gin.Recovery, &defaultRecovery)
	if err := c.Server.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating server settings: %w", err)
	}
	if err := c.Usecases.ValidateAndNormalize(); err != nil {
		return fmt.Errorf("validating use cases settings: %w", err)
	}
	return nil
}

var defaultRecovery = true
