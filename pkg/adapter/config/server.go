// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/momeni/geocoord/pkg/adapter/config/settings"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin"
)

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized and fill them by their default values.
type Gin struct {
	Logger   *bool `yaml:"logger,omitempty"`   // gin text access logs
	Recovery *bool `yaml:"recovery,omitempty"` // recover from panics

	// Slog replaces the gin.Logger() and gin.Recovery() middlewares
	// with their slog based counterparts, so access logs and panics
	// are reported by the default slog.Logger.
	Slog *bool `yaml:"slog,omitempty"`
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `g` settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	l := slog.Default()
	if *g.Logger {
		if *g.Slog {
			middlewares = append(middlewares, gin.SlogLogger(l))
		} else {
			middlewares = append(middlewares, gin.Logger())
		}
	}
	if *g.Recovery {
		if *g.Slog {
			middlewares = append(middlewares, gin.SlogRecovery(l))
		} else {
			middlewares = append(middlewares, gin.Recovery())
		}
	}
	return gin.New(middlewares...)
}

// Server contains the HTTP server listening address and timeouts.
type Server struct {
	Address           string             `yaml:"address,omitempty"`
	ReadHeaderTimeout *settings.Duration `yaml:"read-header-timeout,omitempty"`
	ReadTimeout       *settings.Duration `yaml:"read-timeout,omitempty"`
	WriteTimeout      *settings.Duration `yaml:"write-timeout,omitempty"`
	IdleTimeout       *settings.Duration `yaml:"idle-timeout,omitempty"`

	// ShutdownTimeout bounds the graceful shutdown duration, waiting
	// for the in-flight requests after an interrupt signal.
	ShutdownTimeout *settings.Duration `yaml:"shutdown-timeout,omitempty"`
}

var (
	defaultAddress           = ":8080"
	defaultReadHeaderTimeout = settings.Duration(5 * time.Second)
	defaultReadTimeout       = settings.Duration(15 * time.Second)
	defaultWriteTimeout      = settings.Duration(15 * time.Second)
	defaultIdleTimeout       = settings.Duration(time.Minute)
	defaultShutdownTimeout   = settings.Duration(10 * time.Second)
)

// ValidateAndNormalize fills the missing `s` settings with their
// default values and rejects the non-positive timeouts.
func (s *Server) ValidateAndNormalize() error {
	if s.Address == "" {
		s.Address = defaultAddress
	}
	for _, t := range []struct {
		name string
		d    **settings.Duration
		def  settings.Duration
	}{
		{"read-header-timeout", &s.ReadHeaderTimeout, defaultReadHeaderTimeout},
		{"read-timeout", &s.ReadTimeout, defaultReadTimeout},
		{"write-timeout", &s.WriteTimeout, defaultWriteTimeout},
		{"idle-timeout", &s.IdleTimeout, defaultIdleTimeout},
		{"shutdown-timeout", &s.ShutdownTimeout, defaultShutdownTimeout},
	} {
		settings.OverwriteNil(t.d, &t.def)
		if **t.d <= 0 {
			return fmt.Errorf("%s must be positive", t.name)
		}
	}
	return nil
}

// NewServer creates an HTTP server which serves h on the configured
// address, respecting the configured timeouts.
func (s Server) NewServer(h http.Handler) *http.Server {
	return &http.Server{
		Addr:              s.Address,
		Handler:           h,
		ReadHeaderTimeout: s.ReadHeaderTimeout.Std(),
		ReadTimeout:       s.ReadTimeout.Std(),
		WriteTimeout:      s.WriteTimeout.Std(),
		IdleTimeout:       s.IdleTimeout.Std(),
	}
}
