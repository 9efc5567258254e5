// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine and its middlewares, so the
// config and command packages may instantiate an engine without
// depending on the gin-gonic packages directly.
package gin

import (
	"log/slog"

	"github.com/FabienMht/ginslog/logger"
	"github.com/FabienMht/ginslog/recovery"
	"github.com/gin-gonic/gin"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

func Logger() HandlerFunc {
	return gin.Logger()
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}

// SlogLogger reports each request as a structured log record using l.
func SlogLogger(l *slog.Logger) HandlerFunc {
	return logger.New(l)
}

// SlogRecovery recovers from panics of the request handlers, logs
// them using l, and responds with the 500 status code.
func SlogRecovery(l *slog.Logger) HandlerFunc {
	return recovery.New(l)
}
