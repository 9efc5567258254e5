// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the core-level errors which may be returned by
// the use cases. An Error wraps a model or repository error and tags it
// with the HTTP status code which describes its category best, so the
// adapters layer may report it without knowing about all error types.
package cerr

import (
	"fmt"
	"net/http"
)

// Error annotates Err with an HTTP status code.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

// BadRequest is used when an input is missing or has an invalid
// syntax, e.g., no coordinate text or an unusable decimal separator.
func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

// UnprocessableEntity is used when an input is present, but may not
// be interpreted, e.g., a malformed or out of range coordinate text.
func UnprocessableEntity(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusUnprocessableEntity}
}
