// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the serialization and deserialization
// helpers which are shared by all resources. Requests are bound and
// validated with gin bindings, while errors are reported as json
// objects, mapping each invalid field to its error messages or having
// a single "detail" field.
package serdser

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/geocoord/pkg/core/cerr"
	"github.com/momeni/geocoord/pkg/core/model"
)

// Bind binds the request to req using b and validates it. Validation
// errors are reported by a 400 response (keyed by the field names) and
// false is returned, so the caller can simply return.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	return report(c, c.ShouldBindWith(req, b))
}

// BindURI is like Bind, but binds the path params of the request.
func BindURI(c *gin.Context, req any) bool {
	return report(c, c.ShouldBindUri(req))
}

func report(c *gin.Context, err error) bool {
	switch err := err.(type) {
	case *validator.InvalidValidationError:
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case validator.ValidationErrors:
		var nameToErrs map[string][]string
		for _, ferr := range err {
			AddErr(&nameToErrs, ferr.Field(), ferr.Error())
		}
		c.JSON(http.StatusBadRequest, nameToErrs)
	default:
		if err == nil {
			return true
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	}
	return false
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	if elist, ok := (*errs)[name]; !ok {
		(*errs)[name] = msgs
	} else {
		(*errs)[name] = append(elist, msgs...)
	}
}

func Assert(errs *map[string][]string, ok bool, name string, msgs ...string) bool {
	if ok {
		return true
	}
	AddErr(errs, name, msgs...)
	return false
}

// NumberFormat parses the optional sep request param. An empty sep
// gives nil, so the use cases fall back to their default number
// format. Invalid separators are recorded in errs.
func NumberFormat(
	errs *map[string][]string, name, sep string,
) *model.NumberFormat {
	if sep == "" {
		return nil
	}
	nf, err := model.ParseNumberFormat(sep)
	if !Assert(errs, err == nil, name, errMsg(err)) {
		return nil
	}
	return &nf
}

func errMsg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// SerErr reports err as a json {"detail": ...} object. The status code
// is taken from cerr.Error errors, and defaults to 500 otherwise.
func SerErr(c *gin.Context, err error) {
	var ce *cerr.Error
	if errors.As(err, &ce) {
		c.JSON(ce.HTTPStatusCode, gin.H{
			"detail": ce.Err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": err.Error(),
	})
}
