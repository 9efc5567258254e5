// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package coordsrs realizes the coordinates resource, allowing the
// coordinate parsing, validation, and distance REST APIs to be
// accepted and delegated to the coordinates use cases respectively.
package coordsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/geocoord/pkg/core/usecase/coordsuc"
)

type resource struct {
	coords *coordsuc.UseCase
}

// Register instantiates a resource adapting the coordinates use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/geocoord/v1/coordinates/parse
//     in order to parse one coordinate text,
//  2. POST request to /api/geocoord/v1/coordinates/validate
//     in order to check a batch of coordinate texts,
//  3. GET request to /api/geocoord/v1/coordinates/distance
//     in order to compute the distance of two coordinate texts.
func Register(r *gin.RouterGroup, coords *coordsuc.UseCase) {
	rs := &resource{coords: coords}
	r.POST("coordinates/parse", rs.Parse)
	r.POST("coordinates/validate", rs.Validate)
	r.GET("coordinates/distance", rs.Distance)
}

func (rs *resource) Parse(c *gin.Context) {
	req := rs.DserParseReq(c)
	if req == nil {
		return
	}
	p, err := rs.coords.Parse(c, req.Text, req.NumberFormat)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	resp, err := rs.SerParsed(p, req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (rs *resource) Validate(c *gin.Context) {
	req := rs.DserValidateReq(c)
	if req == nil {
		return
	}
	valid, err := rs.coords.Validate(c, req.Texts, req.NumberFormat)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ValidateResp{Valid: valid})
}

func (rs *resource) Distance(c *gin.Context) {
	req := rs.DserDistanceReq(c)
	if req == nil {
		return
	}
	km, err := rs.coords.Distance(c, req.From, req.To, req.NumberFormat)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, DistanceResp{Km: km})
}
