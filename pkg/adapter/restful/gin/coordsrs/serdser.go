// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package coordsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/geocoord/pkg/core/cerr"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/momeni/geocoord/pkg/core/usecase/coordsuc"
)

type rawParseReq struct {
	Text   *string `form:"text"`
	Sep    string  `form:"sep"`
	Format string  `form:"format" binding:"omitempty,oneof=dms dm degrees decimal-hemisphere decimal-pair"`
}

type parseReq struct {
	Text         *string
	NumberFormat *model.NumberFormat
	Notation     model.Notation // NotationUnknown keeps the detected one
}

// CoordinateResp reports a parsed coordinate, its detected notation,
// and its rendering in the requested (or detected) notation.
type CoordinateResp struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Notation string  `json:"notation"`
	Text     string  `json:"text"`
}

type ValidateReq struct {
	Texts []string `json:"texts" binding:"required"`
	Sep   string   `json:"sep"`
}

type validateReq struct {
	Texts        []string
	NumberFormat *model.NumberFormat
}

type ValidateResp struct {
	Valid []bool `json:"valid"`
}

type rawDistanceReq struct {
	From *string `form:"from"`
	To   *string `form:"to"`
	Sep  string  `form:"sep"`
}

type distanceReq struct {
	From, To     *string
	NumberFormat *model.NumberFormat
}

type DistanceResp struct {
	Km float64 `json:"km"`
}

func (rs *resource) DserParseReq(c *gin.Context) *parseReq {
	req := &rawParseReq{}
	if ok := serdser.Bind(c, req, binding.Form); !ok {
		return nil
	}
	var errs map[string][]string
	val := &parseReq{
		Text:         req.Text,
		NumberFormat: serdser.NumberFormat(&errs, "sep", req.Sep),
	}
	if req.Format != "" {
		n, err := model.ParseNotation(req.Format)
		if serdser.Assert(&errs, err == nil, "format", "Unknown format.") {
			val.Notation = n
		}
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

func (rs *resource) SerParsed(
	p *coordsuc.Parsed, req *parseReq,
) (*CoordinateResp, error) {
	n := req.Notation
	if n == model.NotationUnknown {
		n = p.Notation
	}
	text, err := p.Coordinate.Format(n, rs.coords.NumberFormat(req.NumberFormat))
	if err != nil {
		return nil, cerr.BadRequest(err)
	}
	return &CoordinateResp{
		Lat:      p.Coordinate.Lat(),
		Lon:      p.Coordinate.Lon(),
		Notation: p.Notation.String(),
		Text:     text,
	}, nil
}

func (rs *resource) DserValidateReq(c *gin.Context) *validateReq {
	req := &ValidateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	val := &validateReq{
		Texts:        req.Texts,
		NumberFormat: serdser.NumberFormat(&errs, "sep", req.Sep),
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

func (rs *resource) DserDistanceReq(c *gin.Context) *distanceReq {
	req := &rawDistanceReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	var errs map[string][]string
	val := &distanceReq{
		From:         req.From,
		To:           req.To,
		NumberFormat: serdser.NumberFormat(&errs, "sep", req.Sep),
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}
