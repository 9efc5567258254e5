// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/geocoord/pkg/core/model"
)

type rawCreatePlaceReq struct {
	Name string  `form:"name" binding:"required,max=200"`
	Text *string `form:"text"`
	Sep  string  `form:"sep"`
}

type createPlaceReq struct {
	Name         string
	Text         *string
	NumberFormat *model.NumberFormat
}

type rawPlaceIDReq struct {
	PlaceID string `uri:"pid" binding:"required,uuid"`
}

type rawNearestReq struct {
	Text   *string `form:"text"`
	Sep    string  `form:"sep"`
	Limit  int     `form:"limit" binding:"omitempty,min=0"`
	Radius float64 `form:"radius" binding:"omitempty,min=0"`
}

type nearestReq struct {
	Text         *string
	NumberFormat *model.NumberFormat
	Limit        int
	RadiusKm     float64
}

// PlaceResp is the json representation of a place. Km is only set
// for the nearest places, reporting their distances in kilometers.
type PlaceResp struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Lat  float64   `json:"lat"`
	Lon  float64   `json:"lon"`
	Km   *float64  `json:"km,omitempty"`
}

func SerPlace(p *model.Place) *PlaceResp {
	return &PlaceResp{
		ID:   p.ID,
		Name: p.Name,
		Lat:  p.Coordinate.Lat(),
		Lon:  p.Coordinate.Lon(),
	}
}

func (rs *resource) DserCreatePlaceReq(c *gin.Context) *createPlaceReq {
	req := &rawCreatePlaceReq{}
	if ok := serdser.Bind(c, req, binding.Form); !ok {
		return nil
	}
	var errs map[string][]string
	val := &createPlaceReq{
		Name:         req.Name,
		Text:         req.Text,
		NumberFormat: serdser.NumberFormat(&errs, "sep", req.Sep),
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

func (rs *resource) DserPlaceID(c *gin.Context) (uuid.UUID, bool) {
	req := &rawPlaceIDReq{}
	if ok := serdser.BindURI(c, req); !ok {
		return uuid.Nil, false
	}
	pid, err := uuid.Parse(req.PlaceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"pid": []string{"Path param pid is not UUID."},
		})
		return uuid.Nil, false
	}
	return pid, true
}

func (rs *resource) DserNearestReq(c *gin.Context) *nearestReq {
	req := &rawNearestReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	var errs map[string][]string
	val := &nearestReq{
		Text:         req.Text,
		NumberFormat: serdser.NumberFormat(&errs, "sep", req.Sep),
		Limit:        req.Limit,
		RadiusKm:     req.Radius,
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}
