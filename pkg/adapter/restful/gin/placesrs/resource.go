// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package placesrs realizes the places resource, allowing the named
// places manipulation and nearest places REST APIs to be accepted and
// delegated to the places use cases respectively.
package placesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/geocoord/pkg/core/usecase/placesuc"
)

type resource struct {
	places *placesuc.UseCase
}

// Register instantiates a resource adapting the places use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/geocoord/v1/places
//     in order to create a place from a name and a coordinate text,
//  2. GET request to /api/geocoord/v1/places
//     in order to list all places,
//  3. GET request to /api/geocoord/v1/places/nearest
//     in order to find the nearest places to a coordinate text,
//  4. GET request to /api/geocoord/v1/places/:pid
//     in order to fetch one place, and
//  5. DELETE request to /api/geocoord/v1/places/:pid
//     in order to remove one place.
func Register(r *gin.RouterGroup, places *placesuc.UseCase) {
	rs := &resource{places: places}
	r.POST("places", rs.CreatePlace)
	r.GET("places", rs.ListPlaces)
	r.GET("places/nearest", rs.NearestPlaces)
	r.GET("places/:pid", rs.GetPlace)
	r.DELETE("places/:pid", rs.DeletePlace)
}

func (rs *resource) CreatePlace(c *gin.Context) {
	req := rs.DserCreatePlaceReq(c)
	if req == nil {
		return
	}
	p, err := rs.places.Create(c, req.Name, req.Text, req.NumberFormat)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerPlace(p))
}

func (rs *resource) ListPlaces(c *gin.Context) {
	ps, err := rs.places.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	resp := make([]PlaceResp, 0, len(ps))
	for _, p := range ps {
		resp = append(resp, *SerPlace(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (rs *resource) NearestPlaces(c *gin.Context) {
	req := rs.DserNearestReq(c)
	if req == nil {
		return
	}
	ranked, err := rs.places.Nearest(
		c, req.Text, req.NumberFormat, req.RadiusKm, req.Limit,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	resp := make([]PlaceResp, 0, len(ranked))
	for _, rp := range ranked {
		pr := SerPlace(&rp.Place)
		km := rp.DistanceKm
		pr.Km = &km
		resp = append(resp, *pr)
	}
	c.JSON(http.StatusOK, resp)
}

func (rs *resource) GetPlace(c *gin.Context) {
	pid, ok := rs.DserPlaceID(c)
	if !ok {
		return
	}
	p, err := rs.places.Get(c, pid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerPlace(p))
}

func (rs *resource) DeletePlace(c *gin.Context) {
	pid, ok := rs.DserPlaceID(c)
	if !ok {
		return
	}
	if err := rs.places.Delete(c, pid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
