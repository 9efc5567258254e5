// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/momeni/geocoord/pkg/adapter/config"
	"github.com/momeni/geocoord/pkg/adapter/db/postgres/placesrp"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/coordsrs"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/placesrs"
	"github.com/momeni/geocoord/pkg/core/repo"
)

// Prefix is the path prefix of all REST APIs.
const Prefix = "/api/geocoord/v1"

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// and transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like placesuc and each repository package is named like placesrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like placesrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
func Register(e *gin.Engine, p repo.Pool, c config.Usecases) error {
	return RegisterWithRepo(e, p, placesrp.New(), c)
}

// RegisterWithRepo is like Register, but takes the places repository
// instead of creating a GORM based one, so the same routes may be
// served by other repo.Places implementations.
func RegisterWithRepo(
	e *gin.Engine, p repo.Pool, r repo.Places, c config.Usecases,
) error {
	coordsUseCase, err := c.Coords.NewUseCase()
	if err != nil {
		return fmt.Errorf("creating coordinates use case: %w", err)
	}
	placesUseCase, err := c.Places.NewUseCase(p, r, coordsUseCase)
	if err != nil {
		return fmt.Errorf("creating places use case: %w", err)
	}
	g := e.Group(Prefix)
	coordsrs.Register(g, coordsUseCase)
	placesrs.Register(g, placesUseCase)
	return nil
}
