// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/momeni/geocoord/internal/test/dbcontainer"
	"github.com/momeni/geocoord/pkg/adapter/config"
	"github.com/momeni/geocoord/pkg/adapter/db/postgres"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/placesrs"
	"github.com/momeni/geocoord/pkg/adapter/restful/gin/routes"
	"github.com/stretchr/testify/suite"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	igts.Gin = gin.New(gin.SlogLogger(l), gin.SlogRecovery(l))
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	sep := ","
	err := routes.Register(igts.Gin, igts.Pool, config.Usecases{
		Coords: config.Coords{DecimalSeparator: &sep},
	})
	igts.Require().NoError(err, "failed to register Gin routes")
}

func urlEncoded(m map[string]string) io.Reader {
	u := url.Values{}
	for k, v := range m {
		u.Set(k, v)
	}
	return strings.NewReader(u.Encode())
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	w *httptest.ResponseRecorder, req *http.Request, res any,
) {
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	igts.Gin.ServeHTTP(w, req)
	b := w.Body.Bytes()
	igts.NoError(json.Unmarshal(b, res), "body is not json")
}

func (igts *IntegrationGinTestSuite) TestNotFound() {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(
		http.MethodGet, routes.Prefix+"/places/"+uuid.NewString(), nil,
	)
	igts.Require().NoError(err, "cannot create GET request")

	res := &struct {
		Detail string
	}{}
	igts.sendReqRecvResp(w, req, res)

	igts.Equal(404, w.Code)
	igts.Equal("expected one row, but got 0", res.Detail, "wrong detail")
}

func (igts *IntegrationGinTestSuite) TestCreateAndFetch() {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(
		http.MethodPost, routes.Prefix+"/places",
		urlEncoded(map[string]string{
			"name": "Buenos Aires",
			"text": `34°36'12"S 58°22'54"W`,
		}),
	)
	igts.Require().NoError(err, "cannot create POST request")
	created := &placesrs.PlaceResp{}
	igts.sendReqRecvResp(w, req, created)
	igts.Require().Equal(201, w.Code)
	igts.InDelta(-34.603333, created.Lat, 1e-6)
	igts.InDelta(-58.381667, created.Lon, 1e-6)

	w = httptest.NewRecorder()
	req, err = http.NewRequest(
		http.MethodPost, routes.Prefix+"/places",
		urlEncoded(map[string]string{
			"name": "Buenos Aires",
			"text": "-34,6 -58,38",
		}),
	)
	igts.Require().NoError(err, "cannot create POST request")
	res := &struct {
		Detail string
	}{}
	igts.sendReqRecvResp(w, req, res)
	igts.Equal(409, w.Code, "place names are unique")

	w = httptest.NewRecorder()
	req, err = http.NewRequest(
		http.MethodGet,
		routes.Prefix+"/places/nearest?radius=100&text="+
			url.QueryEscape("-34,6 -58,4"),
		nil,
	)
	igts.Require().NoError(err, "cannot create GET request")
	var nearest []placesrs.PlaceResp
	igts.sendReqRecvResp(w, req, &nearest)
	igts.Equal(200, w.Code)
	igts.Require().Len(nearest, 1)
	igts.Equal(created.ID, nearest[0].ID)
	igts.Require().NotNil(nearest[0].Km)
	igts.Less(*nearest[0].Km, 5.0)
}
