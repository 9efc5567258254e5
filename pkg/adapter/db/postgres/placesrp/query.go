// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package placesrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/geocoord/pkg/adapter/db/postgres"
	"github.com/momeni/geocoord/pkg/core/cerr"
	"github.com/momeni/geocoord/pkg/core/model"
	"github.com/momeni/geocoord/pkg/core/repo"
)

// Schema creates the places table if it does not exist. The CHECK
// constraints repeat the model.Coordinate invariants, so rows which
// are inserted by other tools are valid coordinates too.
const Schema = `CREATE TABLE IF NOT EXISTS places (
    pid UUID PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    lat DOUBLE PRECISION NOT NULL CHECK (lat BETWEEN -90 AND 90),
    lon DOUBLE PRECISION NOT NULL CHECK (lon BETWEEN -180 AND 180)
);
CREATE INDEX IF NOT EXISTS places_lat_lon_idx ON places (lat, lon);`

// uniqueViolation is the PostgreSQL SQLSTATE of unique_violation.
const uniqueViolation = "23505"

// gPlace is the GORM representation of a model.Place. The Coordinate
// is flattened because its fields are not exported.
type gPlace struct {
	PID  uuid.UUID `gorm:"primaryKey;type:uuid;column:pid"`
	Name string
	Lat  float64
	Lon  float64
}

func (gp *gPlace) TableName() string {
	return "places"
}

func (gp *gPlace) Model() (*model.Place, error) {
	c, err := model.NewCoordinate(gp.Lat, gp.Lon)
	if err != nil {
		return nil, fmt.Errorf("place %s: %w", gp.PID, err)
	}
	return &model.Place{ID: gp.PID, Name: gp.Name, Coordinate: c}, nil
}

func fromModel(p *model.Place) *gPlace {
	return &gPlace{
		PID:  p.ID,
		Name: p.Name,
		Lat:  p.Coordinate.Lat(),
		Lon:  p.Coordinate.Lon(),
	}
}

func models(gps []gPlace) ([]*model.Place, error) {
	ps := make([]*model.Place, 0, len(gps))
	for i := range gps {
		p, err := gps[i].Model()
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// InitSchema creates the places table and its index using q.
func InitSchema(ctx context.Context, q repo.Queryer) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("creating places table: %w", err)
	}
	return nil
}

// Count returns the number of stored places. It only needs a raw
// repo.Queryer, so it may run right after InitSchema in the same
// transaction.
func Count(ctx context.Context, q repo.Queryer) (n int64, err error) {
	rows, err := q.Query(ctx, "SELECT count(*) FROM places")
	if err != nil {
		return 0, fmt.Errorf("counting places: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err = rows.Err(); err == nil {
			err = errors.New("no rows")
		}
		return 0, fmt.Errorf("counting places: %w", err)
	}
	if err = rows.Scan(&n); err != nil {
		return 0, fmt.Errorf("scanning count: %w", err)
	}
	return n, rows.Err()
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, p *model.Place) error {
	err := q.GORM(ctx).Create(fromModel(p)).Error
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return cerr.Conflict(fmt.Errorf("place %q already exists", p.Name))
	}
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	return nil
}

func Get[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) (*model.Place, error) {
	var gps []gPlace
	if err := q.GORM(ctx).Where("pid=?", id).Limit(1).Find(&gps).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gps); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gps[0].Model()
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, id uuid.UUID) error {
	tt := q.GORM(ctx).Where("pid=?", id).Delete(&gPlace{})
	if err := tt.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if n := tt.RowsAffected; n != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]*model.Place, error) {
	var gps []gPlace
	if err := q.GORM(ctx).Order("name").Find(&gps).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gps)
}

func Within[Q postgres.Queryer](ctx context.Context, q Q, b model.BoundingBox) ([]*model.Place, error) {
	var gps []gPlace
	err := q.GORM(ctx).Where(
		"lat BETWEEN ? AND ? AND lon BETWEEN ? AND ?",
		b.MinLat, b.MaxLat, b.MinLon, b.MaxLon,
	).Order("name").Find(&gps).Error
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return models(gps)
}
