package repository

import (
	"context"
	"errors"
	"fmt"

	"tour-optimizer-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the delivery_points table. Points are stored as PostGIS geography
// and ordered by id, so the lowest id is the depot.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS delivery_points (
		id BIGSERIAL PRIMARY KEY,
		address VARCHAR(255) NOT NULL,
		geom GEOGRAPHY(POINT, 4326) NOT NULL
	);
	CREATE INDEX IF NOT EXISTS delivery_points_geom_idx ON delivery_points USING GIST (geom);
`

// Repository implements the location repository for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the delivery_points table if it does not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ListLocations returns every delivery point in depot-first order.
// Location IDs are positions in that order, not database keys.
func (r *Repository) ListLocations(ctx context.Context) ([]models.Location, error) {
	sql := `
		SELECT
			address,
			ST_Y(geom::geometry) AS latitude,
			ST_X(geom::geometry) AS longitude
		FROM delivery_points
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		loc := models.Location{ID: len(locations)}
		if err := rows.Scan(&loc.Address, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// FindNearestLocation performs a spatial query to find the delivery point nearest to the given coordinates.
// The KNN ordering uses delivery_points_geom_idx; distance is measured on the spheroid.
// It returns nil without error when the table is empty.
func (r *Repository) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.NearbyLocation, error) {
	sql := `
		WITH nearest AS (
			SELECT id, address, geom
			FROM delivery_points
			ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
			LIMIT 1
		)
		SELECT
			(SELECT COUNT(*) FROM delivery_points p WHERE p.id < n.id) AS position,
			n.address,
			ST_Y(n.geom::geometry) AS latitude,
			ST_X(n.geom::geometry) AS longitude,
			ST_Distance(n.geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography) AS distance_meters
		FROM nearest n
	`

	var loc models.NearbyLocation
	err := r.db.QueryRow(ctx, sql, lat, lon).Scan(
		&loc.ID,
		&loc.Address,
		&loc.Latitude,
		&loc.Longitude,
		&loc.DistanceMeters,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &loc, nil
}

// CopyLocations bulk-inserts locations in order and returns the number of rows written.
func (r *Repository) CopyLocations(ctx context.Context, locations []models.Location) (int64, error) {
	n, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"delivery_points"},
		[]string{"address", "geom"},
		pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
			loc := locations[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%.8f %.8f)", loc.Longitude, loc.Latitude) // PostGIS format: lon lat
			return []any{loc.Address, geom}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy locations: %w", err)
	}
	return n, nil
}

// CountLocations returns the number of stored delivery points.
func (r *Repository) CountLocations(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM delivery_points").Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count locations: %w", err)
	}
	return count, nil
}
