package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/02loveslollipop/harvest-price-forecaster/internal/engine"
	"github.com/02loveslollipop/harvest-price-forecaster/internal/predictor"
)

// Store archives completed prediction runs in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const schemaSQL = `
    CREATE SCHEMA IF NOT EXISTS forecast;
    CREATE TABLE IF NOT EXISTS forecast.prediction_runs (
        id               uuid PRIMARY KEY,
        market           text NOT NULL,
        product          text NOT NULL,
        resolved_product text NOT NULL,
        fallback         boolean NOT NULL DEFAULT false,
        region           text NOT NULL DEFAULT '',
        currency         text NOT NULL,
        period           text NOT NULL,
        latitude         double precision NOT NULL,
        longitude        double precision NOT NULL,
        current_price    double precision NOT NULL,
        points           jsonb NOT NULL,
        created_at       timestamptz NOT NULL DEFAULT now()
    );
    CREATE INDEX IF NOT EXISTS prediction_runs_product_idx
        ON forecast.prediction_runs (resolved_product, created_at DESC);
`

// EnsureSchema creates the archive table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schemaSQL)
	return err
}

// Run is one archived prediction.
type Run struct {
	ID              string              `json:"id"`
	Market          string              `json:"market"`
	Product         string              `json:"product"`
	ResolvedProduct string              `json:"resolved_product"`
	Fallback        bool                `json:"fallback"`
	Region          string              `json:"region,omitempty"`
	Currency        string              `json:"currency"`
	Period          string              `json:"period"`
	Latitude        float64             `json:"latitude"`
	Longitude       float64             `json:"longitude"`
	CurrentPrice    float64             `json:"current_price"`
	Points          []engine.PricePoint `json:"points"`
	CreatedAt       time.Time           `json:"created_at"`
}

const insertRunSQL = `
    INSERT INTO forecast.prediction_runs
        (id, market, product, resolved_product, fallback, region, currency, period, latitude, longitude, current_price, points)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING created_at
`

// SaveRun archives a forecast and returns the stored record.
func (s *Store) SaveRun(ctx context.Context, fc predictor.Forecast) (Run, error) {
	points, err := json.Marshal(fc.Points)
	if err != nil {
		return Run{}, fmt.Errorf("encode points: %w", err)
	}

	run := Run{
		ID:              uuid.NewString(),
		Market:          fc.Market,
		Product:         fc.Product,
		ResolvedProduct: fc.ResolvedProduct,
		Fallback:        fc.Fallback,
		Region:          fc.Region,
		Currency:        string(fc.Currency),
		Period:          fc.Period,
		Latitude:        fc.Latitude,
		Longitude:       fc.Longitude,
		CurrentPrice:    fc.CurrentPrice,
		Points:          fc.Points,
	}

	if err := s.pool.QueryRow(ctx, insertRunSQL,
		run.ID,
		run.Market,
		run.Product,
		run.ResolvedProduct,
		run.Fallback,
		run.Region,
		run.Currency,
		run.Period,
		run.Latitude,
		run.Longitude,
		run.CurrentPrice,
		points,
	).Scan(&run.CreatedAt); err != nil {
		return Run{}, err
	}
	return run, nil
}

// RunQuery holds filters for listing archived runs.
type RunQuery struct {
	Market  string
	Product string
	Region  string
	Limit   int
	Offset  int
}

const selectRunsBase = `
    SELECT id::text, market, product, resolved_product, fallback, region, currency, period,
           latitude, longitude, current_price, points, created_at
    FROM forecast.prediction_runs
    WHERE true
`

// ListRuns returns archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context, q RunQuery) ([]Run, error) {
	args := []any{}
	clause := ""
	argPos := 1
	if q.Market != "" {
		clause += " AND market = $" + strconv.Itoa(argPos)
		args = append(args, q.Market)
		argPos++
	}
	if q.Product != "" {
		clause += " AND resolved_product = $" + strconv.Itoa(argPos)
		args = append(args, q.Product)
		argPos++
	}
	if q.Region != "" {
		clause += " AND region = $" + strconv.Itoa(argPos)
		args = append(args, q.Region)
		argPos++
	}
	order := " ORDER BY created_at DESC"
	limit := ""
	if q.Limit > 0 {
		limit = " LIMIT $" + strconv.Itoa(argPos)
		args = append(args, q.Limit)
		argPos++
	}
	if q.Offset > 0 {
		limit += " OFFSET $" + strconv.Itoa(argPos)
		args = append(args, q.Offset)
	}

	rows, err := s.pool.Query(ctx, selectRunsBase+clause+order+limit, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun returns one archived run, or nil when the id is unknown.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	row := s.pool.QueryRow(ctx, selectRunsBase+" AND id = $1", id)
	run, err := scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func scanRun(row pgx.Row) (Run, error) {
	var run Run
	var points []byte
	if err := row.Scan(
		&run.ID,
		&run.Market,
		&run.Product,
		&run.ResolvedProduct,
		&run.Fallback,
		&run.Region,
		&run.Currency,
		&run.Period,
		&run.Latitude,
		&run.Longitude,
		&run.CurrentPrice,
		&points,
		&run.CreatedAt,
	); err != nil {
		return Run{}, err
	}
	if err := json.Unmarshal(points, &run.Points); err != nil {
		return Run{}, fmt.Errorf("decode points for run %s: %w", run.ID, err)
	}
	return run, nil
}
