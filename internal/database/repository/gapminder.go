package repository

import (
	"context"
	"database/sql"

	"crossdash/internal/dataset"
)

// GapminderRepo reads the seeded observations.
type GapminderRepo struct {
	db *sql.DB
}

func NewGapminderRepo(db *sql.DB) *GapminderRepo { return &GapminderRepo{db: db} }

// All returns every observation ordered by country then year, which
// keeps per-country series contiguous for the charts.
func (r *GapminderRepo) All(ctx context.Context) (dataset.Table, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT country, continent, year, life_exp, pop, gdp_per_cap
	FROM gapminder
	ORDER BY country, year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out dataset.Table
	for rows.Next() {
		var row dataset.Row
		if err := rows.Scan(&row.Country, &row.Continent, &row.Year, &row.LifeExp, &row.Pop, &row.GDPPercap); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// YearRange returns the min and max survey year in the table.
func (r *GapminderRepo) YearRange(ctx context.Context) (lo, hi int, err error) {
	row := r.db.QueryRowContext(ctx, `SELECT MIN(year), MAX(year) FROM gapminder`)
	var minYear, maxYear sql.NullInt64
	if err := row.Scan(&minYear, &maxYear); err != nil {
		return 0, 0, err
	}
	if !minYear.Valid || !maxYear.Valid {
		return 0, 0, sql.ErrNoRows
	}
	return int(minYear.Int64), int(maxYear.Int64), nil
}

// Count returns the number of observations.
func (r *GapminderRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gapminder`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
