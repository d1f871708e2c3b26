package database

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"crossdash/internal/database/repository"
	"crossdash/internal/dataset"
)

//go:embed gapminder.csv
var gapminderCSV string

// Seed loads the bundled gapminder observations into an empty database.
// It is idempotent and safe to run on every startup.
func Seed(ctx context.Context, db *sql.DB) error {
	repo := repository.NewGapminderRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	rows, err := parseSeedCSV(gapminderCSV)
	if err != nil {
		return err
	}
	return WithTx(db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO gapminder(id, country, continent, year, life_exp, pop, gdp_per_cap)
		VALUES(?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, r := range rows {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("gapminder:%s:%d", r.Country, r.Year))).String()
			if _, err := stmt.ExecContext(ctx, id, r.Country, r.Continent, r.Year, r.LifeExp, r.Pop, r.GDPPercap); err != nil {
				return fmt.Errorf("seed %s %d: %w", r.Country, r.Year, err)
			}
		}
		return nil
	})
}

func parseSeedCSV(data string) (dataset.Table, error) {
	reader := csv.NewReader(strings.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse seed csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("seed csv has no data rows")
	}

	var out dataset.Table
	for i, rec := range records[1:] {
		if len(rec) != 6 {
			return nil, fmt.Errorf("seed csv row %d: %d columns, want 6", i+2, len(rec))
		}
		year, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("seed csv row %d: year: %w", i+2, err)
		}
		lifeExp, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("seed csv row %d: lifeExp: %w", i+2, err)
		}
		pop, err := strconv.ParseInt(rec[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed csv row %d: pop: %w", i+2, err)
		}
		gdp, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return nil, fmt.Errorf("seed csv row %d: gdpPercap: %w", i+2, err)
		}
		out = append(out, dataset.Row{
			Country:   rec[0],
			Continent: rec[1],
			Year:      year,
			LifeExp:   lifeExp,
			Pop:       pop,
			GDPPercap: gdp,
		})
	}
	return out, nil
}
