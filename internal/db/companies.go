package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobmarket/internal/types"
)

// UpsertCompany stores a company enrichment profile keyed by name. The
// profile is re-derived deterministically from the name on every run, so
// last-write-wins needs no further conflict handling.
func (db *DB) UpsertCompany(ctx context.Context, profile types.CompanyProfile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO companies (name, size, industry, hq_country, company_type)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (name) DO UPDATE SET
		     size = $2,
		     industry = $3,
		     hq_country = $4,
		     company_type = $5,
		     updated_at = NOW()`,
		profile.Name, profile.Size, profile.Industry, profile.HQCountry, profile.Type,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert company %s: %w", profile.Name, err)
	}
	return nil
}

// GetCompanyByName retrieves one company row, or nil when absent.
func (db *DB) GetCompanyByName(ctx context.Context, name string) (*CompanyRow, error) {
	var c CompanyRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, size, industry, hq_country, company_type, updated_at
		 FROM companies WHERE name = $1`,
		name,
	).Scan(&c.ID, &c.Name, &c.Size, &c.Industry, &c.HQCountry, &c.Type, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}
