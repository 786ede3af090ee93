package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobmarket/internal/pipeline"
	"github.com/jonathan/jobmarket/internal/types"
)

// UpsertJob inserts or updates a job row keyed by identity_key (last write
// wins) and then replaces its skill rows as a unit. A skills failure after
// the job row has landed is reported as pipeline.ErrSkillReplace so the
// caller can isolate it instead of failing the record.
func (db *DB) UpsertJob(ctx context.Context, rec *types.EnrichedRecord) (pipeline.UpsertResult, error) {
	var jobID uuid.UUID
	var updated bool

	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (identity_key, title, company_name, location, country,
		                   job_type, seniority_level, sector, description, requirements,
		                   salary_range, posted_date, source_url, source_platform,
		                   company_size, company_industry, company_hq_country, company_type,
		                   scraped_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 ON CONFLICT (identity_key) DO UPDATE SET
		     title = $2,
		     company_name = $3,
		     location = $4,
		     country = $5,
		     job_type = $6,
		     seniority_level = $7,
		     sector = $8,
		     description = $9,
		     requirements = $10,
		     salary_range = $11,
		     posted_date = $12,
		     source_url = $13,
		     source_platform = $14,
		     company_size = $15,
		     company_industry = $16,
		     company_hq_country = $17,
		     company_type = $18,
		     scraped_at = $19,
		     is_active = TRUE,
		     updated_at = NOW()
		 RETURNING id, (xmax <> 0) AS updated`,
		rec.IdentityKey, rec.Title, rec.CompanyName, rec.Location, rec.Country,
		rec.JobType, rec.SeniorityLevel, rec.Sector, rec.Description, rec.Requirements,
		rec.SalaryRange, rec.PostedDate, rec.SourceURL, rec.SourcePlatform,
		rec.Company.Size, rec.Company.Industry, rec.Company.HQCountry, rec.Company.Type,
		rec.ScrapedAt,
	).Scan(&jobID, &updated)
	if err != nil {
		return pipeline.UpsertResult{}, fmt.Errorf("failed to upsert job %s: %w", rec.IdentityKey, err)
	}

	result := pipeline.UpsertResult{ConflictResolved: updated}
	if err := db.replaceJobSkills(ctx, jobID, rec.Skills); err != nil {
		return result, fmt.Errorf("%w for job %s: %w", pipeline.ErrSkillReplace, rec.IdentityKey, err)
	}
	return result, nil
}

// replaceJobSkills swaps a job's skill rows inside one transaction: the old
// set is fully superseded by the new set, never merged.
func (db *DB) replaceJobSkills(ctx context.Context, jobID uuid.UUID, skills []types.Skill) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE job_id = $1`, jobID); err != nil {
		return fmt.Errorf("failed to delete old skills: %w", err)
	}

	for _, s := range skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO skills (job_id, skill_name, skill_category) VALUES ($1, $2, $3)`,
			jobID, s.Name, s.Category,
		)
		if err != nil {
			return fmt.Errorf("failed to insert skill %s: %w", s.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit skills: %w", err)
	}
	return nil
}

// JobFacts is the slice of a job row the trend aggregation needs.
type JobFacts struct {
	ID             uuid.UUID
	Sector         string
	Country        string
	SeniorityLevel string
	Skills         []string
}

// JobFactsForTrends loads all active jobs with their skill names, ordered
// by job id for deterministic aggregation.
func (db *DB) JobFactsForTrends(ctx context.Context) ([]JobFacts, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, sector, country, seniority_level FROM jobs
		 WHERE is_active ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var facts []JobFacts
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var f JobFacts
		if err := rows.Scan(&f.ID, &f.Sector, &f.Country, &f.SeniorityLevel); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		index[f.ID] = len(facts)
		facts = append(facts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}

	skillRows, err := db.pool.Query(ctx,
		`SELECT s.job_id, s.skill_name FROM skills s
		 JOIN jobs j ON j.id = s.job_id
		 WHERE j.is_active ORDER BY s.job_id, s.skill_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var jobID uuid.UUID
		var name string
		if err := skillRows.Scan(&jobID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		if i, ok := index[jobID]; ok {
			facts[i].Skills = append(facts[i].Skills, name)
		}
	}
	if err := skillRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skills: %w", err)
	}

	return facts, nil
}

// GetJobByIdentityKey retrieves one job row, or nil when absent.
func (db *DB) GetJobByIdentityKey(ctx context.Context, identityKey string) (*JobRow, error) {
	var j JobRow
	err := db.pool.QueryRow(ctx,
		`SELECT id, identity_key, title, company_name, location, country, job_type,
		        seniority_level, sector, source_url, source_platform, scraped_at
		 FROM jobs WHERE identity_key = $1`,
		identityKey,
	).Scan(&j.ID, &j.IdentityKey, &j.Title, &j.CompanyName, &j.Location, &j.Country,
		&j.JobType, &j.SeniorityLevel, &j.Sector, &j.SourceURL, &j.SourcePlatform, &j.ScrapedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}
