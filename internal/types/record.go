// Package types defines the shared data structures used across the ETL pipeline.
package types

import "time"

// RawRecord is one scraped job posting exactly as a collector produced it.
// No field is guaranteed to be present or non-empty; the pipeline's clean
// stage is responsible for normalization and mandatory-field checks.
type RawRecord struct {
	Title          string `json:"title,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	Location       string `json:"location,omitempty"`
	Country        string `json:"country,omitempty"`
	JobType        string `json:"job_type,omitempty"`
	SeniorityLevel string `json:"seniority_level,omitempty"`
	Description    string `json:"description,omitempty"`
	Requirements   string `json:"requirements,omitempty"`
	SalaryRange    string `json:"salary_range,omitempty"`
	PostedDate     string `json:"posted_date,omitempty"`
	SourceID       string `json:"source_id,omitempty"`
	SourceURL      string `json:"source_url,omitempty"`
	SourcePlatform string `json:"source_platform,omitempty"`

	// SearchLocation is the location the collector was originally searching
	// for. Remote listings resolve against it when the location text itself
	// names no country.
	SearchLocation string `json:"search_location,omitempty"`
}

// Skill is one extracted skill with its vocabulary category.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// EnrichedRecord is the pipeline's output unit: a cleaned, deduplicated,
// fully classified job posting ready for upsert. It is never mutated after
// leaving the pipeline.
type EnrichedRecord struct {
	IdentityKey    string    `json:"identity_key"`
	Title          string    `json:"title"`
	CompanyName    string    `json:"company_name"`
	Location       string    `json:"location"`
	Country        string    `json:"country"`
	JobType        string    `json:"job_type"`
	SeniorityLevel string    `json:"seniority_level"`
	Sector         string    `json:"sector"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	SalaryRange    string    `json:"salary_range"`
	PostedDate     string    `json:"posted_date"`
	SourceURL      string    `json:"source_url"`
	SourcePlatform string    `json:"source_platform"`
	ScrapedAt      time.Time `json:"scraped_at"`

	Skills  []Skill        `json:"skills"`
	Company CompanyProfile `json:"company"`
}

// PlaceholderCompany substitutes an empty or whitespace-only company name
// before enrichment. The placeholder itself enriches to the all-default
// profile.
const PlaceholderCompany = "Unknown Company"
