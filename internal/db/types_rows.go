package db

import (
	"time"

	"github.com/google/uuid"
)

// JobRow is a persisted job posting as read back from the store.
type JobRow struct {
	ID             uuid.UUID `json:"id"`
	IdentityKey    string    `json:"identity_key"`
	Title          string    `json:"title"`
	CompanyName    string    `json:"company_name"`
	Location       string    `json:"location"`
	Country        string    `json:"country"`
	JobType        string    `json:"job_type"`
	SeniorityLevel string    `json:"seniority_level"`
	Sector         string    `json:"sector"`
	SourceURL      string    `json:"source_url"`
	SourcePlatform string    `json:"source_platform"`
	ScrapedAt      time.Time `json:"scraped_at"`
}

// CompanyRow is a persisted company enrichment profile.
type CompanyRow struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Size      string    `json:"size"`
	Industry  string    `json:"industry"`
	HQCountry string    `json:"hq_country"`
	Type      string    `json:"company_type"`
	UpdatedAt time.Time `json:"updated_at"`
}
