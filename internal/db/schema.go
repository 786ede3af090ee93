package db

// schemaSQL is the full DDL for the job-market store. identity_key is the
// jobs conflict target; the trends uniqueness tuple keeps at most one row
// per (date, metric, value, sector, country).
const schemaSQL = `
CREATE TABLE IF NOT EXISTS jobs (
    id UUID DEFAULT gen_random_uuid() PRIMARY KEY,
    identity_key VARCHAR(64) UNIQUE NOT NULL,
    title VARCHAR(500) NOT NULL,
    company_name VARCHAR(255) NOT NULL,
    location VARCHAR(255) NOT NULL DEFAULT '',
    country VARCHAR(100) NOT NULL DEFAULT '',
    job_type VARCHAR(100) NOT NULL DEFAULT '',
    seniority_level VARCHAR(100) NOT NULL DEFAULT '',
    sector VARCHAR(100) NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    requirements TEXT NOT NULL DEFAULT '',
    salary_range VARCHAR(255) NOT NULL DEFAULT '',
    posted_date VARCHAR(100) NOT NULL DEFAULT '',
    source_url TEXT NOT NULL DEFAULT '',
    source_platform VARCHAR(100) NOT NULL DEFAULT '',
    company_size VARCHAR(100) NOT NULL DEFAULT '',
    company_industry VARCHAR(100) NOT NULL DEFAULT '',
    company_hq_country VARCHAR(100) NOT NULL DEFAULT '',
    company_type VARCHAR(100) NOT NULL DEFAULT '',
    scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS skills (
    id UUID DEFAULT gen_random_uuid() PRIMARY KEY,
    job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
    skill_name VARCHAR(255) NOT NULL,
    skill_category VARCHAR(100) NOT NULL DEFAULT 'Other',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS companies (
    id UUID DEFAULT gen_random_uuid() PRIMARY KEY,
    name VARCHAR(255) UNIQUE NOT NULL,
    size VARCHAR(100) NOT NULL DEFAULT '',
    industry VARCHAR(100) NOT NULL DEFAULT '',
    hq_country VARCHAR(100) NOT NULL DEFAULT '',
    company_type VARCHAR(100) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS trends (
    id UUID DEFAULT gen_random_uuid() PRIMARY KEY,
    date DATE NOT NULL,
    metric_name VARCHAR(255) NOT NULL,
    metric_value VARCHAR(255) NOT NULL,
    count INTEGER NOT NULL DEFAULT 0,
    sector VARCHAR(100) NOT NULL DEFAULT '',
    country VARCHAR(100) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (date, metric_name, metric_value, sector, country)
);

CREATE INDEX IF NOT EXISTS idx_jobs_country ON jobs(country);
CREATE INDEX IF NOT EXISTS idx_jobs_sector ON jobs(sector);
CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company_name);
CREATE INDEX IF NOT EXISTS idx_skills_job ON skills(job_id);
CREATE INDEX IF NOT EXISTS idx_skills_name ON skills(skill_name);
CREATE INDEX IF NOT EXISTS idx_trends_date ON trends(date);
`
