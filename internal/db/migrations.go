package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		industry VARCHAR(255),
		description TEXT,
		email VARCHAR(255),
		logo_url VARCHAR(512),
		services_offered JSONB NOT NULL DEFAULT '[]',
		search_vector TSVECTOR GENERATED ALWAYS AS (
			to_tsvector('english',
				coalesce(name, '') || ' ' ||
				coalesce(industry, '') || ' ' ||
				coalesce(description, ''))
		) STORED,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_companies_search_vector
		ON companies USING GIN (search_vector);`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'tender_status') THEN
			CREATE TYPE tender_status AS ENUM ('draft', 'active', 'closed', 'awarded');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS tenders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		budget NUMERIC(15,2),
		deadline DATE,
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		status tender_status NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tenders_status_created_at
		ON tenders (status, created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_tenders_company_id ON tenders (company_id);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'application_status') THEN
			CREATE TYPE application_status AS ENUM ('submitted', 'under_review', 'accepted', 'rejected');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		tender_id UUID NOT NULL REFERENCES tenders(id) ON DELETE CASCADE,
		company_id UUID NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		proposal TEXT NOT NULL,
		quoted_price NUMERIC(15,2),
		status application_status NOT NULL DEFAULT 'submitted',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_applications_tender_company UNIQUE (tender_id, company_id)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_applications_tender_id ON applications (tender_id);`,
	`CREATE INDEX IF NOT EXISTS idx_applications_company_id ON applications (company_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
