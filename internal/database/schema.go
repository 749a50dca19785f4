package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Tables in dependency order: jobs references the three tables before it,
// job_applications references jobs.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) UNIQUE NOT NULL,
		description TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS job_categories (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) UNIQUE NOT NULL,
		slug VARCHAR(100) UNIQUE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS job_locations (
		id SERIAL PRIMARY KEY,
		city VARCHAR(100) NOT NULL,
		country VARCHAR(100) NOT NULL,
		remote BOOLEAN DEFAULT FALSE,
		UNIQUE (city, country)
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		requirements TEXT,
		job_type VARCHAR(50) DEFAULT 'full-time',
		salary_min DECIMAL(10, 2),
		salary_max DECIMAL(10, 2),
		salary_currency VARCHAR(10) DEFAULT 'KSh',
		skills_required JSONB,
		company_id INTEGER REFERENCES companies(id) ON DELETE CASCADE,
		category_id INTEGER REFERENCES job_categories(id) ON DELETE SET NULL,
		location_id INTEGER REFERENCES job_locations(id) ON DELETE SET NULL,
		application_email VARCHAR(255),
		application_url VARCHAR(500),
		posted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		is_active BOOLEAN DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS job_applications (
		id SERIAL PRIMARY KEY,
		job_id INTEGER REFERENCES jobs(id) ON DELETE CASCADE,
		applicant_name VARCHAR(255) NOT NULL,
		applicant_email VARCHAR(255) NOT NULL,
		resume_url TEXT,
		cover_letter TEXT,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Reverse dependency order for drops.
var schemaTables = []string{
	"job_applications",
	"jobs",
	"job_locations",
	"job_categories",
	"companies",
}

// EnsureSchema creates every table if it is missing.  Safe to call on every
// startup; existing columns are never altered.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// ResetSchema drops all tables and recreates them.  Destructive; used by
// the manage CLI only.
func ResetSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range schemaTables {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return EnsureSchema(ctx, db)
}
