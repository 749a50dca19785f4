package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Emannuh254/server-jobs/internal/common"
	"github.com/Emannuh254/server-jobs/internal/domain/job"
	"github.com/Emannuh254/server-jobs/internal/domain/reference"
)

const jobViewColumns = `j.id, j.title, j.description, j.requirements, j.job_type,
	j.salary_min, j.salary_max, j.salary_currency, j.skills_required,
	j.company_id, j.category_id, j.location_id,
	j.application_email, j.application_url, j.posted_at, j.is_active,
	c.name AS company, cat.name AS category, l.city, l.country, l.remote`

const jobViewJoins = `FROM jobs j
	JOIN companies c ON j.company_id = c.id
	LEFT JOIN job_categories cat ON j.category_id = cat.id
	LEFT JOIN job_locations l ON j.location_id = l.id`

type JobRepository struct {
	db       *sql.DB
	resolver reference.Resolver
}

func NewJobRepository(db *sql.DB, resolver reference.Resolver) *JobRepository {
	return &JobRepository{db: db, resolver: resolver}
}

func (r *JobRepository) Create(ctx context.Context, input job.CreateInput) (int64, error) {
	companyID, err := r.resolver.ResolveCompany(ctx, input.Company)
	if err != nil {
		return 0, err
	}
	locationID, err := r.resolver.ResolveLocation(ctx, input.Location)
	if err != nil {
		return 0, err
	}
	categoryID, err := r.resolver.ResolveCategory(ctx, input.Category)
	if err != nil {
		return 0, err
	}

	skills, err := json.Marshal(splitTags(input.Tags))
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to serialize tags", err)
	}

	jobType := input.Type
	if jobType == "" {
		jobType = job.DefaultType
	}
	currency := input.SalaryCurrency
	if currency == "" {
		currency = job.DefaultCurrency
	}

	var id int64
	err = r.db.QueryRowContext(ctx, `INSERT INTO jobs (
			title, description, requirements, job_type, salary_min, salary_max,
			salary_currency, skills_required, company_id, category_id, location_id,
			application_email, application_url, posted_at, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, TRUE)
		RETURNING id`,
		input.Title, input.Description, input.Requirements, jobType,
		input.SalaryMin, input.SalaryMax, currency, skills,
		companyID, categoryID, locationID,
		input.ApplicationEmail, input.ApplicationURL, time.Now().UTC()).Scan(&id)
	if err != nil {
		zap.S().Errorw("failed to insert job", "title", input.Title, "error", err)
		return 0, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return id, nil
}

func (r *JobRepository) List(ctx context.Context, page, limit int, search string) ([]job.View, error) {
	if page < 1 {
		page = 1
	}
	query := `SELECT ` + jobViewColumns + ` ` + jobViewJoins + ` WHERE j.is_active = TRUE`
	args := []any{}
	if search != "" {
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
		query += " AND (j.title ILIKE $1 OR j.description ILIKE $2)"
	}
	args = append(args, limit, (page-1)*limit)
	query += fmt.Sprintf(" ORDER BY j.posted_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		zap.S().Errorw("failed to list jobs", "error", err)
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()

	var items []job.View
	for rows.Next() {
		view, err := scanJobView(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	return items, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*job.View, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobViewColumns+` `+jobViewJoins+`
		WHERE j.id = $1 AND j.is_active = TRUE`, id)
	view, err := scanJobView(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		zap.S().Errorw("failed to load job", "id", id, "error", err)
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return view, nil
}

func (r *JobRepository) Update(ctx context.Context, id int64, patch job.Patch) error {
	// The precheck doubles as the not-found gate: soft-deleted jobs are
	// invisible here, so no statement is issued against them.
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if patch.IsZero() {
		return nil
	}

	var set []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Requirements != nil {
		add("requirements", *patch.Requirements)
	}
	if patch.Type != nil {
		add("job_type", *patch.Type)
	}
	if patch.SalaryMin != nil {
		add("salary_min", *patch.SalaryMin)
	}
	if patch.SalaryMax != nil {
		add("salary_max", *patch.SalaryMax)
	}
	if patch.SalaryCurrency != nil {
		add("salary_currency", *patch.SalaryCurrency)
	}
	if patch.ApplicationEmail != nil {
		add("application_email", *patch.ApplicationEmail)
	}
	if patch.ApplicationURL != nil {
		add("application_url", *patch.ApplicationURL)
	}
	if patch.Tags != nil {
		skills, err := json.Marshal(splitTags(*patch.Tags))
		if err != nil {
			return common.NewError(common.CodeInternal, "failed to serialize tags", err)
		}
		add("skills_required", skills)
	}
	if patch.Company != nil {
		companyID, err := r.resolver.ResolveCompany(ctx, *patch.Company)
		if err != nil {
			return err
		}
		add("company_id", companyID)
	}
	if patch.Location != nil {
		locationID, err := r.resolver.ResolveLocation(ctx, *patch.Location)
		if err != nil {
			return err
		}
		add("location_id", locationID)
	}
	if patch.Category != nil {
		categoryID, err := r.resolver.ResolveCategory(ctx, *patch.Category)
		if err != nil {
			return err
		}
		add("category_id", categoryID)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		zap.S().Errorw("failed to update job", "id", id, "error", err)
		return common.NewError(common.CodeInternal, "failed to update job", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) SoftDelete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE jobs SET is_active = FALSE WHERE id = $1`, id); err != nil {
		zap.S().Errorw("failed to delete job", "id", id, "error", err)
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	return nil
}

// splitTags turns a comma-separated tag string into trimmed, non-empty
// entries with order preserved.
func splitTags(tags string) []string {
	out := []string{}
	for _, tag := range strings.Split(tags, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobView(row rowScanner) (*job.View, error) {
	var (
		v                job.View
		requirements     sql.NullString
		salaryMin        sql.NullFloat64
		salaryMax        sql.NullFloat64
		skills           []byte
		categoryID       sql.NullInt64
		locationID       sql.NullInt64
		applicationEmail sql.NullString
		applicationURL   sql.NullString
		category         sql.NullString
		city             sql.NullString
		country          sql.NullString
		remote           sql.NullBool
	)
	err := row.Scan(&v.ID, &v.Title, &v.Description, &requirements, &v.Type,
		&salaryMin, &salaryMax, &v.SalaryCurrency, &skills,
		&v.CompanyID, &categoryID, &locationID,
		&applicationEmail, &applicationURL, &v.PostedAt, &v.IsActive,
		&v.Company, &category, &city, &country, &remote)
	if err != nil {
		return nil, err
	}
	v.Requirements = requirements.String
	if salaryMin.Valid {
		v.SalaryMin = &salaryMin.Float64
	}
	if salaryMax.Valid {
		v.SalaryMax = &salaryMax.Float64
	}
	v.SkillsRaw = string(skills)
	if categoryID.Valid {
		v.CategoryID = &categoryID.Int64
	}
	if locationID.Valid {
		v.LocationID = &locationID.Int64
	}
	v.ApplicationEmail = applicationEmail.String
	v.ApplicationURL = applicationURL.String
	v.Category = category.String
	v.City = city.String
	v.Country = country.String
	v.Remote = remote.Bool
	return &v, nil
}
