package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Emannuh254/server-jobs/internal/common"
	"github.com/Emannuh254/server-jobs/internal/domain/reference"
)

// ReferenceRepository implements get-or-create over the shared lookup
// tables.  Each resolve is a single upsert evaluated atomically by the
// database: insert-on-conflict-do-nothing, then a lookup when the insert
// was suppressed.  Concurrent resolutions of the same natural key both
// succeed with one surviving row.
type ReferenceRepository struct {
	db *sql.DB
}

func NewReferenceRepository(db *sql.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ResolveCompany(ctx context.Context, name string) (int64, error) {
	return r.upsert(ctx,
		`INSERT INTO companies (name) VALUES ($1) ON CONFLICT (name) DO NOTHING RETURNING id`,
		`SELECT id FROM companies WHERE name = $1`,
		[]any{name}, []any{name},
		"company")
}

func (r *ReferenceRepository) ResolveCategory(ctx context.Context, name string) (int64, error) {
	if name == "" {
		name = reference.DefaultCategory
	}
	// The slug participates only in the insert arm; a renamed category
	// keeps the slug it was created with.
	return r.upsert(ctx,
		`INSERT INTO job_categories (name, slug) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING RETURNING id`,
		`SELECT id FROM job_categories WHERE name = $1`,
		[]any{name, reference.Slugify(name)}, []any{name},
		"category")
}

func (r *ReferenceRepository) ResolveLocation(ctx context.Context, raw string) (int64, error) {
	loc := reference.ParseLocation(raw)
	return r.upsert(ctx,
		`INSERT INTO job_locations (city, country, remote) VALUES ($1, $2, $3) ON CONFLICT (city, country) DO NOTHING RETURNING id`,
		`SELECT id FROM job_locations WHERE city = $1 AND country = $2`,
		[]any{loc.City, loc.Country, loc.Remote}, []any{loc.City, loc.Country},
		"location")
}

func (r *ReferenceRepository) upsert(ctx context.Context, insertQuery, lookupQuery string, insertArgs, lookupArgs []any, entity string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		if isUniqueViolation(err) {
			return 0, common.NewError(common.CodeConflict, "failed to create "+entity, err)
		}
		return 0, common.NewError(common.CodeInternal, "failed to create "+entity, err)
	}
	// Insert suppressed by the conflict clause: the row already exists.
	if err := r.db.QueryRowContext(ctx, lookupQuery, lookupArgs...).Scan(&id); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to look up "+entity, err)
	}
	return id, nil
}

// isUniqueViolation reports SQLSTATE 23505.  ON CONFLICT only covers the
// named constraint, so a secondary unique index (the category slug) can
// still reject the insert arm.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
