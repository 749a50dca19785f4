package postgres

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/Emannuh254/server-jobs/internal/common"
	"github.com/Emannuh254/server-jobs/internal/domain/stats"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Get(ctx context.Context) (*stats.Stats, error) {
	out := &stats.Stats{
		Categories: map[string]int64{},
		Locations:  map[string]int64{},
	}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&out.TotalJobs); err != nil {
		return nil, r.wrap("failed to count jobs", err)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active = TRUE`).Scan(&out.ActiveJobs); err != nil {
		return nil, r.wrap("failed to count active jobs", err)
	}

	// LEFT JOIN against active jobs so a category with no current
	// postings still shows up with a zero count.
	rows, err := r.db.QueryContext(ctx, `SELECT cat.name, COUNT(j.id)
		FROM job_categories cat
		LEFT JOIN jobs j ON cat.id = j.category_id AND j.is_active = TRUE
		GROUP BY cat.name`)
	if err != nil {
		return nil, r.wrap("failed to count categories", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, r.wrap("failed to scan category count", err)
		}
		out.Categories[name] = count
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("failed to count categories", err)
	}

	locRows, err := r.db.QueryContext(ctx, `SELECT CONCAT(l.city, ', ', l.country) AS loc, COUNT(j.id)
		FROM job_locations l
		LEFT JOIN jobs j ON l.id = j.location_id AND j.is_active = TRUE
		GROUP BY loc`)
	if err != nil {
		return nil, r.wrap("failed to count locations", err)
	}
	defer locRows.Close()
	for locRows.Next() {
		var loc string
		var count int64
		if err := locRows.Scan(&loc, &count); err != nil {
			return nil, r.wrap("failed to scan location count", err)
		}
		out.Locations[loc] = count
	}
	if err := locRows.Err(); err != nil {
		return nil, r.wrap("failed to count locations", err)
	}

	return out, nil
}

func (r *StatsRepository) wrap(msg string, err error) error {
	zap.S().Errorw(msg, "error", err)
	return common.NewError(common.CodeInternal, msg, err)
}
