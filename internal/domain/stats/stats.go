// Package stats defines the read-only rollups reported by /api/stats/.
package stats

import "context"

type Stats struct {
	TotalJobs  int64            `json:"total_jobs"`
	ActiveJobs int64            `json:"active_jobs"`
	Categories map[string]int64 `json:"categories"`
	Locations  map[string]int64 `json:"locations"`
}

type Repository interface {
	Get(ctx context.Context) (*Stats, error)
}
