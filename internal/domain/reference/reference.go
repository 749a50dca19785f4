// Package reference holds the shared lookup entities a job row points at:
// companies, categories, and locations.  Rows are deduplicated by natural
// key and never deleted by the application.
package reference

import (
	"context"
	"time"
)

type Company struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Location struct {
	ID      int64  `json:"id"`
	City    string `json:"city"`
	Country string `json:"country"`
	Remote  bool   `json:"remote"`
}

// Resolver maps loosely-structured input onto reference rows, creating a
// row on first use and returning the surrogate id either way.
type Resolver interface {
	ResolveCompany(ctx context.Context, name string) (int64, error)
	ResolveCategory(ctx context.Context, name string) (int64, error)
	ResolveLocation(ctx context.Context, raw string) (int64, error)
}
