package job

import "context"

type Repository interface {
	Create(ctx context.Context, input CreateInput) (int64, error)
	List(ctx context.Context, page, limit int, search string) ([]View, error)
	GetByID(ctx context.Context, id int64) (*View, error)
	// Update applies the non-nil patch fields in one statement.  A patch
	// against an absent or inactive job fails with a not-found error; an
	// empty patch is a no-op success.
	Update(ctx context.Context, id int64, patch Patch) error
	// SoftDelete flips is_active off.  It does not verify the row exists;
	// only statement failure is reported.
	SoftDelete(ctx context.Context, id int64) error
}
