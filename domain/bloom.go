package domain

import "context"

// BloomRepository tracks the set of existing post IDs so obviously
// missing posts can be rejected without touching the database.
type BloomRepository interface {
	// Add puts an ID into the filter
	Add(ctx context.Context, id int64) error

	// Exists checks whether the ID may exist.
	// true: possibly exists (check cache/DB next)
	// false: definitely does not exist (return 404 right away)
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd adds many IDs at once
	BulkAdd(ctx context.Context, ids []int64) error
}
