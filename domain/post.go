package domain

import (
	"context"
	"time"
)

// Post is the root container for its comments.
// Comments reference exactly one Post.
type Post struct {
	ID        int64     // Unique identifier for the post
	Title     string    // Post title
	Content   string    // Post body content
	User      User      // Blog owner information
	Comments  int64     // Comment count, maintained by the sync worker
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
}

// PostRepository defines the contract for post data persistence.
type PostRepository interface {
	// GetByID retrieves a single post by its ID.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// Store creates a new post in the repository.
	Store(ctx context.Context, p *Post) error

	// FetchIDs retrieves post IDs starting after the cursor, at most limit of them.
	// Used to seed the bloom filter at startup.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)

	// ApplyCommentCountChanges applies accumulated comment-count deltas,
	// keyed by post ID, in a single batch.
	ApplyCommentCountChanges(ctx context.Context, deltas map[int64]int64) error
}

// PostUsecase defines the business logic contract for post operations.
type PostUsecase interface {
	GetByID(ctx context.Context, id int64) (Post, error)
	Store(ctx context.Context, p *Post) error

	// InitBloomFilter loads every existing post ID into the bloom filter.
	InitBloomFilter(ctx context.Context) error
}
