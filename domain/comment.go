package domain

import (
	"context"
	"time"
)

// Comment domain model.
// A comment with ParentID == 0 is a root comment and may own replies.
// A comment with ParentID != 0 is a reply and may never be replied to;
// nesting is capped at exactly one level below a root comment.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	ParentID  int64     `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// User carries the author information
	User *User `json:"user,omitempty"`
	// Children carries the replies, in insertion order
	Children []*Comment `json:"children,omitempty"`
}

// NewComment creates a root comment on the given post.
func NewComment(user User, post Post, content string) *Comment {
	now := time.Now()
	return &Comment{
		PostID:    post.ID,
		UserID:    user.ID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
		User:      &user,
		Children:  []*Comment{},
	}
}

// NewReply creates a reply below the given parent comment.
// The parent must be a root comment of the same post. NewReply is the
// only way to obtain a comment with a non-zero ParentID, so a reply
// that owns children is unrepresentable.
func NewReply(user User, post Post, parent *Comment, content string) (*Comment, error) {
	if parent.IsReply() {
		return nil, ErrReplyDepthExceeded
	}
	if parent.PostID != post.ID {
		return nil, ErrParentPostMismatch
	}

	c := NewComment(user, post, content)
	c.ParentID = parent.ID
	return c, nil
}

// IsReply reports whether the comment sits one level below a root
// comment. ParentID is the only depth signal.
func (c *Comment) IsReply() bool {
	return c.ParentID != 0
}

// IsAuthor reports whether the given email identifies the comment's author.
func (c *Comment) IsAuthor(email string) bool {
	return c.User != nil && c.User.Email == email
}

// Edit replaces the comment content and touches the updated timestamp.
// It is the only legal mutation of a persisted comment; the author
// reference never changes.
func (c *Comment) Edit(content string) {
	c.Content = content
	c.UpdatedAt = time.Now()
}

// CommentUsecase is the business logic contract of the comment domain
// service. The caller email is the authenticated identity supplied by
// the delivery layer.
type CommentUsecase interface {
	// GetComments returns the post's root comments in insertion order,
	// each carrying its replies and author information.
	// Returns ErrNotFound if the post doesn't exist.
	GetComments(ctx context.Context, postID int64) ([]*Comment, error)

	// Create persists a new comment, or a reply when parentID != 0.
	// Returns ErrNotFound if the caller, the post or the parent doesn't
	// exist, ErrReplyDepthExceeded when replying to a reply, and
	// ErrParentPostMismatch when the parent belongs to another post.
	Create(ctx context.Context, postID int64, content string, parentID int64, callerEmail string) (*Comment, error)

	// Update edits the comment content. A comment living under a
	// different post than claimed is reported as ErrNotFound.
	// Returns ErrForbidden if the caller is not the author.
	Update(ctx context.Context, postID, commentID int64, content string, callerEmail string) (*Comment, error)

	// Delete removes the comment. Resolution and authorization rules
	// are identical to Update.
	Delete(ctx context.Context, postID, commentID int64, callerEmail string) error
}

// CommentRepository is the coordination-layer contract the comment
// service reads and writes through.
type CommentRepository interface {
	// GetByID retrieves a comment with its author filled in.
	// Returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// FetchRootsWithChildren retrieves the post's root comments in
	// insertion order, each carrying its already-resolved replies.
	FetchRootsWithChildren(ctx context.Context, postID int64) ([]*Comment, error)

	// Store persists a new comment and backfills its ID.
	Store(ctx context.Context, c *Comment) error

	// Update persists the comment's content and updated timestamp.
	Update(ctx context.Context, c *Comment) error

	// Delete removes the comment, and its replies when it is a root.
	Delete(ctx context.Context, c *Comment) error
}

// CommentDBRepository is the database half behind the coordination layer.
type CommentDBRepository interface {
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// FetchRoots retrieves the post's root comments in insertion order.
	FetchRoots(ctx context.Context, postID int64) ([]*Comment, error)
	// FetchReplies retrieves all replies of the given root comment IDs.
	FetchReplies(ctx context.Context, parentIDs []int64) ([]*Comment, error)
	Store(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, c *Comment) error
}

// CommentCache caches the assembled comment tree of a post.
type CommentCache interface {
	// GetTree returns the cached tree of the post.
	// Returns ErrCacheMiss if the key is not cached.
	GetTree(ctx context.Context, postID int64) ([]*Comment, error)
	SetTree(ctx context.Context, postID int64, tree []*Comment) error
	DeleteTree(ctx context.Context, postID int64) error
}
