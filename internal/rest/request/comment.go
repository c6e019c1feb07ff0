package request

// CommentCreate is the body for creating a comment or a reply.
// notblank rejects content that is empty after trimming whitespace,
// before the domain service is reached.
type CommentCreate struct {
	Content  string `json:"content" binding:"required,notblank"`
	ParentID int64  `json:"parent_id"`
}

// CommentUpdate is the body for editing a comment.
type CommentUpdate struct {
	Content string `json:"content" binding:"required,notblank"`
}
