package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the caller is not allowed to touch the item
	ErrForbidden = errors.New("you are not the author of this comment")
	// ErrCacheMiss will throw if the requested key is not in the cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrReplyDepthExceeded will throw when replying to a comment that is itself a reply
	ErrReplyDepthExceeded = errors.New("replying to a reply is not allowed")
	// ErrParentPostMismatch will throw when the parent comment belongs to a different post
	ErrParentPostMismatch = errors.New("parent comment belongs to a different post")
)
