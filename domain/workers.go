package domain

import "context"

type CountAction int8

const (
	Increment = 1
	Decrement = -1
)

func (a CountAction) String() string {
	switch a {
	case Increment:
		return "INCR"
	case Decrement:
		return "DECR"
	default:
		return "UNKNOWN"
	}
}

// SyncCommentsWorker batches comment-count deltas and flushes them to
// the posts table in the background.
type SyncCommentsWorker interface {
	Start(ctx context.Context)

	// Send records a +1 for the post if action == Increment, and a -1
	// if action == Decrement
	Send(postID int64, action CountAction)
}
