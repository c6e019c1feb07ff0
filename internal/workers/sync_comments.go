package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/likelion/vlog/domain"
)

type CountTask struct {
	PostID int64
	Action domain.CountAction
}

// syncCommentsWorker accumulates comment-count deltas and flushes them
// to the posts table in batches.
type syncCommentsWorker struct {
	PostRepo domain.PostRepository
	ch       chan CountTask
}

var _ domain.SyncCommentsWorker = (*syncCommentsWorker)(nil)

func NewSyncCommentsWorker(pr domain.PostRepository) *syncCommentsWorker {
	return &syncCommentsWorker{
		PostRepo: pr,
		ch:       make(chan CountTask, 1024),
	}
}

// Send records a +1 for the post if action == Increment, and a -1 if
// action == Decrement. The task is dropped when the buffer is full.
func (s *syncCommentsWorker) Send(postID int64, action domain.CountAction) {
	select {
	case s.ch <- CountTask{postID, action}:
	default:
		logrus.Info("SyncCommentsWorker's channel is full, task dropped")
	}
}

func (s *syncCommentsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const batchSize = 100
	batch := make([]CountTask, 0, batchSize)
	for {
		select {
		case task := <-s.ch:
			batch = append(batch, task)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]CountTask, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]CountTask, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down SyncCommentsWorker, flushing remaining tasks...")
			s.flush(context.Background(), batch)
			return
		}
	}
}

func (s *syncCommentsWorker) flush(ctx context.Context, batch []CountTask) {
	if len(batch) == 0 {
		return
	}

	deltas := make(map[int64]int64)
	for i := range batch {
		switch batch[i].Action {
		case domain.Increment:
			deltas[batch[i].PostID]++
		case domain.Decrement:
			deltas[batch[i].PostID]--
		default:
			logrus.Errorf("unsupported action: %v", batch[i].Action)
		}
	}

	if err := s.PostRepo.ApplyCommentCountChanges(ctx, deltas); err != nil {
		logrus.Errorf("failed to flush comment count changes: %v", err)
	}
}
