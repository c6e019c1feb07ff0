package workers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/likelion/vlog/domain"
	"github.com/likelion/vlog/domain/mocks"
	"github.com/likelion/vlog/internal/workers"
)

func TestSyncCommentsWorkerAggregatesDeltas(t *testing.T) {
	repo := new(mocks.PostRepository)
	flushed := make(chan map[int64]int64, 1)
	repo.On("ApplyCommentCountChanges", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			select {
			case flushed <- args.Get(1).(map[int64]int64):
			default:
			}
		}).Return(nil)

	w := workers.NewSyncCommentsWorker(repo)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	w.Send(1, domain.Increment)
	w.Send(1, domain.Increment)
	w.Send(1, domain.Decrement)
	w.Send(2, domain.Decrement)

	select {
	case deltas := <-flushed:
		assert.Equal(t, map[int64]int64{1: 1, 2: -1}, deltas)
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not flush within the ticker interval")
	}
}

func TestSyncCommentsWorkerFlushesOnShutdown(t *testing.T) {
	repo := new(mocks.PostRepository)
	flushed := make(chan map[int64]int64, 1)
	repo.On("ApplyCommentCountChanges", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			select {
			case flushed <- args.Get(1).(map[int64]int64):
			default:
			}
		}).Return(nil)

	w := workers.NewSyncCommentsWorker(repo)
	ctx, cancel := context.WithCancel(context.Background())
	go w.Start(ctx)

	w.Send(7, domain.Increment)
	// give the worker a moment to pull the task into its batch
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case deltas := <-flushed:
		assert.Equal(t, map[int64]int64{7: 1}, deltas)
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not flush on shutdown")
	}
}
