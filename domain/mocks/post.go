package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/likelion/vlog/domain"
)

// PostRepository is a mock type for domain.PostRepository
type PostRepository struct {
	mock.Mock
}

var _ domain.PostRepository = (*PostRepository)(nil)

func (m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostRepository) Store(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	if ids, ok := args.Get(0).([]int64); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PostRepository) ApplyCommentCountChanges(ctx context.Context, deltas map[int64]int64) error {
	args := m.Called(ctx, deltas)
	return args.Error(0)
}

// BloomRepository is a mock type for domain.BloomRepository
type BloomRepository struct {
	mock.Mock
}

var _ domain.BloomRepository = (*BloomRepository)(nil)

func (m *BloomRepository) Add(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// SyncCommentsWorker is a mock type for domain.SyncCommentsWorker
type SyncCommentsWorker struct {
	mock.Mock
}

var _ domain.SyncCommentsWorker = (*SyncCommentsWorker)(nil)

func (m *SyncCommentsWorker) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *SyncCommentsWorker) Send(postID int64, action domain.CountAction) {
	m.Called(postID, action)
}
