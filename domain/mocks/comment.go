package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/likelion/vlog/domain"
)

// CommentRepository is a mock type for domain.CommentRepository
type CommentRepository struct {
	mock.Mock
}

var _ domain.CommentRepository = (*CommentRepository)(nil)

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) FetchRootsWithChildren(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID)
	if res, ok := args.Get(0).([]*domain.Comment); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// CommentDBRepository is a mock type for domain.CommentDBRepository
type CommentDBRepository struct {
	mock.Mock
}

var _ domain.CommentDBRepository = (*CommentDBRepository)(nil)

func (m *CommentDBRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentDBRepository) FetchRoots(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID)
	if res, ok := args.Get(0).([]*domain.Comment); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentDBRepository) FetchReplies(ctx context.Context, parentIDs []int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, parentIDs)
	if res, ok := args.Get(0).([]*domain.Comment); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentDBRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentDBRepository) Update(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentDBRepository) Delete(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// CommentCache is a mock type for domain.CommentCache
type CommentCache struct {
	mock.Mock
}

var _ domain.CommentCache = (*CommentCache)(nil)

func (m *CommentCache) GetTree(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID)
	if res, ok := args.Get(0).([]*domain.Comment); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentCache) SetTree(ctx context.Context, postID int64, tree []*domain.Comment) error {
	args := m.Called(ctx, postID, tree)
	return args.Error(0)
}

func (m *CommentCache) DeleteTree(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// CommentUsecase is a mock type for domain.CommentUsecase
type CommentUsecase struct {
	mock.Mock
}

var _ domain.CommentUsecase = (*CommentUsecase)(nil)

func (m *CommentUsecase) GetComments(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, postID)
	if res, ok := args.Get(0).([]*domain.Comment); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentUsecase) Create(ctx context.Context, postID int64, content string, parentID int64, callerEmail string) (*domain.Comment, error) {
	args := m.Called(ctx, postID, content, parentID, callerEmail)
	if c, ok := args.Get(0).(*domain.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentUsecase) Update(ctx context.Context, postID, commentID int64, content string, callerEmail string) (*domain.Comment, error) {
	args := m.Called(ctx, postID, commentID, content, callerEmail)
	if c, ok := args.Get(0).(*domain.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CommentUsecase) Delete(ctx context.Context, postID, commentID int64, callerEmail string) error {
	args := m.Called(ctx, postID, commentID, callerEmail)
	return args.Error(0)
}
