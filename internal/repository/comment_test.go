package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/likelion/vlog/domain"
	"github.com/likelion/vlog/domain/mocks"
	"github.com/likelion/vlog/internal/repository"
)

func TestFetchRootsWithChildren_CacheHit(t *testing.T) {
	db := new(mocks.CommentDBRepository)
	cache := new(mocks.CommentCache)
	userRepo := new(mocks.UserRepository)

	cached := []*domain.Comment{{ID: 1, PostID: 1, Content: "cached"}}
	cache.On("GetTree", mock.Anything, int64(1)).Return(cached, nil)

	repo := repository.NewCommentRepository(db, cache, userRepo)
	res, err := repo.FetchRootsWithChildren(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, cached, res)
	db.AssertNotCalled(t, "FetchRoots", mock.Anything, mock.Anything)
}

func TestFetchRootsWithChildren_CacheMiss(t *testing.T) {
	db := new(mocks.CommentDBRepository)
	cache := new(mocks.CommentCache)
	userRepo := new(mocks.UserRepository)

	now := time.Now()
	roots := []*domain.Comment{
		{ID: 1, PostID: 1, UserID: 1, Content: "root", CreatedAt: now},
	}
	replies := []*domain.Comment{
		{ID: 2, PostID: 1, UserID: 2, ParentID: 1, Content: "reply", CreatedAt: now},
	}

	cache.On("GetTree", mock.Anything, int64(1)).Return(nil, domain.ErrCacheMiss)
	cache.On("SetTree", mock.Anything, int64(1), mock.Anything).Return(nil).Maybe()
	db.On("FetchRoots", mock.Anything, int64(1)).Return(roots, nil)
	db.On("FetchReplies", mock.Anything, []int64{1}).Return(replies, nil)
	userRepo.On("GetByID", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Email: "a@test.com", Nickname: "a"}, nil)
	userRepo.On("GetByID", mock.Anything, int64(2)).
		Return(domain.User{ID: 2, Email: "b@test.com", Nickname: "b"}, nil)

	repo := repository.NewCommentRepository(db, cache, userRepo)
	res, err := repo.FetchRootsWithChildren(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Len(t, res[0].Children, 1)
	require.NotNil(t, res[0].User)
	assert.Equal(t, "a", res[0].User.Nickname)
	require.NotNil(t, res[0].Children[0].User)
	assert.Equal(t, "b", res[0].Children[0].User.Nickname)
}

func TestFetchRootsWithChildren_EmptyPost(t *testing.T) {
	db := new(mocks.CommentDBRepository)
	cache := new(mocks.CommentCache)
	userRepo := new(mocks.UserRepository)

	cache.On("GetTree", mock.Anything, int64(1)).Return(nil, domain.ErrCacheMiss)
	cache.On("SetTree", mock.Anything, int64(1), mock.Anything).Return(nil).Maybe()
	db.On("FetchRoots", mock.Anything, int64(1)).Return([]*domain.Comment{}, nil)

	repo := repository.NewCommentRepository(db, cache, userRepo)
	res, err := repo.FetchRootsWithChildren(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
	db.AssertNotCalled(t, "FetchReplies", mock.Anything, mock.Anything)
}

func TestGetByID_FillsAuthor(t *testing.T) {
	db := new(mocks.CommentDBRepository)
	cache := new(mocks.CommentCache)
	userRepo := new(mocks.UserRepository)

	db.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Comment{ID: 1, PostID: 1, UserID: 7, Content: "hi"}, nil)
	userRepo.On("GetByID", mock.Anything, int64(7)).
		Return(domain.User{ID: 7, Email: "x@test.com", Nickname: "x"}, nil)

	repo := repository.NewCommentRepository(db, cache, userRepo)
	c, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, c.User)
	assert.Equal(t, "x@test.com", c.User.Email)
}

func TestMutationsInvalidateCache(t *testing.T) {
	c := &domain.Comment{ID: 1, PostID: 42, UserID: 1, Content: "hi"}

	calls := []struct {
		name string
		op   func(repo domain.CommentRepository) error
	}{
		{"Store", func(repo domain.CommentRepository) error { return repo.Store(context.Background(), c) }},
		{"Update", func(repo domain.CommentRepository) error { return repo.Update(context.Background(), c) }},
		{"Delete", func(repo domain.CommentRepository) error { return repo.Delete(context.Background(), c) }},
	}

	for _, tc := range calls {
		t.Run(tc.name, func(t *testing.T) {
			db := new(mocks.CommentDBRepository)
			cache := new(mocks.CommentCache)
			userRepo := new(mocks.UserRepository)

			db.On(tc.name, mock.Anything, c).Return(nil)
			cache.On("DeleteTree", mock.Anything, int64(42)).Return(nil)

			repo := repository.NewCommentRepository(db, cache, userRepo)
			require.NoError(t, tc.op(repo))

			db.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestStoreFailureKeepsCache(t *testing.T) {
	db := new(mocks.CommentDBRepository)
	cache := new(mocks.CommentCache)
	userRepo := new(mocks.UserRepository)

	c := &domain.Comment{ID: 1, PostID: 42}
	db.On("Store", mock.Anything, c).Return(domain.ErrInternalServerError)

	repo := repository.NewCommentRepository(db, cache, userRepo)
	err := repo.Store(context.Background(), c)

	assert.ErrorIs(t, err, domain.ErrInternalServerError)
	cache.AssertNotCalled(t, "DeleteTree", mock.Anything, mock.Anything)
}
