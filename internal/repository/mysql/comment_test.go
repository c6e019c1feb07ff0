package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/likelion/vlog/domain"
	"github.com/likelion/vlog/internal/repository/mysql"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func commentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "post_id", "user_id", "content", "parent_id", "created_at", "updated_at"})
}

func TestCommentGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		now := time.Now()
		mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
			WillReturnRows(commentRows().AddRow(1, 1, 1, "a comment", 0, now, now))

		repo := mysql.NewCommentRepository(gormDB)
		c, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, "a comment", c.Content)
		assert.False(t, c.IsReply())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `comment` WHERE id = \\?").
			WillReturnRows(commentRows())

		repo := mysql.NewCommentRepository(gormDB)
		_, err := repo.GetByID(context.Background(), 999)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentFetchRoots(t *testing.T) {
	gormDB, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `comment` WHERE post_id = \\? AND parent_id = 0 ORDER BY created_at ASC, id ASC").
		WillReturnRows(commentRows().
			AddRow(1, 1, 1, "first", 0, now, now).
			AddRow(2, 1, 2, "second", 0, now.Add(time.Second), now.Add(time.Second)))

	repo := mysql.NewCommentRepository(gormDB)
	res, err := repo.FetchRoots(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, int64(2), res[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentFetchReplies(t *testing.T) {
	t.Run("no parents means no query", func(t *testing.T) {
		gormDB, mock := newMockDB(t)

		repo := mysql.NewCommentRepository(gormDB)
		res, err := repo.FetchReplies(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, res)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replies of two roots", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		now := time.Now()
		mock.ExpectQuery("SELECT \\* FROM `comment` WHERE parent_id IN \\(\\?,\\?\\) ORDER BY created_at ASC, id ASC").
			WillReturnRows(commentRows().
				AddRow(3, 1, 2, "reply a", 1, now, now).
				AddRow(4, 1, 1, "reply b", 2, now, now))

		repo := mysql.NewCommentRepository(gormDB)
		res, err := repo.FetchReplies(context.Background(), []int64{1, 2})

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, int64(1), res[0].ParentID)
		assert.Equal(t, int64(2), res[1].ParentID)
	})
}

func TestCommentStore(t *testing.T) {
	gormDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comment`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	user := domain.User{ID: 1, Email: "test@test.com"}
	c := domain.NewComment(user, domain.Post{ID: 1}, "new comment")

	repo := mysql.NewCommentRepository(gormDB)
	require.NoError(t, repo.Store(context.Background(), c))

	assert.Equal(t, int64(3), c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentUpdate(t *testing.T) {
	gormDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `comment` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c := &domain.Comment{ID: 1, PostID: 1, Content: "edited", UpdatedAt: time.Now()}

	repo := mysql.NewCommentRepository(gormDB)
	require.NoError(t, repo.Update(context.Background(), c))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDelete(t *testing.T) {
	t.Run("root delete removes replies too", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comment` WHERE id = \\? OR parent_id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		repo := mysql.NewCommentRepository(gormDB)
		err := repo.Delete(context.Background(), &domain.Comment{ID: 1, PostID: 1})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already gone", func(t *testing.T) {
		gormDB, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comment` WHERE id = \\? OR parent_id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		repo := mysql.NewCommentRepository(gormDB)
		err := repo.Delete(context.Background(), &domain.Comment{ID: 999, PostID: 1})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
