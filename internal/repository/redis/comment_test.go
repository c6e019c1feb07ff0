package redis_test

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"hash/fnv"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/likelion/vlog/domain"
	redisRepo "github.com/likelion/vlog/internal/repository/redis"
)

func sampleTree() []*domain.Comment {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []*domain.Comment{
		{
			ID: 1, PostID: 1, UserID: 1, Content: "root",
			CreatedAt: now, UpdatedAt: now,
			User: &domain.User{ID: 1, Email: "a@test.com", Nickname: "a"},
			Children: []*domain.Comment{
				{
					ID: 2, PostID: 1, UserID: 2, ParentID: 1, Content: "reply",
					CreatedAt: now, UpdatedAt: now,
					User: &domain.User{ID: 2, Email: "b@test.com", Nickname: "b"},
				},
			},
		},
	}
}

func TestCommentCacheGetTree(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		tree := sampleTree()
		data, err := json.Marshal(tree)
		require.NoError(t, err)
		mock.ExpectGet(fmt.Sprintf(redisRepo.KeyCommentTree, int64(1))).SetVal(string(data))

		cache := redisRepo.NewCommentCache(client)
		res, err := cache.GetTree(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, int64(1), res[0].ID)
		require.Len(t, res[0].Children, 1)
		assert.Equal(t, "reply", res[0].Children[0].Content)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet(fmt.Sprintf(redisRepo.KeyCommentTree, int64(1))).RedisNil()

		cache := redisRepo.NewCommentCache(client)
		_, err := cache.GetTree(context.Background(), 1)

		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestCommentCacheSetTree(t *testing.T) {
	client, mock := redismock.NewClientMock()
	tree := sampleTree()
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	mock.ExpectSet(fmt.Sprintf(redisRepo.KeyCommentTree, int64(1)), data, 10*time.Minute).SetVal("OK")

	cache := redisRepo.NewCommentCache(client)
	require.NoError(t, cache.SetTree(context.Background(), 1, tree))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentCacheDeleteTree(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectDel(fmt.Sprintf(redisRepo.KeyCommentTree, int64(1))).SetVal(1)

	cache := redisRepo.NewCommentCache(client)
	require.NoError(t, cache.DeleteTree(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

const testBloomBitSize = 1 << 20

// bloomOffsets mirrors the repository's k=3 hashing
func bloomOffsets(id int64) []uint64 {
	data := fmt.Appendf(nil, "%d", id)
	offsets := make([]uint64, 3)
	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % testBloomBitSize
	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % testBloomBitSize
	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % testBloomBitSize
	return offsets
}

func TestBloomAddAndExists(t *testing.T) {
	t.Run("add sets all bits", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		for _, off := range bloomOffsets(42) {
			mock.ExpectSetBit(redisRepo.KeyPostBloom, int64(off), 1).SetVal(0)
		}

		repo := redisRepo.NewRedisBloomRepo(client, testBloomBitSize)
		require.NoError(t, repo.Add(context.Background(), 42))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exists when every bit is set", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		for _, off := range bloomOffsets(42) {
			mock.ExpectGetBit(redisRepo.KeyPostBloom, int64(off)).SetVal(1)
		}

		repo := redisRepo.NewRedisBloomRepo(client, testBloomBitSize)
		ok, err := repo.Exists(context.Background(), 42)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("definitely absent when a bit is clear", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		offsets := bloomOffsets(43)
		mock.ExpectGetBit(redisRepo.KeyPostBloom, int64(offsets[0])).SetVal(1)
		mock.ExpectGetBit(redisRepo.KeyPostBloom, int64(offsets[1])).SetVal(0)
		mock.ExpectGetBit(redisRepo.KeyPostBloom, int64(offsets[2])).SetVal(0)

		repo := redisRepo.NewRedisBloomRepo(client, testBloomBitSize)
		ok, err := repo.Exists(context.Background(), 43)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
