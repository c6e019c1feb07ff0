package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/likelion/vlog/domain"
)

const (
	KeyCommentTree = "comments:post:%d"

	commentTreeTTL = 10 * time.Minute
)

type commentCache struct {
	client *redis.Client
}

var _ domain.CommentCache = (*commentCache)(nil)

func NewCommentCache(client *redis.Client) *commentCache {
	return &commentCache{
		client,
	}
}

func (c *commentCache) GetTree(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	key := fmt.Sprintf(KeyCommentTree, postID)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var tree []*domain.Comment
	if err = json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func (c *commentCache) SetTree(ctx context.Context, postID int64, tree []*domain.Comment) error {
	key := fmt.Sprintf(KeyCommentTree, postID)
	data, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, commentTreeTTL).Err()
}

func (c *commentCache) DeleteTree(ctx context.Context, postID int64) error {
	key := fmt.Sprintf(KeyCommentTree, postID)
	return c.client.Del(ctx, key).Err()
}
