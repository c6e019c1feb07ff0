package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/likelion/vlog/domain"
)

// commentRepository coordinates the comment-tree cache and the database.
// Reads are cache-first; every mutation writes the database and then
// drops the post's cached tree.
type commentRepository struct {
	db        domain.CommentDBRepository
	cache     domain.CommentCache
	userRepo  domain.UserRepository
	loadGroup singleflight.Group
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db domain.CommentDBRepository, cache domain.CommentCache, userRepo domain.UserRepository) *commentRepository {
	return &commentRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
	}
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	c, err := r.db.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author, err := r.userRepo.GetByID(ctx, c.UserID)
	if err != nil {
		return nil, err
	}
	c.User = &author
	return c, nil
}

func (r *commentRepository) FetchRootsWithChildren(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	tree, err := r.cache.GetTree(ctx, postID)
	if err == nil {
		return tree, nil
	}
	if err != domain.ErrCacheMiss {
		logrus.Warnf("comment cache get error for post %d: %v", postID, err)
	}

	// singleflight collapses concurrent misses into one database load
	key := fmt.Sprintf("comments:post:%d", postID)
	result, err, _ := r.loadGroup.Do(key, func() (interface{}, error) {
		tree, err := r.loadTree(ctx, postID)
		if err != nil {
			return nil, err
		}

		go func(tree []*domain.Comment) {
			if err := r.cache.SetTree(context.Background(), postID, tree); err != nil {
				logrus.Warnf("failed to cache comment tree for post %d: %v", postID, err)
			}
		}(tree)

		return tree, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*domain.Comment), nil
}

func (r *commentRepository) loadTree(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	roots, err := r.db.FetchRoots(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return []*domain.Comment{}, nil
	}

	rootIDs := make([]int64, len(roots))
	for i, c := range roots {
		rootIDs[i] = c.ID
	}

	replies, err := r.db.FetchReplies(ctx, rootIDs)
	if err != nil {
		return nil, err
	}

	replyMap := make(map[int64][]*domain.Comment)
	for _, c := range replies {
		replyMap[c.ParentID] = append(replyMap[c.ParentID], c)
	}
	for _, root := range roots {
		if list, ok := replyMap[root.ID]; ok {
			root.Children = list
		} else {
			root.Children = []*domain.Comment{}
		}
	}

	if err := r.fillUserDetails(ctx, roots); err != nil {
		return nil, err
	}
	return roots, nil
}

// fillUserDetails resolves the author of every comment in the tree,
// fetching each distinct user concurrently.
func (r *commentRepository) fillUserDetails(ctx context.Context, roots []*domain.Comment) error {
	mapUsers := map[int64]domain.User{}
	for _, root := range roots {
		mapUsers[root.UserID] = domain.User{}
		for _, child := range root.Children {
			mapUsers[child.UserID] = domain.User{}
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	chanUser := make(chan domain.User)
	for userID := range mapUsers {
		g.Go(func() error {
			res, err := r.userRepo.GetByID(ctx, userID)
			if err != nil {
				return err
			}
			chanUser <- res
			return nil
		})
	}

	go func() {
		defer close(chanUser)
		if err := g.Wait(); err != nil {
			logrus.Error(err)
		}
	}()

	for user := range chanUser {
		mapUsers[user.ID] = user
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, root := range roots {
		if u, ok := mapUsers[root.UserID]; ok {
			root.User = &u
		}
		for _, child := range root.Children {
			if u, ok := mapUsers[child.UserID]; ok {
				child.User = &u
			}
		}
	}
	return nil
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Store(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.PostID)
	return nil
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.PostID)
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Delete(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.PostID)
	return nil
}

func (r *commentRepository) invalidate(ctx context.Context, postID int64) {
	if err := r.cache.DeleteTree(ctx, postID); err != nil {
		logrus.Warnf("failed to drop comment tree cache for post %d: %v", postID, err)
	}
}
