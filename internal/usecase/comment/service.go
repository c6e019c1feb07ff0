package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/likelion/vlog/domain"
)

// service enforces the comment business rules: one level of nesting,
// parent/post consistency and ownership-based authorization.
type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
	countWorker domain.SyncCommentsWorker
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	postRepo domain.PostRepository,
	userRepo domain.UserRepository,
	bloomRepo domain.BloomRepository,
	countWorker domain.SyncCommentsWorker,
) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
		countWorker: countWorker,
	}
}

// mustExists rejects post IDs the bloom filter rules out, before any
// database round trip. Bloom errors are ignored: the repository lookup
// that follows is the source of truth.
func (s *service) mustExists(ctx context.Context, postID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, postID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", postID)
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) resolvePost(ctx context.Context, postID int64) (domain.Post, error) {
	if err := s.mustExists(ctx, postID); err != nil {
		return domain.Post{}, err
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return domain.Post{}, domain.ErrNotFound
	}
	return post, nil
}

// resolveOwned looks up a comment claimed to live under postID and to
// belong to callerEmail. A comment that exists under a different post
// is reported as not found, so callers cannot probe foreign comment IDs.
func (s *service) resolveOwned(ctx context.Context, postID, commentID int64, callerEmail string) (*domain.Comment, error) {
	if _, err := s.resolvePost(ctx, postID); err != nil {
		return nil, err
	}

	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if c.PostID != postID {
		return nil, domain.ErrNotFound
	}
	if !c.IsAuthor(callerEmail) {
		return nil, domain.ErrForbidden
	}
	return c, nil
}

func (s *service) GetComments(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	if _, err := s.resolvePost(ctx, postID); err != nil {
		return nil, err
	}

	res, err := s.commentRepo.FetchRootsWithChildren(ctx, postID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []*domain.Comment{}
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, postID int64, content string, parentID int64, callerEmail string) (*domain.Comment, error) {
	user, err := s.userRepo.GetByEmail(ctx, callerEmail)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	post, err := s.resolvePost(ctx, postID)
	if err != nil {
		return nil, err
	}

	var c *domain.Comment
	if parentID != 0 {
		parent, err := s.commentRepo.GetByID(ctx, parentID)
		if err != nil {
			return nil, domain.ErrNotFound
		}
		c, err = domain.NewReply(user, post, parent, content)
		if err != nil {
			return nil, err
		}
	} else {
		c = domain.NewComment(user, post, content)
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		logrus.Errorf("failed to store comment for post %d: %v", postID, err)
		return nil, err
	}

	s.countWorker.Send(postID, domain.Increment)
	return c, nil
}

func (s *service) Update(ctx context.Context, postID, commentID int64, content string, callerEmail string) (*domain.Comment, error) {
	c, err := s.resolveOwned(ctx, postID, commentID, callerEmail)
	if err != nil {
		return nil, err
	}

	c.Edit(content)
	if err := s.commentRepo.Update(ctx, c); err != nil {
		logrus.Errorf("failed to update comment %d: %v", commentID, err)
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, postID, commentID int64, callerEmail string) error {
	c, err := s.resolveOwned(ctx, postID, commentID, callerEmail)
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, c); err != nil {
		logrus.Errorf("failed to delete comment %d: %v", commentID, err)
		return err
	}

	s.countWorker.Send(postID, domain.Decrement)
	return nil
}
