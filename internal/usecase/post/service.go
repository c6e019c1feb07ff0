package post

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/likelion/vlog/domain"
)

const bloomInitBatchSize = 1000

type service struct {
	postRepo  domain.PostRepository
	userRepo  domain.UserRepository
	bloomRepo domain.BloomRepository
}

var _ domain.PostUsecase = (*service)(nil)

func NewService(postRepo domain.PostRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		postRepo:  postRepo,
		userRepo:  userRepo,
		bloomRepo: bloomRepo,
	}
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	res, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	owner, err := s.userRepo.GetByID(ctx, res.User.ID)
	if err != nil {
		return domain.Post{}, err
	}
	res.User = owner
	return res, nil
}

func (s *service) Store(ctx context.Context, p *domain.Post) error {
	if err := s.postRepo.Store(ctx, p); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, p.ID); err != nil {
		logrus.Warnf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	return nil
}

// InitBloomFilter seeds the filter with every existing post ID so the
// comment service can reject unknown posts without a database read.
func (s *service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := s.postRepo.FetchIDs(ctx, cursor, bloomInitBatchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
