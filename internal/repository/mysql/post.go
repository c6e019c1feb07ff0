package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/likelion/vlog/domain"
	"github.com/likelion/vlog/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{
		DB: db,
	}
}

func (p *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var post model.Post
	err := p.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Post{}, domain.ErrNotFound
	} else if err != nil {
		return domain.Post{}, err
	}
	return post.ToDomain(), nil
}

func (p *postRepository) Store(ctx context.Context, post *domain.Post) error {
	postModel := model.NewPostFromDomain(post)
	if err := p.DB.WithContext(ctx).Create(postModel).Error; err != nil {
		return err
	}
	post.ID = postModel.ID
	return nil
}

func (p *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	var ids []int64
	err := p.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id > ?", cursor).
		Order("id ASC").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	return ids, err
}

func (p *postRepository) ApplyCommentCountChanges(ctx context.Context, deltas map[int64]int64) error {
	if len(deltas) == 0 {
		return nil
	}

	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, delta := range deltas {
			if delta == 0 {
				continue
			}
			err := tx.Model(&model.Post{}).Where("id = ?", id).
				Update("comments", gorm.Expr("comments + ?", delta)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
