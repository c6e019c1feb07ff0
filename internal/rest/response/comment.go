package response

import (
	"github.com/samber/lo"

	"github.com/likelion/vlog/domain"
)

const DateTimeFormat = "2006-01-02 15:04:05"

// Author is the comment author view: identity and display name only.
type Author struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

type Comment struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	Author    Author     `json:"author"`
	Children  []*Comment `json:"children"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

func newSingleCommentFromDomain(c *domain.Comment) *Comment {
	res := &Comment{
		ID:        c.ID,
		Content:   c.Content,
		Children:  []*Comment{},
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: c.UpdatedAt.Format(DateTimeFormat),
	}
	if c.User != nil {
		res.Author = Author{
			ID:       c.User.ID,
			Nickname: c.User.Nickname,
		}
	}
	return res
}

// NewCommentFromDomain: Domain -> Response, one level of children deep
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := newSingleCommentFromDomain(c)
	if len(c.Children) > 0 {
		root.Children = lo.Map(c.Children, func(child *domain.Comment, _ int) *Comment {
			return newSingleCommentFromDomain(child)
		})
	}
	return root
}

// NewCommentListFromDomain maps a whole comment tree.
func NewCommentListFromDomain(list []*domain.Comment) []*Comment {
	return lo.Map(list, func(c *domain.Comment, _ int) *Comment {
		return NewCommentFromDomain(c)
	})
}
