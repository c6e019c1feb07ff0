package response

import "github.com/likelion/vlog/domain"

type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	OwnerName string `json:"owner_name"`
	Comments  int64  `json:"comments"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		OwnerName: p.User.Nickname,
		Comments:  p.Comments,
		CreatedAt: p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: p.UpdatedAt.Format(DateTimeFormat),
	}
}
