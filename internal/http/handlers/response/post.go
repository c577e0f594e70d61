package response

import (
	"blogapi/internal/core/domain/post"
	"time"
)

type Post struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (p *Post) FromDomainPost(dp post.Post) {
	p.ID = int64(dp.ID)
	p.UserID = int64(dp.AuthorID)
	p.Title = string(dp.Title)
	p.Content = string(dp.Content)
	p.CreatedAt = dp.CreatedAt
	if dp.UpdatedAt.IsPresent {
		p.UpdatedAt = &dp.UpdatedAt.Value
	}
}
