package post

import (
	c "blogapi/internal/core/domain/common"
	"blogapi/internal/core/domain/user"
	"time"
)

type ID int64

type Title string

type Content string

type Post struct {
	ID        ID
	AuthorID  user.ID
	Title     Title
	Content   Content
	CreatedAt time.Time
	UpdatedAt c.Optional[time.Time]
}

func (p *Post) BelongsTo(userID user.ID) bool {
	return p.AuthorID == userID
}
