package response

import (
	"blogapi/internal/core/domain/user"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Name = string(du.Name)
	u.Email = string(du.Email)
	u.CreatedAt = du.CreatedAt
}
