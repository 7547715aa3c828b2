package response

import (
	"onboarding/internal/core/domain/user"
	"time"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	EmailConfirmed bool      `json:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = string(du.ID)
	u.Email = string(du.Email)
	u.FirstName = du.FirstName
	u.LastName = du.LastName
	u.EmailConfirmed = du.EmailConfirmed
	u.CreatedAt = du.CreatedAt
}
