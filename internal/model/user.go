package model

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
}

type InsertUser struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
	}
}
