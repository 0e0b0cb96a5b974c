package models

type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

func (u *User) Copy() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
