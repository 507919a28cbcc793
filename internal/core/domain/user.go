package domain

import "time"

// User models a registered account. PasswordHash is excluded from JSON so a
// credential digest can never leak through a response body.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Sanitized returns a copy with the credential digest cleared. Repositories
// project the digest out on default reads; this covers the paths that had to
// load it (login, password change) before handing the user back to a caller.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
