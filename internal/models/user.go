package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User has at least one way to authenticate: a password hash, a Google
// subject id, or both.
type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash *string   `db:"password" json:"-"`
	GoogleID     *string   `db:"google_id" json:"google_id,omitempty"`
	Name         string    `db:"name" json:"name"`
	ProfileImage *string   `db:"profile_image" json:"profile_image"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
