package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int64      `json:"id" db:"id" bson:"id"`
	Email        string     `json:"email" db:"email" bson:"email"`
	PasswordHash string     `json:"-" db:"password_hash" bson:"password_hash"`
	FirstName    string     `json:"firstName" db:"first_name" bson:"first_name"`
	LastName     string     `json:"lastName" db:"last_name" bson:"last_name"`
	Role         string     `json:"role" db:"role" bson:"role"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" bson:"created_at"`
	LastLogin    *time.Time `json:"lastLogin,omitempty" db:"last_login" bson:"last_login,omitempty"`
}
