package models

import "time"

// TokenTypePasswordReset is the only token kind stored in user_tokens today.
const TokenTypePasswordReset = "password_reset"

type UserToken struct {
	UserID    int64     `json:"user_id" db:"user_id" bson:"user_id"`
	Token     string    `json:"-" db:"token" bson:"token"`
	TokenType string    `json:"token_type" db:"token_type" bson:"token_type"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at" bson:"expires_at"`
}
