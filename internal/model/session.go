package model

import "time"

// Session associates an opaque token with a user id until it expires.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}
