package model

import "time"

// User is a registered account. Accounts are provisioned out-of-band;
// there is no self-registration endpoint.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName keeps the singular table name of the existing schema.
func (User) TableName() string {
	return "user"
}
