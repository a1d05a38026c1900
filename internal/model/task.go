package model

import "time"

// Task is a single to-do item. Every task belongs to exactly one user and
// is never visible to, or mutable by, anyone else.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index" json:"userId"`
	Description string     `json:"description"`
	Project     string     `json:"project,omitempty"`
	Important   bool       `json:"important"`
	Private     bool       `json:"privateTask"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}
