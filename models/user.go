package models

import "time"

type User struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null" json:"-"` // bcrypt hash, never the plaintext
	CreatedAt time.Time
}
