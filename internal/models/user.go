package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account.
type User struct {
	gorm.Model
	FullName     string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	DateOfBirth  *time.Time
	Role         string `gorm:"size:50;not null;default:'student';index"`
}
