package models

import "time"

// Message represents a direct message between two friends. Immutable after
// creation except for the read flag.
type Message struct {
	ID          uint   `gorm:"primaryKey"`
	SenderID    uint   `gorm:"not null;index"`
	RecipientID uint   `gorm:"not null;index"`
	Content     string `gorm:"not null"`
	SentAt      time.Time
	IsRead      bool `gorm:"not null;default:false"`
	ReadAt      *time.Time

	Sender    User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Recipient User `gorm:"foreignKey:RecipientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
