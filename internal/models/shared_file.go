package models

import "time"

// SharedFile is a pointer to an existing UserFile made visible to a friend,
// not a copy. SharedFileName snapshots the file name at share time; the
// snapshot stays authoritative for display even if the original is renamed.
// Deleting the original file deletes its shares.
type SharedFile struct {
	ID             uint   `gorm:"primaryKey"`
	SenderID       uint   `gorm:"not null;index"`
	RecipientID    uint   `gorm:"not null;index"`
	OriginalFileID uint   `gorm:"not null;index"`
	SharedFileName string `gorm:"size:255;not null"`
	Description    string
	SharedAt       time.Time
	IsRead         bool `gorm:"not null;default:false"`
	ReadAt         *time.Time

	Sender       User     `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Recipient    User     `gorm:"foreignKey:RecipientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	OriginalFile UserFile `gorm:"foreignKey:OriginalFileID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
