package models

import "time"

// UserFile records an uploaded document. FileName is the name the user
// uploaded under; StoredPath is the on-disk name, which is never exposed.
type UserFile struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	FileName    string `gorm:"size:255;not null"`
	StoredPath  string `gorm:"size:512;not null"`
	ContentType string `gorm:"size:100;not null"`
	FileSize    int64
	UploadedAt  time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
