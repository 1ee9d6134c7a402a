package service

import (
	"context"
	"errors"
	"time"

	"studyhub/backend/internal/models"

	"gorm.io/gorm"
)

// SharingService lets users point friends at files they own. A share is an
// annotation on the original file, not a copy; shares die with the file.
type SharingService struct {
	db            *gorm.DB
	relationships *RelationshipService
	files         *FileService
}

// NewSharingService creates a new SharingService.
func NewSharingService(db *gorm.DB, relationships *RelationshipService, files *FileService) *SharingService {
	return &SharingService{db: db, relationships: relationships, files: files}
}

// SharedFileEntry is one entry of a shared-file listing. FileName is the
// name snapshot taken at share time and stays authoritative for display;
// OriginalFileName reflects the file's current name.
type SharedFileEntry struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"user_id"`
	UserName         string    `json:"user_name"`
	FileName         string    `json:"file_name"`
	Description      string    `json:"description,omitempty"`
	SharedAt         time.Time `json:"shared_at"`
	IsRead           bool      `json:"is_read"`
	OriginalFileID   uint      `json:"original_file_id"`
	OriginalFileName string    `json:"original_file_name"`
}

// Share makes one of the sender's own files visible to a friend, snapshotting
// the file's current name. The ownership check runs before the friendship
// check, so a file owned by someone else reads as not found either way.
func (s *SharingService) Share(ctx context.Context, senderID, recipientID, fileID uint, description string) (uint, error) {
	if recipientID == 0 || fileID == 0 {
		return 0, ErrInvalidInput
	}
	if senderID == recipientID {
		return 0, ErrSelfReference
	}

	file, err := s.files.GetOwned(ctx, fileID, senderID)
	if err != nil {
		return 0, err
	}

	friends, err := s.relationships.AreFriends(ctx, senderID, recipientID)
	if err != nil {
		return 0, err
	}
	if !friends {
		return 0, ErrNotFriends
	}

	var recipient models.User
	if err := s.db.WithContext(ctx).First(&recipient, recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	shared := models.SharedFile{
		SenderID:       senderID,
		RecipientID:    recipientID,
		OriginalFileID: fileID,
		SharedFileName: file.FileName,
		Description:    description,
		SharedAt:       time.Now().UTC(),
		IsRead:         false,
	}
	if err := s.db.WithContext(ctx).Create(&shared).Error; err != nil {
		return 0, err
	}
	return shared.ID, nil
}

// ListSharedWithMe returns files shared to the user, newest first. The
// counterpart in each entry is the sender.
func (s *SharingService) ListSharedWithMe(ctx context.Context, userID uint) ([]SharedFileEntry, error) {
	var rows []models.SharedFile
	err := s.db.WithContext(ctx).Preload("Sender").Preload("OriginalFile").
		Where("recipient_id = ?", userID).
		Order("shared_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]SharedFileEntry, 0, len(rows))
	for _, sf := range rows {
		entries = append(entries, SharedFileEntry{
			ID:               sf.ID,
			UserID:           sf.SenderID,
			UserName:         sf.Sender.FullName,
			FileName:         sf.SharedFileName,
			Description:      sf.Description,
			SharedAt:         sf.SharedAt,
			IsRead:           sf.IsRead,
			OriginalFileID:   sf.OriginalFileID,
			OriginalFileName: sf.OriginalFile.FileName,
		})
	}
	return entries, nil
}

// ListSharedByMe returns files the user has shared out, newest first. The
// counterpart in each entry is the recipient.
func (s *SharingService) ListSharedByMe(ctx context.Context, userID uint) ([]SharedFileEntry, error) {
	var rows []models.SharedFile
	err := s.db.WithContext(ctx).Preload("Recipient").Preload("OriginalFile").
		Where("sender_id = ?", userID).
		Order("shared_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]SharedFileEntry, 0, len(rows))
	for _, sf := range rows {
		entries = append(entries, SharedFileEntry{
			ID:               sf.ID,
			UserID:           sf.RecipientID,
			UserName:         sf.Recipient.FullName,
			FileName:         sf.SharedFileName,
			Description:      sf.Description,
			SharedAt:         sf.SharedAt,
			IsRead:           sf.IsRead,
			OriginalFileID:   sf.OriginalFileID,
			OriginalFileName: sf.OriginalFile.FileName,
		})
	}
	return entries, nil
}

// MarkRead flags a received share as read. A share that does not exist, or
// that belongs to another recipient, reads as not found.
func (s *SharingService) MarkRead(ctx context.Context, userID, sharedFileID uint) error {
	var shared models.SharedFile
	err := s.db.WithContext(ctx).Where("id = ? AND recipient_id = ?", sharedFileID, userID).First(&shared).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.db.WithContext(ctx).Model(&shared).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}
