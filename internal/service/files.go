package service

import (
	"context"
	"errors"
	"time"

	"studyhub/backend/internal/models"

	"gorm.io/gorm"
)

// FileService owns the uploaded-file registry. Disk IO stays in the handler
// layer; this service only manages the records and the ownership rules.
type FileService struct {
	db *gorm.DB
}

// NewFileService creates a new FileService.
func NewFileService(db *gorm.DB) *FileService {
	return &FileService{db: db}
}

// Create records a newly stored upload.
func (s *FileService) Create(ctx context.Context, file *models.UserFile) error {
	file.UploadedAt = time.Now().UTC()
	return s.db.WithContext(ctx).Create(file).Error
}

// GetOwned returns the file only if it exists and belongs to the owner.
func (s *FileService) GetOwned(ctx context.Context, fileID, ownerID uint) (*models.UserFile, error) {
	var file models.UserFile
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", fileID, ownerID).First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// GetAccessible returns the file if the user owns it or has received a share
// of it. Used for downloads.
func (s *FileService) GetAccessible(ctx context.Context, fileID, userID uint) (*models.UserFile, error) {
	file, err := s.GetOwned(ctx, fileID, userID)
	if err == nil {
		return file, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var shared int64
	err = s.db.WithContext(ctx).Model(&models.SharedFile{}).
		Where("original_file_id = ? AND recipient_id = ?", fileID, userID).
		Count(&shared).Error
	if err != nil {
		return nil, err
	}
	if shared == 0 {
		return nil, ErrNotFound
	}

	var result models.UserFile
	if err := s.db.WithContext(ctx).First(&result, fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// Delete removes an owned file record along with every share of it (shares
// are owned by the file, not by the relationship). Returns the stored path so
// the caller can remove the bytes from disk afterwards.
func (s *FileService) Delete(ctx context.Context, userID, fileID uint) (string, error) {
	file, err := s.GetOwned(ctx, fileID, userID)
	if err != nil {
		return "", err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("original_file_id = ?", fileID).Delete(&models.SharedFile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.UserFile{}, fileID).Error
	})
	if err != nil {
		return "", err
	}
	return file.StoredPath, nil
}
