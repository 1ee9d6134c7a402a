package service

import (
	"context"
	"testing"
	"time"

	"studyhub/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareFileRules(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewSharingService(db, relationships, NewFileService(db))
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	file := createFile(t, db, alice.ID, "notes.pdf")

	_, err := svc.Share(ctx, alice.ID, 0, file.ID, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Share(ctx, alice.ID, bob.ID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Share(ctx, alice.ID, alice.ID, file.ID, "")
	assert.ErrorIs(t, err, ErrSelfReference)

	// The ownership check comes before the friendship check.
	bobsFile := createFile(t, db, bob.ID, "bobs.pdf")
	_, err = svc.Share(ctx, alice.ID, bob.ID, bobsFile.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Share(ctx, alice.ID, bob.ID, file.ID, "")
	assert.ErrorIs(t, err, ErrNotFriends)

	makeFriends(t, relationships, alice.ID, bob.ID)

	sharedID, err := svc.Share(ctx, alice.ID, bob.ID, file.ID, "for class")
	require.NoError(t, err)

	var shared models.SharedFile
	require.NoError(t, db.First(&shared, sharedID).Error)
	assert.Equal(t, "notes.pdf", shared.SharedFileName)
	assert.Equal(t, "for class", shared.Description)
	assert.False(t, shared.IsRead)
}

func TestShareFileNotOwnedReadsAsNotFoundEvenIfItExists(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewSharingService(db, relationships, NewFileService(db))
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	makeFriends(t, relationships, alice.ID, bob.ID)

	carolsFile := createFile(t, db, carol.ID, "carols.pdf")

	_, err := svc.Share(ctx, alice.ID, bob.ID, carolsFile.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSharedListingsSnapshotAndOrdering(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewSharingService(db, relationships, NewFileService(db))
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	makeFriends(t, relationships, alice.ID, bob.ID)

	first := createFile(t, db, alice.ID, "first.pdf")
	second := createFile(t, db, alice.ID, "second.pdf")

	firstShareID, err := svc.Share(ctx, alice.ID, bob.ID, first.ID, "")
	require.NoError(t, err)
	secondShareID, err := svc.Share(ctx, alice.ID, bob.ID, second.ID, "")
	require.NoError(t, err)

	// Force distinct timestamps so the descending order is deterministic.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.SharedFile{}).Where("id = ?", firstShareID).Update("shared_at", base).Error)
	require.NoError(t, db.Model(&models.SharedFile{}).Where("id = ?", secondShareID).Update("shared_at", base.Add(time.Minute)).Error)

	// Renaming the original after sharing must not rewrite the snapshot.
	require.NoError(t, db.Model(&models.UserFile{}).Where("id = ?", first.ID).Update("file_name", "renamed.pdf").Error)

	withMe, err := svc.ListSharedWithMe(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, withMe, 2)
	assert.Equal(t, secondShareID, withMe[0].ID)
	assert.Equal(t, firstShareID, withMe[1].ID)
	assert.Equal(t, "alice", withMe[0].UserName)
	assert.Equal(t, "first.pdf", withMe[1].FileName, "snapshot is authoritative for display")
	assert.Equal(t, "renamed.pdf", withMe[1].OriginalFileName)

	byMe, err := svc.ListSharedByMe(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, byMe, 2)
	assert.Equal(t, bob.ID, byMe[0].UserID)
	assert.Equal(t, "bob", byMe[0].UserName)

	// The recipient sees nothing under "by me" and vice versa.
	empty, err := svc.ListSharedByMe(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSharedFileMarkRead(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewSharingService(db, relationships, NewFileService(db))
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	makeFriends(t, relationships, alice.ID, bob.ID)
	file := createFile(t, db, alice.ID, "notes.pdf")

	sharedID, err := svc.Share(ctx, alice.ID, bob.ID, file.ID, "")
	require.NoError(t, err)

	// The sender is not the recipient; the share reads as missing.
	assert.ErrorIs(t, svc.MarkRead(ctx, alice.ID, sharedID), ErrNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, bob.ID, sharedID+999), ErrNotFound)

	require.NoError(t, svc.MarkRead(ctx, bob.ID, sharedID))

	var shared models.SharedFile
	require.NoError(t, db.First(&shared, sharedID).Error)
	assert.True(t, shared.IsRead)
	require.NotNil(t, shared.ReadAt)
}
