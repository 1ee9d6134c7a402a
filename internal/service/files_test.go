package service

import (
	"context"
	"testing"

	"studyhub/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOwnedScopesByOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewFileService(db)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	file := createFile(t, db, alice.ID, "notes.pdf")

	got, err := svc.GetOwned(ctx, file.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", got.FileName)

	_, err = svc.GetOwned(ctx, file.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetOwned(ctx, file.ID+999, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAccessibleIncludesReceivedShares(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewFileService(db)
	sharing := NewSharingService(db, relationships, svc)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	makeFriends(t, relationships, alice.ID, bob.ID)
	file := createFile(t, db, alice.ID, "notes.pdf")

	// The owner always has access.
	got, err := svc.GetAccessible(ctx, file.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, file.ID, got.ID)

	// No share yet.
	_, err = svc.GetAccessible(ctx, file.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = sharing.Share(ctx, alice.ID, bob.ID, file.ID, "")
	require.NoError(t, err)

	got, err = svc.GetAccessible(ctx, file.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", got.FileName)

	// The share grants access to its recipient only.
	_, err = svc.GetAccessible(ctx, file.ID, carol.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCascadesShares(t *testing.T) {
	db := newTestDB(t)
	relationships := NewRelationshipService(db)
	svc := NewFileService(db)
	sharing := NewSharingService(db, relationships, svc)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	makeFriends(t, relationships, alice.ID, bob.ID)
	file := createFile(t, db, alice.ID, "notes.pdf")
	keeper := createFile(t, db, alice.ID, "keep.pdf")

	_, err := sharing.Share(ctx, alice.ID, bob.ID, file.ID, "")
	require.NoError(t, err)
	_, err = sharing.Share(ctx, alice.ID, bob.ID, keeper.ID, "")
	require.NoError(t, err)

	// Only the owner can delete.
	_, err = svc.Delete(ctx, bob.ID, file.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	storedPath, err := svc.Delete(ctx, alice.ID, file.ID)
	require.NoError(t, err)
	assert.Equal(t, file.StoredPath, storedPath)

	var fileCount int64
	require.NoError(t, db.Model(&models.UserFile{}).Count(&fileCount).Error)
	assert.EqualValues(t, 1, fileCount)

	// Shares of the deleted file go with it; the other share survives.
	var shares []models.SharedFile
	require.NoError(t, db.Find(&shares).Error)
	require.Len(t, shares, 1)
	assert.Equal(t, keeper.ID, shares[0].OriginalFileID)
}
