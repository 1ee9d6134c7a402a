package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"studyhub/backend/internal/database"
	"studyhub/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database and runs the real migrations,
// including the partial unique index over the active pair, so the tests
// exercise the same constraints production runs against.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()

	user := models.User{
		FullName:     name,
		Email:        fmt.Sprintf("%s-%d@example.com", name, time.Now().UnixNano()),
		PasswordHash: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createFile(t *testing.T, db *gorm.DB, ownerID uint, fileName string) models.UserFile {
	t.Helper()

	file := models.UserFile{
		UserID:      ownerID,
		FileName:    fileName,
		StoredPath:  fmt.Sprintf("%d-%s", ownerID, fileName),
		ContentType: "application/octet-stream",
		FileSize:    42,
		UploadedAt:  time.Now().UTC(),
	}
	require.NoError(t, db.Create(&file).Error)
	return file
}

// makeFriends runs a full request/accept cycle between the two users.
func makeFriends(t *testing.T, svc *RelationshipService, requesterID, addresseeID uint) uint {
	t.Helper()

	ctx := context.Background()
	requestID, err := svc.SendRequest(ctx, requesterID, addresseeID)
	require.NoError(t, err)
	require.NoError(t, svc.Respond(ctx, addresseeID, requestID, true))
	return requestID
}

// insertMessage writes a message row directly with a controlled timestamp,
// bypassing the friendship gate, for ordering and summary tests.
func insertMessage(t *testing.T, db *gorm.DB, senderID, recipientID uint, content string, sentAt time.Time) models.Message {
	t.Helper()

	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		SentAt:      sentAt,
	}
	require.NoError(t, db.Create(&message).Error)
	return message
}
