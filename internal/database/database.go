package database

import (
	"log"
	"os"
	"time"

	"studyhub/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// activePairIndex enforces the relationship ledger invariant at the storage
// layer: for any unordered user pair, at most one friend request row may be
// pending or accepted at a time. Concurrent duplicate sends lose the race
// here instead of slipping past the application-level pre-check.
const activePairIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_friend_requests_active_pair
ON friend_requests (pair_low_id, pair_high_id)
WHERE status IN ('pending', 'accepted')`

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         customLogger,
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")
}

// Migrate runs schema migrations and creates the partial unique index that
// AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.FriendRequest{},
		&models.Message{},
		&models.UserFile{},
		&models.SharedFile{},
	)
	if err != nil {
		return err
	}

	return db.Exec(activePairIndex).Error
}
