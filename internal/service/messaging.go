package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"studyhub/backend/internal/models"

	"gorm.io/gorm"
)

// maxRecentConversations caps the conversation overview listing.
const maxRecentConversations = 20

// MessagingService handles direct messages between friends. It never writes
// relationship rows; the ledger is consulted read-only to authorize sends and
// reads.
type MessagingService struct {
	db            *gorm.DB
	relationships *RelationshipService
}

// NewMessagingService creates a new MessagingService.
func NewMessagingService(db *gorm.DB, relationships *RelationshipService) *MessagingService {
	return &MessagingService{db: db, relationships: relationships}
}

// ConversationMessage is one message of a two-party conversation, annotated
// with both parties' names and the viewer's perspective.
type ConversationMessage struct {
	ID            uint      `json:"id"`
	SenderID      uint      `json:"sender_id"`
	SenderName    string    `json:"sender_name"`
	RecipientID   uint      `json:"recipient_id"`
	RecipientName string    `json:"recipient_name"`
	Content       string    `json:"content"`
	SentAt        time.Time `json:"sent_at"`
	IsRead        bool      `json:"is_read"`
	IsFromMe      bool      `json:"is_from_me"`
}

// ConversationSummary is one entry of the recent-conversations overview.
type ConversationSummary struct {
	UserID          uint      `json:"user_id"`
	UserName        string    `json:"user_name"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int64     `json:"unread_count"`
}

// Send delivers a message from sender to recipient. Only friends may message
// each other; a later unfriending does not invalidate messages already sent.
func (s *MessagingService) Send(ctx context.Context, senderID, recipientID uint, content string) (uint, error) {
	if senderID == recipientID {
		return 0, ErrSelfReference
	}
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyContent
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

	message := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		SentAt:      time.Now().UTC(),
		IsRead:      false,
	}
	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return 0, err
	}
	return message.ID, nil
}

// ListConversation returns the full two-party conversation in ascending
// send order. The friendship gate applies to reading as well as sending, so
// history becomes inaccessible once the friendship is removed.
func (s *MessagingService) ListConversation(ctx context.Context, userID, withUserID uint) ([]ConversationMessage, error) {
	if withUserID == 0 {
		return nil, ErrInvalidInput
	}

	friends, err := s.relationships.AreFriends(ctx, userID, withUserID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, ErrNotFriends
	}

	var rows []models.Message
	err = s.db.WithContext(ctx).Preload("Sender").Preload("Recipient").
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, withUserID, withUserID, userID).
		Order("sent_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ConversationMessage, 0, len(rows))
	for _, m := range rows {
		messages = append(messages, ConversationMessage{
			ID:            m.ID,
			SenderID:      m.SenderID,
			SenderName:    m.Sender.FullName,
			RecipientID:   m.RecipientID,
			RecipientName: m.Recipient.FullName,
			Content:       m.Content,
			SentAt:        m.SentAt,
			IsRead:        m.IsRead,
			IsFromMe:      m.SenderID == userID,
		})
	}
	return messages, nil
}

// ListRecentConversations returns up to 20 conversation summaries, one per
// distinct counterpart, newest conversation first.
func (s *MessagingService) ListRecentConversations(ctx context.Context, userID uint) ([]ConversationSummary, error) {
	// LastTime exists only to receive the selected MAX(sent_at) column; the
	// ordering happens in SQL and the value is never read. It is a string
	// because sqlite reports aggregate columns without a declared type, which
	// the driver surfaces as text that cannot scan into time.Time.
	type conversationRow struct {
		CounterpartID uint
		LastTime      string
	}

	var rows []conversationRow
	err := s.db.WithContext(ctx).Model(&models.Message{}).
		Select("CASE WHEN sender_id = ? THEN recipient_id ELSE sender_id END AS counterpart_id, MAX(sent_at) AS last_time", userID).
		Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Group("counterpart_id").
		Order("last_time DESC").
		Limit(maxRecentConversations).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, 0, len(rows))
	for _, row := range rows {
		var last models.Message
		err := s.db.WithContext(ctx).
			Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
				userID, row.CounterpartID, row.CounterpartID, userID).
			Order("sent_at DESC").
			First(&last).Error
		if err != nil {
			return nil, err
		}

		var unread int64
		err = s.db.WithContext(ctx).Model(&models.Message{}).
			Where("sender_id = ? AND recipient_id = ? AND is_read = ?", row.CounterpartID, userID, false).
			Count(&unread).Error
		if err != nil {
			return nil, err
		}

		var counterpart models.User
		if err := s.db.WithContext(ctx).First(&counterpart, row.CounterpartID).Error; err != nil {
			return nil, err
		}

		summaries = append(summaries, ConversationSummary{
			UserID:          counterpart.ID,
			UserName:        counterpart.FullName,
			LastMessage:     last.Content,
			LastMessageTime: last.SentAt,
			UnreadCount:     unread,
		})
	}
	return summaries, nil
}

// MarkRead flags the given messages as read. Only messages actually addressed
// to the user are touched; foreign ids in the list are ignored, not errored.
func (s *MessagingService) MarkRead(ctx context.Context, userID uint, messageIDs []uint) error {
	if len(messageIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	return s.db.WithContext(ctx).Model(&models.Message{}).
		Where("id IN ? AND recipient_id = ? AND is_read = ?", messageIDs, userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error
}
