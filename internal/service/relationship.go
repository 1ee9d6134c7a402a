package service

import (
	"context"
	"errors"
	"time"

	"studyhub/backend/internal/models"
	"studyhub/backend/pkg/logger"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RelationshipService owns the friend request state machine. Per unordered
// user pair the ledger holds at most one active (pending or accepted) row;
// rejected and canceled rows are kept as history and reused on resend instead
// of appending duplicates.
//
//	(none)   --send-->              pending
//	pending  --accept (addressee)-> accepted
//	pending  --reject (addressee)-> rejected
//	pending  --cancel (requester)-> canceled
//	accepted --remove (either)-->   canceled
//	rejected/canceled --send (either direction)--> pending   [row reused]
type RelationshipService struct {
	db *gorm.DB
}

// NewRelationshipService creates a new RelationshipService.
func NewRelationshipService(db *gorm.DB) *RelationshipService {
	return &RelationshipService{db: db}
}

// PendingRequest is one entry of a pending request listing, carrying the
// counterpart's identity.
type PendingRequest struct {
	RequestID uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	FullName  string `json:"full_name"`
}

// PendingRequests groups a user's pending requests by direction.
type PendingRequests struct {
	Incoming []PendingRequest `json:"incoming"`
	Outgoing []PendingRequest `json:"outgoing"`
}

// Friend is one entry of a friend listing.
type Friend struct {
	UserID   uint   `json:"user_id"`
	FullName string `json:"full_name"`
}

// SendRequest creates a pending friend request from requester to addressee.
// If a resolved row already exists between the pair it is reused, overwritten
// with the new direction. Returns the id of the resulting request.
func (s *RelationshipService) SendRequest(ctx context.Context, requesterID, addresseeID uint) (uint, error) {
	if requesterID == addresseeID {
		return 0, ErrSelfReference
	}

	var addresseeCount int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", addresseeID).Count(&addresseeCount).Error; err != nil {
		return 0, err
	}
	if addresseeCount == 0 {
		return 0, ErrNotFound
	}

	low, high := models.PairKey(requesterID, addresseeID)

	var requestID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.FriendRequest
		err := tx.Where("pair_low_id = ? AND pair_high_id = ?", low, high).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fr := models.FriendRequest{
				RequesterID: requesterID,
				AddresseeID: addresseeID,
				Status:      models.StatusPending,
			}
			if err := tx.Create(&fr).Error; err != nil {
				return err
			}
			requestID = fr.ID
			return nil
		}
		if err != nil {
			return err
		}

		if existing.Status.Active() {
			return ErrAlreadyActive
		}

		// Reuse the resolved row rather than appending history; the new
		// direction overwrites the old one.
		now := time.Now().UTC()
		existing.RequesterID = requesterID
		existing.AddresseeID = addresseeID
		existing.Status = models.StatusPending
		existing.UpdatedAt = &now
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		requestID = existing.ID
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race with a concurrent send for the same pair. The partial
		// unique index on the active pair is the authority, not the pre-check.
		return 0, ErrAlreadyActive
	}
	if err != nil {
		return 0, err
	}

	return requestID, nil
}

// Respond accepts or rejects a pending request. Only the addressee may
// respond, and only while the request is pending.
func (s *RelationshipService) Respond(ctx context.Context, actingUserID, requestID uint, accept bool) error {
	var fr models.FriendRequest
	if err := s.db.WithContext(ctx).First(&fr, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if fr.AddresseeID != actingUserID {
		return ErrUnauthorized
	}
	if fr.Status != models.StatusPending {
		return ErrInvalidState
	}

	status := models.StatusRejected
	if accept {
		status = models.StatusAccepted
	}

	now := time.Now().UTC()
	return s.db.WithContext(ctx).Model(&fr).
		Updates(map[string]interface{}{"status": status, "updated_at": now}).Error
}

// Cancel withdraws a pending request. Only the requester may cancel.
func (s *RelationshipService) Cancel(ctx context.Context, actingUserID, requestID uint) error {
	var fr models.FriendRequest
	if err := s.db.WithContext(ctx).First(&fr, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if fr.RequesterID != actingUserID {
		return ErrUnauthorized
	}
	if fr.Status != models.StatusPending {
		return ErrInvalidState
	}

	now := time.Now().UTC()
	return s.db.WithContext(ctx).Model(&fr).
		Updates(map[string]interface{}{"status": models.StatusCanceled, "updated_at": now}).Error
}

// RemoveFriend downgrades the accepted relationship between the acting user
// and the other user to canceled. The row is kept as history, not deleted.
// The find-and-update runs as a single statement so concurrent removals
// cannot double-apply.
func (s *RelationshipService) RemoveFriend(ctx context.Context, actingUserID, otherUserID uint) error {
	low, high := models.PairKey(actingUserID, otherUserID)

	now := time.Now().UTC()
	res := s.db.WithContext(ctx).Model(&models.FriendRequest{}).
		Where("status = ? AND pair_low_id = ? AND pair_high_id = ?", models.StatusAccepted, low, high).
		Updates(map[string]interface{}{"status": models.StatusCanceled, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPending returns the user's pending requests, split into incoming
// (user is addressee) and outgoing (user is requester).
func (s *RelationshipService) ListPending(ctx context.Context, userID uint) (*PendingRequests, error) {
	var incomingRows []models.FriendRequest
	err := s.db.WithContext(ctx).Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.StatusPending).
		Find(&incomingRows).Error
	if err != nil {
		return nil, err
	}

	var outgoingRows []models.FriendRequest
	err = s.db.WithContext(ctx).Preload("Addressee").
		Where("requester_id = ? AND status = ?", userID, models.StatusPending).
		Find(&outgoingRows).Error
	if err != nil {
		return nil, err
	}

	result := &PendingRequests{
		Incoming: make([]PendingRequest, 0, len(incomingRows)),
		Outgoing: make([]PendingRequest, 0, len(outgoingRows)),
	}
	for _, fr := range incomingRows {
		result.Incoming = append(result.Incoming, PendingRequest{
			RequestID: fr.ID,
			UserID:    fr.Requester.ID,
			FullName:  fr.Requester.FullName,
		})
	}
	for _, fr := range outgoingRows {
		result.Outgoing = append(result.Outgoing, PendingRequest{
			RequestID: fr.ID,
			UserID:    fr.Addressee.ID,
			FullName:  fr.Addressee.FullName,
		})
	}
	return result, nil
}

// ListFriends returns the counterpart of every accepted relationship touching
// the user, deduplicated by counterpart id. The active-pair index should make
// duplicates impossible, so a dropped duplicate is logged rather than
// silently masked.
func (s *RelationshipService) ListFriends(ctx context.Context, userID uint) ([]Friend, error) {
	var rows []models.FriendRequest
	err := s.db.WithContext(ctx).Preload("Requester").Preload("Addressee").
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)", models.StatusAccepted, userID, userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(rows))
	friends := make([]Friend, 0, len(rows))
	for _, fr := range rows {
		counterpart := fr.Addressee
		if fr.AddresseeID == userID {
			counterpart = fr.Requester
		}
		if seen[counterpart.ID] {
			logger.Log.WithFields(logrus.Fields{
				"user_id":        userID,
				"counterpart_id": counterpart.ID,
			}).Warn("duplicate accepted relationship for pair")
			continue
		}
		seen[counterpart.ID] = true
		friends = append(friends, Friend{UserID: counterpart.ID, FullName: counterpart.FullName})
	}
	return friends, nil
}

// AreFriends reports whether an accepted relationship exists between the two
// users, in either direction. Messaging and sharing use this as their
// authorization gate.
func (s *RelationshipService) AreFriends(ctx context.Context, userA, userB uint) (bool, error) {
	low, high := models.PairKey(userA, userB)

	var count int64
	err := s.db.WithContext(ctx).Model(&models.FriendRequest{}).
		Where("status = ? AND pair_low_id = ? AND pair_high_id = ?", models.StatusAccepted, low, high).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
