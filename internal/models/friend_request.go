package models

import (
	"time"

	"gorm.io/gorm"
)

// FriendRequestStatus defines the state of a relationship between two users.
type FriendRequestStatus string

const (
	// StatusPending means a friend request has been sent but not yet answered.
	StatusPending FriendRequestStatus = "pending"

	// StatusAccepted means the request was accepted, and the users are now friends.
	StatusAccepted FriendRequestStatus = "accepted"

	// StatusRejected means the addressee turned the request down.
	StatusRejected FriendRequestStatus = "rejected"

	// StatusCanceled means the requester withdrew the request, or a friendship
	// was later removed.
	StatusCanceled FriendRequestStatus = "canceled"
)

// Active reports whether the status represents a live proposal or friendship.
// Rejected and canceled rows are historical and may be reused on resend.
func (s FriendRequestStatus) Active() bool {
	return s == StatusPending || s == StatusAccepted
}

// FriendRequest represents a directed relationship proposal and its resolved
// state. At most one row per unordered user pair may be pending or accepted at
// a time; PairLowID/PairHighID hold the canonical ordering of the pair so a
// partial unique index can enforce that regardless of direction.
type FriendRequest struct {
	ID          uint `gorm:"primaryKey"`
	RequesterID uint `gorm:"not null;index"`
	AddresseeID uint `gorm:"not null;index"`

	PairLowID  uint `gorm:"not null;index:idx_friend_requests_pair"`
	PairHighID uint `gorm:"not null;index:idx_friend_requests_pair"`

	Status    FriendRequestStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	// Stamped by the services on every status transition, nil until the first
	// one; gorm's automatic tracking is disabled so creation leaves it nil.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`

	Requester User `gorm:"foreignKey:RequesterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Addressee User `gorm:"foreignKey:AddresseeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// PairKey returns the canonical (low, high) ordering for a user pair.
func PairKey(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// BeforeSave keeps the canonical pair columns in sync with the direction fields.
func (fr *FriendRequest) BeforeSave(tx *gorm.DB) error {
	fr.PairLowID, fr.PairHighID = PairKey(fr.RequesterID, fr.AddresseeID)
	return nil
}
