package service

import "errors"

// Sentinel failures returned by the services. Handlers match on these with
// errors.Is, the same way the rest of the codebase matches on
// gorm.ErrRecordNotFound; anything else is treated as an internal error.
var (
	ErrNotFound      = errors.New("record not found")
	ErrUnauthorized  = errors.New("not authorized for this record")
	ErrInvalidState  = errors.New("action not valid in the current state")
	ErrInvalidInput  = errors.New("invalid input")
	ErrSelfReference = errors.New("cannot target yourself")
	ErrAlreadyActive = errors.New("an active request or friendship already exists")
	ErrNotFriends    = errors.New("users are not friends")
	ErrEmptyContent  = errors.New("content cannot be empty")
)
