package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"studyhub/backend/internal/models"

	"gorm.io/gorm"
)

// maxSearchResults caps the user search listing.
const maxSearchResults = 10

// SearchService looks up users for the friend-request flow.
type SearchService struct {
	db *gorm.DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// UserSummary is one entry of a user search result.
type UserSummary struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// SearchUsers finds up to 10 users matching the query, never including the
// acting user. A query that parses as a positive integer is tried as an exact
// id first and short-circuits the name search on a hit; otherwise the query
// substring-matches against name and email.
func (s *SearchService) SearchUsers(ctx context.Context, actingUserID uint, query string) ([]UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []UserSummary{}, nil
	}

	if id, err := strconv.Atoi(query); err == nil && id > 0 {
		var user models.User
		err := s.db.WithContext(ctx).
			Where("id = ? AND id <> ?", id, actingUserID).
			First(&user).Error
		if err == nil {
			return []UserSummary{{ID: user.ID, FullName: user.FullName, Email: user.Email}}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// No user with that id; fall through to the name search.
	}

	var users []models.User
	pattern := "%" + query + "%"
	err := s.db.WithContext(ctx).
		Where("id <> ? AND (full_name LIKE ? OR email LIKE ?)", actingUserID, pattern, pattern).
		Limit(maxSearchResults).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	results := make([]UserSummary, 0, len(users))
	for _, user := range users {
		results = append(results, UserSummary{ID: user.ID, FullName: user.FullName, Email: user.Email})
	}
	return results, nil
}
