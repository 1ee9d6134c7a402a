package handler

import (
	"net/http"

	"studyhub/backend/internal/database"
	"studyhub/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// DashboardResponse defines the structure for the dashboard summary.
type DashboardResponse struct {
	Profile             PrivateUserResponse `json:"profile"`
	FileCount           int64               `json:"file_count"`
	FriendCount         int64               `json:"friend_count"`
	PendingRequestCount int64               `json:"pending_request_count"`
	UnreadMessageCount  int64               `json:"unread_message_count"`
	UnreadShareCount    int64               `json:"unread_share_count"`
}

// endregion

// DashboardHandler assembles the read-only dashboard summary.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Summary godoc
// @Summary      Get dashboard summary
// @Description  Returns the caller's profile and activity counts for the dashboard view.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  DashboardResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := actingUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// These counts can be optimized later if performance is an issue
	var fileCount, friendCount, pendingCount, unreadMessages, unreadShares int64
	database.DB.Model(&models.UserFile{}).Where("user_id = ?", userID).Count(&fileCount)
	database.DB.Model(&models.FriendRequest{}).
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)", models.StatusAccepted, userID, userID).
		Count(&friendCount)
	database.DB.Model(&models.FriendRequest{}).
		Where("status = ? AND addressee_id = ?", models.StatusPending, userID).
		Count(&pendingCount)
	database.DB.Model(&models.Message{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&unreadMessages)
	database.DB.Model(&models.SharedFile{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&unreadShares)

	c.JSON(http.StatusOK, DashboardResponse{
		Profile: PrivateUserResponse{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
		FileCount:           fileCount,
		FriendCount:         friendCount,
		PendingRequestCount: pendingCount,
		UnreadMessageCount:  unreadMessages,
		UnreadShareCount:    unreadShares,
	})
}
