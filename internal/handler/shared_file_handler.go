package handler

import (
	"net/http"
	"strconv"

	"studyhub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ShareFileInput defines the structure for sharing a file with a friend.
type ShareFileInput struct {
	RecipientID uint   `json:"recipient_id" binding:"required" example:"2"`
	FileID      uint   `json:"file_id" binding:"required" example:"1"`
	Description string `json:"description,omitempty" example:"lecture notes"`
}

// endregion

// SharedFileHandler serves the file-sharing endpoints.
type SharedFileHandler struct {
	sharing *service.SharingService
}

// NewSharedFileHandler creates a new SharedFileHandler.
func NewSharedFileHandler(sharing *service.SharingService) *SharedFileHandler {
	return &SharedFileHandler{sharing: sharing}
}

// ShareFile godoc
// @Summary      Share a file
// @Description  Shares one of the caller's own files with a friend, snapshotting its name.
// @Tags         shared-files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ShareFileInput true "Share"
// @Success      201  {object}  map[string]uint "{"shared_file_id": 1}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Recipient is not a friend"
// @Failure      404  {object}  ErrorResponse "File not owned by caller, or recipient not found"
// @Router       /shared-files [post]
func (h *SharedFileHandler) ShareFile(c *gin.Context) {
	var input ShareFileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sharedFileID, err := h.sharing.Share(c.Request.Context(), actingUserID(c), input.RecipientID, input.FileID, input.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"shared_file_id": sharedFileID})
}

// SharedWithMe godoc
// @Summary      List files shared with me
// @Description  Returns files other users shared with the caller, newest first.
// @Tags         shared-files
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   service.SharedFileEntry
// @Failure      401  {object}  ErrorResponse
// @Router       /shared-files/with-me [get]
func (h *SharedFileHandler) SharedWithMe(c *gin.Context) {
	entries, err := h.sharing.ListSharedWithMe(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// SharedByMe godoc
// @Summary      List files shared by me
// @Description  Returns files the caller shared with others, newest first.
// @Tags         shared-files
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   service.SharedFileEntry
// @Failure      401  {object}  ErrorResponse
// @Router       /shared-files/by-me [get]
func (h *SharedFileHandler) SharedByMe(c *gin.Context) {
	entries, err := h.sharing.ListSharedByMe(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// MarkRead godoc
// @Summary      Mark a shared file as read
// @Description  Flags a share received by the caller as read.
// @Tags         shared-files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Shared File ID"
// @Success      200  {object}  map[string]string "{"message": "Shared file marked as read"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Share not found or not addressed to the caller"
// @Router       /shared-files/{id}/read [post]
func (h *SharedFileHandler) MarkRead(c *gin.Context) {
	sharedFileID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shared file ID"})
		return
	}

	if err := h.sharing.MarkRead(c.Request.Context(), actingUserID(c), uint(sharedFileID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shared file marked as read"})
}
