package handler

import (
	"net/http"
	"strconv"

	"studyhub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SendMessageInput defines the structure for sending a direct message.
type SendMessageInput struct {
	RecipientID uint   `json:"recipient_id" binding:"required" example:"2"`
	Content     string `json:"content" binding:"required" example:"hello"`
}

// MarkMessagesReadInput defines the structure for marking messages as read.
type MarkMessagesReadInput struct {
	MessageIDs []uint `json:"message_ids" binding:"required"`
}

// endregion

// MessageHandler serves the direct-messaging endpoints.
type MessageHandler struct {
	messaging *service.MessagingService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messaging *service.MessagingService) *MessageHandler {
	return &MessageHandler{messaging: messaging}
}

// SendMessage godoc
// @Summary      Send a message
// @Description  Sends a direct message to a friend.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendMessageInput true "Message"
// @Success      201  {object}  map[string]uint "{"message_id": 1}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Recipient is not a friend"
// @Failure      404  {object}  ErrorResponse "Recipient not found"
// @Router       /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messageID, err := h.messaging.Send(c.Request.Context(), actingUserID(c), input.RecipientID, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message_id": messageID})
}

// GetConversation godoc
// @Summary      Get a conversation
// @Description  Returns the full conversation with another user, oldest first. Only available while the users are friends.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        with_user_id query int true "Counterpart User ID"
// @Success      200  {array}   service.ConversationMessage
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Users are not friends"
// @Router       /messages [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	withUserID, err := strconv.ParseUint(c.Query("with_user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	messages, err := h.messaging.ListConversation(c.Request.Context(), actingUserID(c), uint(withUserID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetRecentConversations godoc
// @Summary      Get recent conversations
// @Description  Returns up to 20 conversation summaries with unread counts, newest first.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   service.ConversationSummary
// @Failure      401  {object}  ErrorResponse
// @Router       /messages/conversations [get]
func (h *MessageHandler) GetRecentConversations(c *gin.Context) {
	conversations, err := h.messaging.ListRecentConversations(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// MarkRead godoc
// @Summary      Mark messages as read
// @Description  Flags the given messages as read. Messages not addressed to the caller are ignored.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body MarkMessagesReadInput true "Message IDs"
// @Success      200  {object}  map[string]string "{"message": "Messages marked as read"}"
// @Failure      400  {object}  ErrorResponse
// @Router       /messages/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	var input MarkMessagesReadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.messaging.MarkRead(c.Request.Context(), actingUserID(c), input.MessageIDs); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Messages marked as read"})
}
