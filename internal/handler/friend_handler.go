package handler

import (
	"net/http"
	"strconv"

	"studyhub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SendFriendRequestInput defines the structure for sending a friend request.
type SendFriendRequestInput struct {
	AddresseeID uint `json:"addressee_id" binding:"required" example:"2"`
}

// endregion

// FriendHandler serves the friend request and friendship endpoints.
type FriendHandler struct {
	relationships *service.RelationshipService
}

// NewFriendHandler creates a new FriendHandler.
func NewFriendHandler(relationships *service.RelationshipService) *FriendHandler {
	return &FriendHandler{relationships: relationships}
}

// SendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to another user. A resolved historical request between the pair is reused.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendFriendRequestInput true "Addressee"
// @Success      201  {object}  map[string]uint "{"request_id": 1}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Addressee not found"
// @Failure      409  {object}  ErrorResponse "An active request or friendship already exists"
// @Router       /friends/requests [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var input SendFriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID, err := h.relationships.SendRequest(c.Request.Context(), actingUserID(c), input.AddresseeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request_id": requestID})
}

// ListPending godoc
// @Summary      List pending friend requests
// @Description  Returns the caller's pending requests, split into incoming and outgoing.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.PendingRequests
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/pending [get]
func (h *FriendHandler) ListPending(c *gin.Context) {
	pending, err := h.relationships.ListPending(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pending)
}

// AcceptRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending friend request addressed to the caller.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  map[string]string "{"message": "Request accepted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Caller is not the addressee"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      409  {object}  ErrorResponse "Request is not pending"
// @Router       /friends/requests/{id}/accept [post]
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	h.respond(c, true)
}

// RejectRequest godoc
// @Summary      Reject friend request
// @Description  Rejects a pending friend request addressed to the caller.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  map[string]string "{"message": "Request rejected"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Caller is not the addressee"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      409  {object}  ErrorResponse "Request is not pending"
// @Router       /friends/requests/{id}/reject [post]
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	h.respond(c, false)
}

func (h *FriendHandler) respond(c *gin.Context, accept bool) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := h.relationships.Respond(c.Request.Context(), actingUserID(c), uint(requestID), accept); err != nil {
		respondError(c, err)
		return
	}

	message := "Request rejected"
	if accept {
		message = "Request accepted"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// CancelRequest godoc
// @Summary      Cancel friend request
// @Description  Withdraws a pending friend request the caller sent.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  map[string]string "{"message": "Request canceled"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Caller is not the requester"
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      409  {object}  ErrorResponse "Request is not pending"
// @Router       /friends/requests/{id}/cancel [post]
func (h *FriendHandler) CancelRequest(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := h.relationships.Cancel(c.Request.Context(), actingUserID(c), uint(requestID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request canceled"})
}

// ListFriends godoc
// @Summary      List friends
// @Description  Returns the caller's friends (accepted relationships, either direction).
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   service.Friend
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func (h *FriendHandler) ListFriends(c *gin.Context) {
	friends, err := h.relationships.ListFriends(c.Request.Context(), actingUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// RemoveFriend godoc
// @Summary      Remove friend
// @Description  Downgrades the accepted relationship with the given user to canceled. History is retained.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend's User ID"
// @Success      200  {object}  map[string]string "{"message": "Friend removed"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Friendship not found"
// @Router       /friends/{id}/remove [post]
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	otherUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.relationships.RemoveFriend(c.Request.Context(), actingUserID(c), uint(otherUserID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}
