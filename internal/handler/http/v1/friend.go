package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Send a friend request
// @Description Send a zone-scoped friend request. Both users must share their location and currently occupy the same zone.
// @Tags Friends
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body FriendRequestCreate true "Friend request"
// @Success 201 {object} FriendshipResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Self request or out of zone"
// @Failure 409 {object} map[string]string "Already connected"
// @Failure 429 {object} map[string]string "Rate limited"
// @Router /friends/requests [post]
func (h *Handler) sendFriendRequest(c *gin.Context) {
	log := h.logger.WithField("method", "sendFriendRequest")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var input FriendRequestCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	edge, err := h.friendService.SendRequest(c.Request.Context(), userID, input.RecipientID)
	if err != nil {
		log.WithError(err).Warn("Friend request rejected by service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToFriendshipResponse(edge))
}

// @Summary Accept a friend request
// @Description Accept a pending friend request. Only the recipient may accept.
// @Tags Friends
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Friendship edge ID"
// @Success 200 {object} FriendshipResponse
// @Failure 400 {object} map[string]string "Invalid edge ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the recipient"
// @Failure 404 {object} map[string]string "Request not found"
// @Router /friends/requests/{id}/accept [post]
func (h *Handler) acceptFriendRequest(c *gin.Context) {
	h.respondToFriendRequest(c, true)
}

// @Summary Reject a friend request
// @Description Reject a pending friend request. Only the recipient may reject.
// @Tags Friends
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Friendship edge ID"
// @Success 200 {object} FriendshipResponse
// @Failure 400 {object} map[string]string "Invalid edge ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the recipient"
// @Failure 404 {object} map[string]string "Request not found"
// @Router /friends/requests/{id}/reject [post]
func (h *Handler) rejectFriendRequest(c *gin.Context) {
	h.respondToFriendRequest(c, false)
}

func (h *Handler) respondToFriendRequest(c *gin.Context, accept bool) {
	log := h.logger.WithField("method", "respondToFriendRequest").WithField("accept", accept)
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	edgeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid friend request ID"})
		return
	}

	edge, err := h.friendService.Respond(c.Request.Context(), userID, edgeID, accept)
	if err != nil {
		log.WithError(err).Warn("Friend request response rejected by service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToFriendshipResponse(edge))
}

// @Summary List friends
// @Description List the current user's accepted friendships.
// @Tags Friends
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} FriendshipResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /friends [get]
func (h *Handler) listFriends(c *gin.Context) {
	log := h.logger.WithField("method", "listFriends")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	edges, err := h.friendService.ListFriends(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list friends from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToFriendshipResponses(edges))
}

// @Summary List incoming friend requests
// @Description List pending friend requests addressed to the current user.
// @Tags Friends
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} FriendshipResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /friends/requests [get]
func (h *Handler) listFriendRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listFriendRequests")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	edges, err := h.friendService.ListIncomingPending(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list friend requests from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToFriendshipResponses(edges))
}
