package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Send a message
// @Description Send a direct message to an accepted friend.
// @Tags Messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param message body SendMessageRequest true "Message to send"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Users are not friends"
// @Router /messages [post]
func (h *Handler) sendMessage(c *gin.Context) {
	log := h.logger.WithField("method", "sendMessage")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var input SendMessageRequest
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

	message, err := h.messageService.Send(c.Request.Context(), userID, input.RecipientID, input.Body)
	if err != nil {
		log.WithError(err).Warn("Failed to send message in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToMessageResponse(message))
}

// @Summary Get a conversation
// @Description Get the most recent messages exchanged with a friend.
// @Tags Messages
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userID path string true "Friend user ID"
// @Param limit query int false "Maximum number of messages" default(50)
// @Success 200 {array} MessageResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Users are not friends"
// @Router /messages/{userID} [get]
func (h *Handler) getConversation(c *gin.Context) {
	log := h.logger.WithField("method", "getConversation")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	otherID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	messages, err := h.messageService.Conversation(c.Request.Context(), userID, otherID, limit)
	if err != nil {
		log.WithError(err).Warn("Failed to get conversation from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToMessageResponses(messages))
}
