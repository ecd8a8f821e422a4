package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/worldme/worldme/internal/models"
)

// @Summary Save own profile
// @Description Create or update the current user's profile (display name and avatar).
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body SaveProfileRequest true "Profile to save"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /profile [put]
func (h *Handler) saveProfile(c *gin.Context) {
	log := h.logger.WithField("method", "saveProfile")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var input SaveProfileRequest
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

	profile := &models.Profile{
		UserID:      userID,
		DisplayName: input.DisplayName,
		AvatarEmoji: input.AvatarEmoji,
		AvatarURL:   input.AvatarURL,
	}
	if err := h.profileService.SaveProfile(c.Request.Context(), profile); err != nil {
		log.WithError(err).Error("Failed to save profile in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Get a user's profile
// @Description Get the public profile of a user.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userID path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Router /profiles/{userID} [get]
func (h *Handler) getProfile(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "getProfile").WithField("target_id", targetID)

	profile, err := h.profileService.GetProfile(c.Request.Context(), targetID)
	if err != nil {
		log.WithError(err).Warn("Failed to get profile from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}
