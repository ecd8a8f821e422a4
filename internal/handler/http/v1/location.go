package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/worldme/worldme/internal/service"
)

// @Summary Toggle location sharing
// @Description Enable or disable location sharing for the current user. When enabling without coordinates the server falls back to the default coordinate.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param toggle body SharingToggleRequest true "Sharing toggle request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Storage failure"
// @Router /location/sharing [put]
func (h *Handler) toggleSharing(c *gin.Context) {
	log := h.logger.WithField("method", "toggleSharing")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var input SharingToggleRequest
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

	if !input.Enabled {
		if err := h.locationService.DisableSharing(c.Request.Context(), userID); err != nil {
			log.WithError(err).Error("Failed to disable sharing in service")
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sharing": "disabled"})
		return
	}

	// Клиентская координата - это и есть "датчик" с точки зрения сервера;
	// её отсутствие эквивалентно недоступной геолокации
	source := service.NoPosition()
	if input.Latitude != nil && input.Longitude != nil {
		source = service.FixedPosition(*input.Latitude, *input.Longitude)
	}

	if err := h.locationService.EnableSharing(c.Request.Context(), userID, source); err != nil {
		log.WithError(err).Error("Failed to enable sharing in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sharing": "enabled"})
}

// @Summary Publish current position
// @Description Publish the current precise position; the server stores the private row and the blurred public row.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body PublishLocationRequest true "Position to publish"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Sharing disabled"
// @Router /location [post]
func (h *Handler) publishLocation(c *gin.Context) {
	log := h.logger.WithField("method", "publishLocation")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var input PublishLocationRequest
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

	if err := h.locationService.Publish(c.Request.Context(), userID, input.Latitude, input.Longitude); err != nil {
		log.WithError(err).Warn("Failed to publish location in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "published"})
}

// @Summary Get a user's public location
// @Description Get the blurred public location of a user. Only the blurred representation is ever returned.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userID path string true "User ID"
// @Success 200 {object} BlurredLocationResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Location not found"
// @Router /location/{userID} [get]
func (h *Handler) getPublicLocation(c *gin.Context) {
	targetID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	log := h.logger.WithField("method", "getPublicLocation").WithField("target_id", targetID)

	loc, err := h.locationService.GetPublic(c.Request.Context(), targetID)
	if err != nil {
		log.WithError(err).Warn("Failed to get public location from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(loc))
}

// @Summary List zone members
// @Description List users currently sharing their location in a zone.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zoneKey path string true "Zone key"
// @Success 200 {array} ZoneMemberResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{zoneKey}/members [get]
func (h *Handler) listZoneMembers(c *gin.Context) {
	zoneKey := c.Param("zoneKey")
	log := h.logger.WithField("method", "listZoneMembers").WithField("zone_key", zoneKey)

	members, err := h.locationService.ListZoneMembers(c.Request.Context(), zoneKey)
	if err != nil {
		log.WithError(err).Error("Failed to list zone members from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MembersToZoneMemberResponses(members))
}
