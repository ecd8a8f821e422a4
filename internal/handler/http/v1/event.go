package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a new event
// @Description Create a new event. The creator must currently share their location in the venue zone.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body CreateEventRequest true "Event creation request"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Creator is not in the venue zone"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [post]
func (h *Handler) createEvent(c *gin.Context) {
	log := h.logger.WithField("method", "createEvent")
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}

	var input CreateEventRequest
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

	model := DTOToEventModel(input)
	model.CreatorID = userID
	if err := h.eventService.CreateEvent(c.Request.Context(), model); err != nil {
		log.WithError(err).Warn("Failed to create event in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToEventResponse(model))
}

// @Summary Get event by ID
// @Description Get a single event by its ID.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{id} [get]
func (h *Handler) getEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "getEvent").WithField("id", id)

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get event from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToEventResponse(event))
}

// @Summary Update an existing event
// @Description Update an existing event by ID. Only the creator may update.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Event update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid event ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the creator"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{id} [put]
func (h *Handler) updateEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "updateEvent").WithField("id", id)

	var input UpdateEventRequest
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

	model := DTOToEventModel(input)
	model.ID = id

	if err := h.eventService.UpdateEvent(c.Request.Context(), userID, model); err != nil {
		log.WithError(err).Warn("Failed to update event in service")
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Cancel an event
// @Description Cancel an event by its ID. Only the creator may cancel.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the creator"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{id} [delete]
func (h *Handler) deleteEvent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "deleteEvent").WithField("id", id)

	if err := h.eventService.CancelEvent(c.Request.Context(), userID, id); err != nil {
		log.WithError(err).Warn("Failed to cancel event in service")
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List events
// @Description List active events by zone key or by a point with a radius in meters.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone query string false "Zone key"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param radius query number false "Search radius in meters" default(1000)
// @Success 200 {array} EventResponse
// @Failure 400 {object} map[string]string "Missing zone or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	log := h.logger.WithField("method", "listEvents")

	if zoneKey := c.Query("zone"); zoneKey != "" {
		events, err := h.eventService.ListByZone(c.Request.Context(), zoneKey)
		if err != nil {
			log.WithError(err).Error("Failed to list events by zone from service")
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ModelsToEventResponses(events))
		return
	}

	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zone or lat/lng query parameters required"})
		return
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lng"})
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "1000"), 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	events, err := h.eventService.FindNearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby events from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}
