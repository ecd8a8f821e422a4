package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты локации и зон
	api.PUT("/location/sharing", h.toggleSharing)
	api.POST("/location", h.publishLocation)
	api.GET("/location/:userID", h.getPublicLocation)
	api.GET("/zones/:zoneKey/members", h.listZoneMembers)

	// Маршруты заявок в друзья
	friends := api.Group("/friends")
	{
		friends.GET("", h.listFriends)
		friends.POST("/requests", h.sendFriendRequest)
		friends.GET("/requests", h.listFriendRequests)
		friends.POST("/requests/:id/accept", h.acceptFriendRequest)
		friends.POST("/requests/:id/reject", h.rejectFriendRequest)
	}

	// Маршруты событий (CRUD)
	events := api.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
	}

	// Маршруты сообщений
	api.POST("/messages", h.sendMessage)
	api.GET("/messages/:userID", h.getConversation)

	// Маршруты профилей
	api.PUT("/profile", h.saveProfile)
	api.GET("/profiles/:userID", h.getProfile)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
