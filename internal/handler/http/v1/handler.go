package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/worldme/worldme/internal/config"
	"github.com/worldme/worldme/internal/models"
	"github.com/worldme/worldme/internal/service"
)

type Handler struct {
	locationService service.LocationService
	friendService   service.FriendService
	eventService    service.EventService
	messageService  service.MessageService
	profileService  service.ProfileService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	locationService service.LocationService,
	friendService service.FriendService,
	eventService service.EventService,
	messageService service.MessageService,
	profileService service.ProfileService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		locationService: locationService,
		friendService:   friendService,
		eventService:    eventService,
		messageService:  messageService,
		profileService:  profileService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError сопоставляет доменные ошибки с HTTP-статусами
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCoordinate),
		errors.Is(err, models.ErrInvalidRadius):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrSelfRequest),
		errors.Is(err, models.ErrOutOfZone),
		errors.Is(err, models.ErrNotFriends),
		errors.Is(err, models.ErrSharingDisabled),
		errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyConnected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrPersistenceFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "temporary storage failure, retry the request"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
