package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/blood_donation_system/internal/config"
	"github.com/shenikar/blood_donation_system/internal/models"
	"github.com/shenikar/blood_donation_system/internal/service"
	"github.com/sirupsen/logrus"
)

const noDonorsFoundMessage = "No donors found nearby"

type Handler struct {
	donorService   service.DonorService
	requestService service.RequestService
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
}

func NewHandler(donorService service.DonorService, requestService service.RequestService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		donorService:   donorService,
		requestService: requestService,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
	}
}

// bindAndValidate читает JSON тело и проверяет его по тегам validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибки сервисов в HTTP ответы. Внутренние детали наружу не отдаются
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoDonorsFound):
		c.JSON(http.StatusNotFound, gin.H{"message": noDonorsFoundMessage})
	case errors.Is(err, service.ErrDonorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "donor not found"})
	case errors.Is(err, service.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "pending request not found"})
	case errors.Is(err, service.ErrDonorExists):
		c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
	case errors.Is(err, service.ErrNotGuest):
		c.JSON(http.StatusConflict, gin.H{"error": "user is not a guest"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Find nearby donors
// @Description Find verified, registered donors of a blood group within a radius (km, default 10), nearest first.
// @Tags Donors
// @Accept json
// @Produce json
// @Param search body NearbyDonorsRequest true "Search request"
// @Success 200 {object} NearbyDonorsResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "No donors found nearby"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donors/nearby [post]
func (h *Handler) findNearbyDonors(c *gin.Context) {
	var input NearbyDonorsRequest
	log := h.logger.WithField("method", "findNearbyDonors")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	var radiusKm float64
	if input.Distance != nil {
		radiusKm = *input.Distance
	}

	results, err := h.donorService.FindNearbyDonors(c.Request.Context(), *input.Latitude, *input.Longitude, models.BloodGroup(input.BloodGroup), radiusKm)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToNearbyDonorsResponse(results))
}

// @Summary Get donor statistics
// @Description Get the number of searchable donors per blood group.
// @Tags Donors
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /donors/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.donorService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToStatsResponse(stats))
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
