package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Поиск доноров и статистика доступны без ключа
	donors := api.Group("/donors")
	{
		donors.POST("/nearby", h.findNearbyDonors)
		donors.GET("/stats", h.getStats)
	}

	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Регистрация доноров и гостей
	users := api.Group("/users", auth)
	{
		users.POST("", h.registerDonor)
		users.POST("/emergency", h.registerGuest)
		users.PATCH("/:id", h.completeGuestProfile)
	}

	// Запросы крови
	requests := api.Group("/requests", auth)
	{
		requests.POST("", h.sendRequest)
		requests.PATCH("/:donorId/:requestId", h.respondToRequest)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
