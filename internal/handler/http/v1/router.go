package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления геозонами (CRUD)
	zones := api.Group("/zones")
	{
		zones.POST("", h.createZone)
		zones.GET("", h.listZones)
		zones.GET("/:id", h.getZone)
		zones.PUT("/:id", h.updateZone)
		zones.DELETE("/:id", h.deleteZone)
	}

	// Отчеты E-FIR только на чтение, их создает движок
	reports := api.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
	}

	detection := api.Group("/detection")
	{
		detection.POST("/run", h.runDetection)
		detection.GET("/last", h.lastDetection)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
