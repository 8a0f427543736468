package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	zoneService      service.ZoneService
	reportService    service.ReportService
	detectionService service.DetectionService
	clock            clockwork.Clock
	logger           *logrus.Logger
	validate         *validator.Validate
}

func NewHandler(
	zoneService service.ZoneService,
	reportService service.ReportService,
	detectionService service.DetectionService,
	clock clockwork.Clock,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		zoneService:      zoneService,
		reportService:    reportService,
		detectionService: detectionService,
		clock:            clock,
		logger:           logger,
		validate:         validator.New(),
	}
}

// @Summary Create a new zone
// @Description Create a geofence zone. Either radius > 0 or a polygon of at least 3 points is required.
// @Tags Zones
// @Accept json
// @Produce json
// @Param zone body ZoneRequest true "Zone creation request"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	log := h.logger.WithField("method", "createZone")

	input, ok := h.bindZone(c, log)
	if !ok {
		return
	}

	model := DTOToZoneModel(input)
	if err := h.zoneService.CreateZone(c.Request.Context(), model); err != nil {
		h.zoneError(c, log, err, "Failed to create zone in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(model))
}

// @Summary Get a list of zones
// @Description Get all geofence zones, active and inactive
// @Tags Zones
// @Produce json
// @Success 200 {array} ZoneResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")

	zones, err := h.zoneService.ListZones(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Get zone by ID
// @Tags Zones
// @Produce json
// @Param id path string true "Zone ID"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [get]
func (h *Handler) getZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "getZone").WithField("id", id)

	zone, err := h.zoneService.GetZone(c.Request.Context(), id)
	if err != nil {
		h.zoneError(c, log, err, "Failed to get zone from service")
		return
	}
	c.JSON(http.StatusOK, ModelToZoneResponse(zone))
}

// @Summary Update an existing zone
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path string true "Zone ID"
// @Param zone body ZoneRequest true "Zone update request"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID or request body"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [put]
func (h *Handler) updateZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "updateZone").WithField("id", id)

	input, ok := h.bindZone(c, log)
	if !ok {
		return
	}

	model := DTOToZoneModel(input)
	model.ID = id

	if err := h.zoneService.UpdateZone(c.Request.Context(), model); err != nil {
		h.zoneError(c, log, err, "Failed to update zone in service")
		return
	}
	c.JSON(http.StatusOK, ModelToZoneResponse(model))
}

// @Summary Delete a zone
// @Description Delete a zone. Incidents that referenced it keep their history without the zone link.
// @Tags Zones
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [delete]
func (h *Handler) deleteZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "deleteZone").WithField("id", id)

	if err := h.zoneService.DeleteZone(c.Request.Context(), id); err != nil {
		h.zoneError(c, log, err, "Failed to delete zone in service")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bindZone(c *gin.Context, log *logrus.Entry) (ZoneRequest, bool) {
	var input ZoneRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return input, false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}
	return input, true
}

func (h *Handler) zoneError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidZone):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get a list of E-FIR reports
// @Description Get a paginated list of reports, newest first
// @Tags Reports
// @Produce json
// @Param tourist_id query string false "Filter by tourist ID"
// @Param status query string false "Filter by status" Enums(open, in-progress, resolved, closed)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ReportResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	filter := models.ReportFilter{
		TouristID: c.Query("tourist_id"),
		Status:    c.Query("status"),
		Page:      page,
		PageSize:  pageSize,
	}
	reports, err := h.reportService.ListReports(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get report by ID
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			log.WithError(err).Warn("Report not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		log.WithError(err).Error("Failed to get report from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Run a detection pass now
// @Description Run one evaluation pass synchronously and return its summary
// @Tags Detection
// @Produce json
// @Success 200 {object} PassResultResponse
// @Failure 409 {object} map[string]string "Another pass is in progress"
// @Failure 500 {object} map[string]string "Pass could not be executed"
// @Router /detection/run [post]
func (h *Handler) runDetection(c *gin.Context) {
	log := h.logger.WithField("method", "runDetection")

	// начатый проход доводится до конца даже при разрыве соединения клиентом
	ctx := context.WithoutCancel(c.Request.Context())
	result, err := h.detectionService.RunPass(ctx, h.clock.Now())
	if err != nil {
		if errors.Is(err, service.ErrPassInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Manual detection pass failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "detection pass failed"})
		return
	}
	c.JSON(http.StatusOK, ModelToPassResultResponse(result))
}

// @Summary Get the last pass summary
// @Tags Detection
// @Produce json
// @Success 200 {object} PassResultResponse
// @Failure 404 {object} map[string]string "No pass has completed yet"
// @Router /detection/last [get]
func (h *Handler) lastDetection(c *gin.Context) {
	result := h.detectionService.LastPass()
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no completed pass yet"})
		return
	}
	c.JSON(http.StatusOK, ModelToPassResultResponse(result))
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
