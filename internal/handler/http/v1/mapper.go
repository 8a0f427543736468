package v1

import (
	"time"

	"github.com/shenikar/tourist_safety_system/internal/models"
)

// DTOToZoneModel преобразует DTO создания/обновления в доменную модель
func DTOToZoneModel(dto ZoneRequest) *models.Zone {
	zone := &models.Zone{
		Name:         dto.Name,
		Description:  dto.Description,
		Lat:          dto.Lat,
		Lng:          dto.Lng,
		Radius:       dto.Radius,
		Type:         models.ZoneType(dto.Type),
		RiskLevel:    models.RiskLevel(dto.RiskLevel),
		PenaltyBonus: dto.PenaltyBonus,
		IsActive:     true,
		Schedule: models.ZoneSchedule{
			AllDay:    dto.Schedule.AllDay,
			StartTime: dto.Schedule.StartTime,
			EndTime:   dto.Schedule.EndTime,
		},
		Notifications: models.ZoneNotifications(dto.Notifications),
	}
	if dto.IsActive != nil {
		zone.IsActive = *dto.IsActive
	}
	if len(dto.Polygon) > 0 {
		zone.Polygon = make([]models.LatLng, len(dto.Polygon))
		for i, p := range dto.Polygon {
			zone.Polygon[i] = models.LatLng{Lat: p.Lat, Lng: p.Lng}
		}
	}
	if len(dto.Schedule.ActiveDays) > 0 {
		zone.Schedule.ActiveDays = make([]time.Weekday, len(dto.Schedule.ActiveDays))
		for i, d := range dto.Schedule.ActiveDays {
			zone.Schedule.ActiveDays[i] = time.Weekday(d)
		}
	}
	return zone
}

// ModelToZoneResponse преобразует доменную модель в DTO для ответа
func ModelToZoneResponse(model *models.Zone) *ZoneResponse {
	resp := &ZoneResponse{
		ID:           model.ID,
		Name:         model.Name,
		Description:  model.Description,
		Lat:          model.Lat,
		Lng:          model.Lng,
		Radius:       model.Radius,
		Type:         string(model.Type),
		RiskLevel:    string(model.RiskLevel),
		PenaltyBonus: model.PenaltyBonus,
		IsActive:     model.IsActive,
		Schedule: ZoneScheduleDTO{
			AllDay:    model.Schedule.AllDay,
			StartTime: model.Schedule.StartTime,
			EndTime:   model.Schedule.EndTime,
		},
		Notifications: ZoneNotificationsDTO(model.Notifications),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
	for _, p := range model.Polygon {
		resp.Polygon = append(resp.Polygon, LatLngDTO{Lat: p.Lat, Lng: p.Lng})
	}
	for _, d := range model.Schedule.ActiveDays {
		resp.Schedule.ActiveDays = append(resp.Schedule.ActiveDays, int(d))
	}
	return resp
}

func ModelsToZoneResponses(models []*models.Zone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToZoneResponse(model)
	}
	return responses
}

func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:                       model.ID,
		FIRNumber:                model.FIRNumber,
		ReportType:               model.ReportType,
		TouristID:                model.TouristID,
		IncidentID:               model.IncidentID,
		Status:                   model.Status,
		Priority:                 string(model.Priority),
		Summary:                  model.Summary,
		Details:                  model.Details,
		GeneratedBy:              model.GeneratedBy,
		IsAutomaticallyGenerated: model.IsAutomaticallyGenerated,
		CreatedAt:                model.CreatedAt,
		UpdatedAt:                model.UpdatedAt,
	}
}

func ModelsToReportResponses(models []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// ModelToPassResultResponse преобразует итог прохода в DTO
func ModelToPassResultResponse(model *models.PassResult) *PassResultResponse {
	resp := &PassResultResponse{
		StartedAt:        model.StartedAt,
		FinishedAt:       model.FinishedAt,
		Evaluated:        model.Evaluated,
		Candidates:       model.Candidates,
		Admitted:         model.Admitted,
		Rejected:         model.Rejected,
		IncidentsCreated: model.IncidentsCreated,
		ReportsCreated:   model.ReportsCreated,
		Failed:           model.Failed,
		Orphaned:         model.Orphaned,
		Reconciled:       model.Reconciled,
		ZonesDegraded:    model.ZonesDegraded,
		Reports:          ModelsToReportResponses(model.Reports),
	}
	for _, f := range model.Failures {
		resp.Failures = append(resp.Failures, PassFailureResponse(f))
	}
	return resp
}
