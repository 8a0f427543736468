package v1

import (
	"time"

	"github.com/google/uuid"
)

// LatLngDTO вершина полигона
// @Description Вершина полигона геозоны
type LatLngDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// ZoneScheduleDTO расписание активности зоны
// @Description Расписание активности зоны, время в формате HH:MM
type ZoneScheduleDTO struct {
	AllDay     bool   `json:"allDay"`
	StartTime  string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime    string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04"`
	ActiveDays []int  `json:"activeDays,omitempty" validate:"omitempty,dive,min=0,max=6"`
}

// ZoneNotificationsDTO настройки оповещений зоны
type ZoneNotificationsDTO struct {
	AlertOnEnter bool `json:"alertOnEnter"`
	AlertOnExit  bool `json:"alertOnExit"`
	AutoEscalate bool `json:"autoEscalate"`
}

// ZoneRequest DTO для создания и обновления геозоны
// @Description DTO для создания и обновления геозоны. Нужен радиус > 0 или полигон из 3+ точек.
type ZoneRequest struct {
	Name          string               `json:"name" validate:"required,min=2,max=255"`
	Description   string               `json:"description,omitempty"`
	Lat           float64              `json:"lat" validate:"latitude"`
	Lng           float64              `json:"lng" validate:"longitude"`
	Radius        float64              `json:"radius" validate:"gte=0"`
	Polygon       []LatLngDTO          `json:"polygon,omitempty" validate:"omitempty,dive"`
	Type          string               `json:"type" validate:"required,oneof=geofenced highRisk mediumRisk lowRisk bonusArea"`
	RiskLevel     string               `json:"riskLevel" validate:"required,oneof=restricted monitored danger"`
	PenaltyBonus  int                  `json:"penaltyBonus"`
	// IsActive по умолчанию true, как и в бд
	IsActive      *bool                `json:"isActive,omitempty"`
	Schedule      ZoneScheduleDTO      `json:"schedule"`
	Notifications ZoneNotificationsDTO `json:"notifications"`
}

// ZoneResponse DTO для ответа с информацией о геозоне
// @Description DTO для ответа с информацией о геозоне
type ZoneResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	Lat           float64              `json:"lat"`
	Lng           float64              `json:"lng"`
	Radius        float64              `json:"radius"`
	Polygon       []LatLngDTO          `json:"polygon,omitempty"`
	Type          string               `json:"type"`
	RiskLevel     string               `json:"riskLevel"`
	PenaltyBonus  int                  `json:"penaltyBonus"`
	IsActive      bool                 `json:"isActive"`
	Schedule      ZoneScheduleDTO      `json:"schedule"`
	Notifications ZoneNotificationsDTO `json:"notifications"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ReportResponse DTO отчета E-FIR
// @Description DTO отчета E-FIR
type ReportResponse struct {
	ID                       uuid.UUID `json:"id"`
	FIRNumber                string    `json:"fir_number"`
	ReportType               string    `json:"report_type"`
	TouristID                string    `json:"tourist_id"`
	IncidentID               uuid.UUID `json:"incident_id"`
	Status                   string    `json:"status"`
	Priority                 string    `json:"priority"`
	Summary                  string    `json:"summary"`
	Details                  string    `json:"details"`
	GeneratedBy              string    `json:"generated_by"`
	IsAutomaticallyGenerated bool      `json:"is_automatically_generated"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// PassFailureResponse ошибка обработки одного туриста
type PassFailureResponse struct {
	TouristID  string `json:"tourist_id"`
	IncidentID string `json:"incident_id,omitempty"`
	Stage      string `json:"stage"`
	Error      string `json:"error"`
}

// PassResultResponse DTO с итогами прохода обнаружения
// @Description DTO с итогами прохода обнаружения
type PassResultResponse struct {
	StartedAt        time.Time             `json:"started_at"`
	FinishedAt       time.Time             `json:"finished_at"`
	Evaluated        int                   `json:"evaluated"`
	Candidates       int                   `json:"candidates"`
	Admitted         int                   `json:"admitted"`
	Rejected         int                   `json:"rejected"`
	IncidentsCreated int                   `json:"incidents_created"`
	ReportsCreated   int                   `json:"reports_created"`
	Failed           int                   `json:"failed"`
	Orphaned         int                   `json:"orphaned"`
	Reconciled       int                   `json:"reconciled"`
	ZonesDegraded    bool                  `json:"zones_degraded"`
	Reports          []*ReportResponse     `json:"reports"`
	Failures         []PassFailureResponse `json:"failures,omitempty"`
}
