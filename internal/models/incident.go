package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - тип инцидента, выводится из причины срабатывания правила
type IncidentType string

const (
	IncidentMissingPerson IncidentType = "missing_person"
	IncidentSOSSignal     IncidentType = "sos_signal"
	IncidentHighRiskZone  IncidentType = "high_risk_zone"
	IncidentMissedCheckIn IncidentType = "missed_check_in"
)

const (
	IncidentStatusOpen       = "open"
	IncidentStatusInProgress = "in_progress"
	IncidentStatusResolved   = "resolved"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ReportedBySystem помечает записи, созданные движком автоматически
const ReportedBySystem = "system"

type Incident struct {
	ID          uuid.UUID    `json:"id"`
	Type        IncidentType `json:"type"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	Severity    Severity     `json:"severity"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	TouristIDs  []string     `json:"tourist_ids"`
	ZoneID      *uuid.UUID   `json:"zone_id,omitempty"`
	ReportedBy  string       `json:"reported_by"`
	EFIRCreated bool         `json:"efir_created"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// PrimaryTouristID возвращает первого туриста, к которому относится инцидент
func (i *Incident) PrimaryTouristID() string {
	if len(i.TouristIDs) == 0 {
		return ""
	}
	return i.TouristIDs[0]
}
