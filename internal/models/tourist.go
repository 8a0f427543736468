package models

import "time"

const (
	TouristStatusActive   = "active"
	TouristStatusInactive = "inactive"

	CheckInStatusOK     = "ok"
	CheckInStatusMissed = "missed"
)

// Tourist - срез состояния туриста, который поддерживает внешний сервис телеметрии.
// Движок обнаружения только читает эти записи.
type Tourist struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Status                string     `json:"status"`
	LastTelemetryAt       time.Time  `json:"last_telemetry_at"`
	SOSActive             bool       `json:"sos_active"`
	InHighRiskZone        bool       `json:"in_high_risk_zone"`
	EnteredHighRiskZoneAt *time.Time `json:"entered_high_risk_zone_at,omitempty"`
	NextScheduledCheckIn  *time.Time `json:"next_scheduled_check_in,omitempty"`
	LastCheckInStatus     string     `json:"last_check_in_status"`
	Latitude              float64    `json:"latitude"`
	Longitude             float64    `json:"longitude"`
}

func (t *Tourist) IsActive() bool {
	return t.Status == TouristStatusActive
}
