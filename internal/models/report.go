package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportTypeEFIR = "e-fir"

	ReportStatusOpen       = "open"
	ReportStatusInProgress = "in-progress"
	ReportStatusResolved   = "resolved"
	ReportStatusClosed     = "closed"
)

// OpenReportStatuses - статусы, при которых отчет считается незакрытым.
// Для одного туриста может существовать не более одного такого отчета.
var OpenReportStatuses = []string{ReportStatusOpen, ReportStatusInProgress}

// Report - электронный FIR (E-FIR)
type Report struct {
	ID                       uuid.UUID `json:"id"`
	FIRNumber                string    `json:"fir_number"`
	ReportType               string    `json:"report_type"`
	TouristID                string    `json:"tourist_id"`
	IncidentID               uuid.UUID `json:"incident_id"`
	Status                   string    `json:"status"`
	Priority                 Severity  `json:"priority"`
	Summary                  string    `json:"summary"`
	Details                  string    `json:"details"`
	GeneratedBy              string    `json:"generated_by"`
	IsAutomaticallyGenerated bool      `json:"is_automatically_generated"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func (r *Report) IsOpen() bool {
	return r.Status == ReportStatusOpen || r.Status == ReportStatusInProgress
}

// ReportFilter - параметры выборки отчетов
type ReportFilter struct {
	TouristID string
	Status    string
	Page      int
	PageSize  int
}
