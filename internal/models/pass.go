package models

import "time"

// Стадии конвейера обработки одного туриста
const (
	StageDedup     = "dedup"
	StageIncident  = "incident"
	StageReport    = "report"
	StageReconcile = "reconcile"
)

// PassFailure описывает сбой обработки одного туриста в рамках прохода
type PassFailure struct {
	TouristID  string `json:"tourist_id"`
	IncidentID string `json:"incident_id,omitempty"`
	Stage      string `json:"stage"`
	Error      string `json:"error"`
}

// PassResult - агрегированный результат одного прохода обнаружения
type PassResult struct {
	StartedAt        time.Time     `json:"started_at"`
	FinishedAt       time.Time     `json:"finished_at"`
	Evaluated        int           `json:"evaluated"`
	Candidates       int           `json:"candidates"`
	Admitted         int           `json:"admitted"`
	Rejected         int           `json:"rejected"`
	IncidentsCreated int           `json:"incidents_created"`
	ReportsCreated   int           `json:"reports_created"`
	Failed           int           `json:"failed"`
	Orphaned         int           `json:"orphaned"`
	Reconciled       int           `json:"reconciled"`
	ZonesDegraded    bool          `json:"zones_degraded"`
	Reports          []*Report     `json:"reports"`
	Failures         []PassFailure `json:"failures,omitempty"`
}
