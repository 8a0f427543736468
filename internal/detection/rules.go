// Package detection содержит правила обнаружения опасных ситуаций.
// Все функции пакета чистые: они работают только со снимками туристов и зон
// и не обращаются ни к хранилищу, ни к часам.
package detection

import (
	"time"

	"github.com/shenikar/tourist_safety_system/internal/models"
)

// Reason - код причины, по которой турист признан находящимся в опасности
type Reason string

const (
	ReasonMissing       Reason = "missing"
	ReasonSOS           Reason = "sos"
	ReasonHighRiskDwell Reason = "high_risk_zone"
	ReasonMissedCheckIn Reason = "missed_check_in"
)

const (
	DefaultMissingAfter = 24 * time.Hour
	DefaultDwellLimit   = 2 * time.Hour
)

// IncidentType возвращает тип инцидента для причины
func (r Reason) IncidentType() models.IncidentType {
	switch r {
	case ReasonMissing:
		return models.IncidentMissingPerson
	case ReasonSOS:
		return models.IncidentSOSSignal
	case ReasonHighRiskDwell:
		return models.IncidentHighRiskZone
	default:
		return models.IncidentMissedCheckIn
	}
}

// Describe возвращает человекочитаемое описание причины
func (r Reason) Describe() string {
	switch r {
	case ReasonMissing:
		return "no telemetry received for over a day, tourist may be missing"
	case ReasonSOS:
		return "SOS signal is active"
	case ReasonHighRiskDwell:
		return "has remained inside a high-risk zone beyond the allowed dwell time"
	default:
		return "missed a scheduled safety check-in"
	}
}

// Candidate - турист, удовлетворивший одному из правил
type Candidate struct {
	Tourist *models.Tourist
	Reason  Reason
	// Zone заполняется только для ReasonHighRiskDwell
	Zone *models.Zone
}

// Rules - пороги правил обнаружения
type Rules struct {
	MissingAfter time.Duration
	DwellLimit   time.Duration
}

// DefaultRules возвращает пороги по умолчанию: 24 часа без телеметрии и 2 часа в зоне риска
func DefaultRules() Rules {
	return Rules{MissingAfter: DefaultMissingAfter, DwellLimit: DefaultDwellLimit}
}

// Evaluate проверяет каждого активного туриста по правилам в фиксированном порядке:
// пропажа, SOS, пребывание в зоне риска, пропущенная отметка.
// Срабатывает первое подходящее правило, поэтому на одного туриста приходится не более одного кандидата.
func (r Rules) Evaluate(tourists []*models.Tourist, zones []*models.Zone, now time.Time) []Candidate {
	highRisk := activeHighRiskZones(zones, now)

	candidates := make([]Candidate, 0)
	for _, t := range tourists {
		if t == nil || !t.IsActive() {
			continue
		}
		if c, ok := r.classify(t, highRisk, now); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func (r Rules) classify(t *models.Tourist, highRisk []*models.Zone, now time.Time) (Candidate, bool) {
	if now.Sub(t.LastTelemetryAt) > r.MissingAfter {
		return Candidate{Tourist: t, Reason: ReasonMissing}, true
	}
	if t.SOSActive {
		return Candidate{Tourist: t, Reason: ReasonSOS}, true
	}
	if t.InHighRiskZone && t.EnteredHighRiskZoneAt != nil && now.Sub(*t.EnteredHighRiskZoneAt) > r.DwellLimit {
		if zone := containingZone(highRisk, t.Latitude, t.Longitude); zone != nil {
			return Candidate{Tourist: t, Reason: ReasonHighRiskDwell, Zone: zone}, true
		}
	}
	if t.NextScheduledCheckIn != nil && !t.NextScheduledCheckIn.After(now) && t.LastCheckInStatus == models.CheckInStatusMissed {
		return Candidate{Tourist: t, Reason: ReasonMissedCheckIn}, true
	}
	return Candidate{}, false
}

func activeHighRiskZones(zones []*models.Zone, now time.Time) []*models.Zone {
	var out []*models.Zone
	for _, z := range zones {
		if z != nil && z.IsHighRisk() && ZoneActiveAt(z, now) {
			out = append(out, z)
		}
	}
	return out
}

func containingZone(zones []*models.Zone, lat, lng float64) *models.Zone {
	for _, z := range zones {
		if ZoneContains(z, lat, lng) {
			return z
		}
	}
	return nil
}
