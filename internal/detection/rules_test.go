package detection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC) // среда

func ptr(t time.Time) *time.Time { return &t }

// healthyTourist - активный турист, не подпадающий ни под одно правило
func healthyTourist(id string) *models.Tourist {
	return &models.Tourist{
		ID:                id,
		Name:              "Турист " + id,
		Status:            models.TouristStatusActive,
		LastTelemetryAt:   now.Add(-10 * time.Minute),
		LastCheckInStatus: models.CheckInStatusOK,
		Latitude:          30.7346,
		Longitude:         79.0669,
	}
}

func dangerZone() *models.Zone {
	return &models.Zone{
		ID:        uuid.New(),
		Name:      "Оползень",
		Lat:       30.7346,
		Lng:       79.0669,
		Radius:    500,
		Type:      models.ZoneTypeHighRisk,
		RiskLevel: models.RiskDanger,
		IsActive:  true,
		Schedule:  models.ZoneSchedule{AllDay: true},
	}
}

func TestEvaluate_MissingBoundary(t *testing.T) {
	rules := DefaultRules()

	justOver := healthyTourist("T-1")
	justOver.LastTelemetryAt = now.Add(-24*time.Hour - time.Second)
	exactly := healthyTourist("T-2")
	exactly.LastTelemetryAt = now.Add(-24 * time.Hour)

	got := rules.Evaluate([]*models.Tourist{justOver, exactly}, nil, now)

	require.Len(t, got, 1)
	assert.Equal(t, "T-1", got[0].Tourist.ID)
	assert.Equal(t, ReasonMissing, got[0].Reason)
}

func TestEvaluate_PrecedenceMissingOverSOS(t *testing.T) {
	tourist := healthyTourist("T-1")
	tourist.LastTelemetryAt = now.Add(-48 * time.Hour)
	tourist.SOSActive = true
	tourist.LastCheckInStatus = models.CheckInStatusMissed
	tourist.NextScheduledCheckIn = ptr(now.Add(-time.Hour))

	got := DefaultRules().Evaluate([]*models.Tourist{tourist}, nil, now)

	require.Len(t, got, 1)
	assert.Equal(t, ReasonMissing, got[0].Reason)
}

func TestEvaluate_SOS(t *testing.T) {
	tourist := healthyTourist("T-1")
	tourist.SOSActive = true

	got := DefaultRules().Evaluate([]*models.Tourist{tourist}, nil, now)

	require.Len(t, got, 1)
	assert.Equal(t, ReasonSOS, got[0].Reason)
	assert.Equal(t, models.IncidentSOSSignal, got[0].Reason.IncidentType())
	assert.Nil(t, got[0].Zone)
}

func TestEvaluate_InactiveIgnored(t *testing.T) {
	tourist := healthyTourist("T-1")
	tourist.Status = models.TouristStatusInactive
	tourist.SOSActive = true
	tourist.LastTelemetryAt = now.Add(-72 * time.Hour)

	got := DefaultRules().Evaluate([]*models.Tourist{tourist, nil}, nil, now)

	assert.Empty(t, got)
}

func TestEvaluate_HighRiskDwell(t *testing.T) {
	zone := dangerZone()

	long := healthyTourist("T-1")
	long.InHighRiskZone = true
	long.EnteredHighRiskZoneAt = ptr(now.Add(-2*time.Hour - time.Minute))

	short := healthyTourist("T-2")
	short.InHighRiskZone = true
	short.EnteredHighRiskZoneAt = ptr(now.Add(-2 * time.Hour))

	got := DefaultRules().Evaluate([]*models.Tourist{long, short}, []*models.Zone{zone}, now)

	require.Len(t, got, 1)
	assert.Equal(t, "T-1", got[0].Tourist.ID)
	assert.Equal(t, ReasonHighRiskDwell, got[0].Reason)
	assert.Equal(t, zone, got[0].Zone)
}

func TestEvaluate_HighRiskDwell_RequiresZoneData(t *testing.T) {
	tourist := healthyTourist("T-1")
	tourist.InHighRiskZone = true
	tourist.EnteredHighRiskZoneAt = ptr(now.Add(-5 * time.Hour))

	inactive := dangerZone()
	inactive.IsActive = false
	lowRisk := dangerZone()
	lowRisk.RiskLevel = models.RiskMonitored
	lowRisk.Type = models.ZoneTypeLowRisk
	far := dangerZone()
	far.Lat, far.Lng = 27.17, 78.04

	rules := DefaultRules()
	assert.Empty(t, rules.Evaluate([]*models.Tourist{tourist}, nil, now))
	assert.Empty(t, rules.Evaluate([]*models.Tourist{tourist}, []*models.Zone{inactive, lowRisk, far}, now))
}

func TestEvaluate_MissedCheckIn(t *testing.T) {
	due := healthyTourist("T-1")
	due.NextScheduledCheckIn = ptr(now)
	due.LastCheckInStatus = models.CheckInStatusMissed

	notYet := healthyTourist("T-2")
	notYet.NextScheduledCheckIn = ptr(now.Add(time.Minute))
	notYet.LastCheckInStatus = models.CheckInStatusMissed

	ok := healthyTourist("T-3")
	ok.NextScheduledCheckIn = ptr(now.Add(-time.Hour))

	got := DefaultRules().Evaluate([]*models.Tourist{due, notYet, ok}, nil, now)

	require.Len(t, got, 1)
	assert.Equal(t, "T-1", got[0].Tourist.ID)
	assert.Equal(t, ReasonMissedCheckIn, got[0].Reason)
}

func TestEvaluate_CustomThresholds(t *testing.T) {
	tourist := healthyTourist("T-1")
	tourist.LastTelemetryAt = now.Add(-2 * time.Hour)

	rules := Rules{MissingAfter: time.Hour, DwellLimit: time.Hour}
	got := rules.Evaluate([]*models.Tourist{tourist}, nil, now)

	require.Len(t, got, 1)
	assert.Equal(t, ReasonMissing, got[0].Reason)
}

func TestZoneActiveAt(t *testing.T) {
	tests := []struct {
		name     string
		schedule models.ZoneSchedule
		want     bool
	}{
		{"all day", models.ZoneSchedule{AllDay: true}, true},
		{"inside window", models.ZoneSchedule{StartTime: "09:00", EndTime: "18:00"}, true},
		{"outside window", models.ZoneSchedule{StartTime: "18:00", EndTime: "20:00"}, false},
		{"window end exclusive", models.ZoneSchedule{StartTime: "08:00", EndTime: "14:30"}, false},
		{"overnight window miss", models.ZoneSchedule{StartTime: "22:00", EndTime: "06:00"}, false},
		{"overnight window hit", models.ZoneSchedule{StartTime: "12:00", EndTime: "02:00"}, true},
		{"wrong weekday", models.ZoneSchedule{AllDay: true, ActiveDays: []time.Weekday{time.Saturday, time.Sunday}}, false},
		{"matching weekday", models.ZoneSchedule{AllDay: true, ActiveDays: []time.Weekday{time.Wednesday}}, true},
		{"malformed window", models.ZoneSchedule{StartTime: "nine", EndTime: "18:00"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := dangerZone()
			zone.Schedule = tt.schedule
			assert.Equal(t, tt.want, ZoneActiveAt(zone, now))
		})
	}
}

func TestZoneContains(t *testing.T) {
	circle := dangerZone()
	assert.True(t, ZoneContains(circle, 30.7350, 79.0669))
	assert.False(t, ZoneContains(circle, 30.75, 79.0669))

	square := &models.Zone{
		Polygon: []models.LatLng{
			{Lat: 10, Lng: 10}, {Lat: 10, Lng: 20}, {Lat: 20, Lng: 20}, {Lat: 20, Lng: 10},
		},
	}
	assert.True(t, ZoneContains(square, 15, 15))
	assert.False(t, ZoneContains(square, 25, 15))

	assert.False(t, ZoneContains(&models.Zone{Lat: 1, Lng: 1}, 1, 1))
}

func TestHaversineMeters(t *testing.T) {
	// один градус широты - около 111.2 км
	d := HaversineMeters(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 50)
	assert.Zero(t, HaversineMeters(30, 79, 30, 79))
}
