package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleZoneRecord() *ZoneRecord {
	created := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	return &ZoneRecord{
		ID:           uuid.New(),
		Name:         "Кедарнатх - оползневой участок",
		Description:  "Закрыт после 18:00",
		Latitude:     30.7346,
		Longitude:    79.0669,
		Radius:       750,
		ZoneType:     string(ZoneTypeHighRisk),
		RiskLevel:    string(RiskDanger),
		PenaltyBonus: -20,
		IsActive:     true,
		AllDay:       false,
		StartTime:    "18:00",
		EndTime:      "06:00",
		ActiveDays:   []int32{0, 5, 6},
		AlertOnEnter: true,
		AutoEscalate: true,
		CreatedAt:    created,
		UpdatedAt:    created.Add(time.Hour),
	}
}

func TestZoneRoundTrip_Circle(t *testing.T) {
	record := sampleZoneRecord()

	once := ToStoreZone(ToDomainZone(record))
	twice := ToStoreZone(ToDomainZone(once))

	assert.Equal(t, record, once)
	assert.Equal(t, once, twice)
}

func TestZoneRoundTrip_Polygon(t *testing.T) {
	record := sampleZoneRecord()
	record.Radius = 0
	record.Polygon = []StorePoint{
		{Latitude: 30.0, Longitude: 79.0},
		{Latitude: 30.1, Longitude: 79.0},
		{Latitude: 30.1, Longitude: 79.1},
	}
	record.ActiveDays = nil

	domain := ToDomainZone(record)
	require.Len(t, domain.Polygon, 3)
	assert.Equal(t, LatLng{Lat: 30.1, Lng: 79.1}, domain.Polygon[2])
	assert.Nil(t, domain.Schedule.ActiveDays)

	assert.Equal(t, record, ToStoreZone(domain))
}

func TestZoneRoundTrip_FromDomain(t *testing.T) {
	zone := &Zone{
		ID:           uuid.New(),
		Name:         "Бонусная зона у смотровой площадки",
		Lat:          27.17,
		Lng:          78.04,
		Radius:       120,
		Type:         ZoneTypeBonusArea,
		RiskLevel:    RiskMonitored,
		PenaltyBonus: 15,
		IsActive:     true,
		Schedule: ZoneSchedule{
			AllDay:     true,
			ActiveDays: []time.Weekday{time.Monday, time.Tuesday},
		},
		Notifications: ZoneNotifications{AlertOnExit: true},
	}

	store := ToStoreZone(zone)
	assert.Equal(t, []int32{1, 2}, store.ActiveDays)
	assert.Equal(t, "bonusArea", store.ZoneType)
	assert.Equal(t, store, ToStoreZone(ToDomainZone(store)))
	assert.Equal(t, zone, ToDomainZone(store))
}

func TestZone_IsHighRisk(t *testing.T) {
	tests := []struct {
		name string
		zone Zone
		want bool
	}{
		{"danger level", Zone{RiskLevel: RiskDanger, Type: ZoneTypeGeofenced}, true},
		{"restricted level", Zone{RiskLevel: RiskRestricted, Type: ZoneTypeLowRisk}, true},
		{"high risk type", Zone{RiskLevel: RiskMonitored, Type: ZoneTypeHighRisk}, true},
		{"monitored medium", Zone{RiskLevel: RiskMonitored, Type: ZoneTypeMediumRisk}, false},
		{"bonus area", Zone{Type: ZoneTypeBonusArea}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.zone.IsHighRisk())
		})
	}
}
