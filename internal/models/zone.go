package models

import (
	"time"

	"github.com/google/uuid"
)

// ZoneType - тип зоны в терминах интерфейса управления зонами
type ZoneType string

const (
	ZoneTypeGeofenced  ZoneType = "geofenced"
	ZoneTypeHighRisk   ZoneType = "highRisk"
	ZoneTypeMediumRisk ZoneType = "mediumRisk"
	ZoneTypeLowRisk    ZoneType = "lowRisk"
	ZoneTypeBonusArea  ZoneType = "bonusArea"
)

// RiskLevel - классификация риска зоны
type RiskLevel string

const (
	RiskRestricted RiskLevel = "restricted"
	RiskMonitored  RiskLevel = "monitored"
	RiskDanger     RiskLevel = "danger"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ZoneSchedule - расписание активности зоны. Пустой ActiveDays означает "каждый день".
type ZoneSchedule struct {
	AllDay     bool           `json:"allDay"`
	StartTime  string         `json:"startTime,omitempty"`
	EndTime    string         `json:"endTime,omitempty"`
	ActiveDays []time.Weekday `json:"activeDays,omitempty"`
}

type ZoneNotifications struct {
	AlertOnEnter bool `json:"alertOnEnter"`
	AlertOnExit  bool `json:"alertOnExit"`
	AutoEscalate bool `json:"autoEscalate"`
}

// Zone - доменное представление геозоны (форма, которую использует UI)
type Zone struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Lat           float64           `json:"lat"`
	Lng           float64           `json:"lng"`
	Radius        float64           `json:"radius"`
	Polygon       []LatLng          `json:"polygon,omitempty"`
	Type          ZoneType          `json:"type"`
	RiskLevel     RiskLevel         `json:"riskLevel"`
	PenaltyBonus  int               `json:"penaltyBonus"`
	IsActive      bool              `json:"isActive"`
	Schedule      ZoneSchedule      `json:"schedule"`
	Notifications ZoneNotifications `json:"notifications"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// IsHighRisk сообщает, учитывается ли зона правилом длительного пребывания
func (z *Zone) IsHighRisk() bool {
	return z.RiskLevel == RiskDanger || z.RiskLevel == RiskRestricted || z.Type == ZoneTypeHighRisk
}

// StorePoint - вершина полигона в формате хранилища
type StorePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ZoneRecord - плоское представление геозоны, совпадающее с колонками таблицы geofence_zones
type ZoneRecord struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Radius       float64      `json:"radius"`
	Polygon      []StorePoint `json:"polygon"`
	ZoneType     string       `json:"zone_type"`
	RiskLevel    string       `json:"risk_level"`
	PenaltyBonus int          `json:"penalty_bonus"`
	IsActive     bool         `json:"is_active"`
	AllDay       bool         `json:"all_day"`
	StartTime    string       `json:"start_time"`
	EndTime      string       `json:"end_time"`
	ActiveDays   []int32      `json:"active_days"`
	AlertOnEnter bool         `json:"alert_on_enter"`
	AlertOnExit  bool         `json:"alert_on_exit"`
	AutoEscalate bool         `json:"auto_escalate"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ToDomainZone преобразует запись хранилища в доменную модель
func ToDomainZone(r *ZoneRecord) *Zone {
	z := &Zone{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Lat:          r.Latitude,
		Lng:          r.Longitude,
		Radius:       r.Radius,
		Type:         ZoneType(r.ZoneType),
		RiskLevel:    RiskLevel(r.RiskLevel),
		PenaltyBonus: r.PenaltyBonus,
		IsActive:     r.IsActive,
		Schedule: ZoneSchedule{
			AllDay:    r.AllDay,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		},
		Notifications: ZoneNotifications{
			AlertOnEnter: r.AlertOnEnter,
			AlertOnExit:  r.AlertOnExit,
			AutoEscalate: r.AutoEscalate,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Polygon != nil {
		z.Polygon = make([]LatLng, len(r.Polygon))
		for i, p := range r.Polygon {
			z.Polygon[i] = LatLng{Lat: p.Latitude, Lng: p.Longitude}
		}
	}
	if r.ActiveDays != nil {
		z.Schedule.ActiveDays = make([]time.Weekday, len(r.ActiveDays))
		for i, d := range r.ActiveDays {
			z.Schedule.ActiveDays[i] = time.Weekday(d)
		}
	}
	return z
}

// ToStoreZone преобразует доменную модель в запись хранилища
func ToStoreZone(z *Zone) *ZoneRecord {
	r := &ZoneRecord{
		ID:           z.ID,
		Name:         z.Name,
		Description:  z.Description,
		Latitude:     z.Lat,
		Longitude:    z.Lng,
		Radius:       z.Radius,
		ZoneType:     string(z.Type),
		RiskLevel:    string(z.RiskLevel),
		PenaltyBonus: z.PenaltyBonus,
		IsActive:     z.IsActive,
		AllDay:       z.Schedule.AllDay,
		StartTime:    z.Schedule.StartTime,
		EndTime:      z.Schedule.EndTime,
		AlertOnEnter: z.Notifications.AlertOnEnter,
		AlertOnExit:  z.Notifications.AlertOnExit,
		AutoEscalate: z.Notifications.AutoEscalate,
		CreatedAt:    z.CreatedAt,
		UpdatedAt:    z.UpdatedAt,
	}
	if z.Polygon != nil {
		r.Polygon = make([]StorePoint, len(z.Polygon))
		for i, p := range z.Polygon {
			r.Polygon[i] = StorePoint{Latitude: p.Lat, Longitude: p.Lng}
		}
	}
	if z.Schedule.ActiveDays != nil {
		r.ActiveDays = make([]int32, len(z.Schedule.ActiveDays))
		for i, d := range z.Schedule.ActiveDays {
			r.ActiveDays[i] = int32(d)
		}
	}
	return r
}

// ToDomainZones преобразует слайс записей хранилища
func ToDomainZones(records []*ZoneRecord) []*Zone {
	zones := make([]*Zone, len(records))
	for i, r := range records {
		zones[i] = ToDomainZone(r)
	}
	return zones
}
