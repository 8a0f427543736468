package detection

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/models"
)

const earthRadiusMeters = 6371000.0

// ZoneActiveAt сообщает, действует ли зона в момент now с учетом расписания.
// Окно времени может переходить через полночь (например 22:00-06:00).
func ZoneActiveAt(z *models.Zone, now time.Time) bool {
	if !z.IsActive {
		return false
	}
	if len(z.Schedule.ActiveDays) > 0 && !slices.Contains(z.Schedule.ActiveDays, now.Weekday()) {
		return false
	}
	if z.Schedule.AllDay {
		return true
	}

	start, okStart := parseClock(z.Schedule.StartTime)
	end, okEnd := parseClock(z.Schedule.EndTime)
	if !okStart || !okEnd {
		// без корректного окна зона считается действующей весь день
		return true
	}

	minute := now.Hour()*60 + now.Minute()
	if start <= end {
		return minute >= start && minute < end
	}
	return minute >= start || minute < end
}

// ZoneContains проверяет попадание точки в зону: полигон, если он задан, иначе круг
func ZoneContains(z *models.Zone, lat, lng float64) bool {
	if len(z.Polygon) >= 3 {
		return polygonContains(z.Polygon, lat, lng)
	}
	if z.Radius <= 0 {
		return false
	}
	return HaversineMeters(z.Lat, z.Lng, lat, lng) <= z.Radius
}

// HaversineMeters возвращает расстояние между двумя точками по большой окружности
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// polygonContains - ray casting по плоским координатам
func polygonContains(poly []models.LatLng, lat, lng float64) bool {
	inside := false
	j := len(poly) - 1
	for i := range poly {
		pi, pj := poly[i], poly[j]
		if (pi.Lat > lat) != (pj.Lat > lat) &&
			lng < (pj.Lng-pi.Lng)*(lat-pi.Lat)/(pj.Lat-pi.Lat)+pi.Lng {
			inside = !inside
		}
		j = i
	}
	return inside
}

func parseClock(s string) (int, bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
