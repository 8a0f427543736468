package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestZoneService - вспомогательная функция для создания инстанса сервиса с моками
func newTestZoneService(t *testing.T) (ZoneService, *mocks.MockZoneRepository, *mocks.MockZoneCache) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockZoneRepository(ctrl)
	cache := mocks.NewMockZoneCache(ctrl)
	return NewZoneService(repo, cache, testLogger()), repo, cache
}

func dangerRecord(name string) *models.ZoneRecord {
	return &models.ZoneRecord{
		ID:        uuid.New(),
		Name:      name,
		Latitude:  30.7346,
		Longitude: 79.0669,
		Radius:    1500,
		ZoneType:  string(models.ZoneTypeHighRisk),
		RiskLevel: string(models.RiskDanger),
		IsActive:  true,
		AllDay:    true,
	}
}

func TestZoneService_CreateZone(t *testing.T) {
	t.Run("успешное создание", func(t *testing.T) {
		// Подготовка
		svc, repo, _ := newTestZoneService(t)
		zone := &models.Zone{
			Name:      "Kedarnath trek",
			Lat:       30.7346,
			Lng:       79.0669,
			Radius:    2000,
			Type:      models.ZoneTypeHighRisk,
			RiskLevel: models.RiskDanger,
			IsActive:  true,
			Schedule:  models.ZoneSchedule{AllDay: true},
		}
		newID := uuid.New()

		// Ожидания
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *models.ZoneRecord) error {
				assert.Equal(t, "Kedarnath trek", rec.Name)
				assert.Equal(t, "highRisk", rec.ZoneType)
				rec.ID = newID
				rec.CreatedAt = time.Now()
				return nil
			}).Times(1)

		// Действие
		err := svc.CreateZone(context.Background(), zone)

		// Проверки
		require.NoError(t, err)
		assert.Equal(t, newID, zone.ID)
		assert.False(t, zone.CreatedAt.IsZero())
	})

	t.Run("ни радиуса, ни полигона", func(t *testing.T) {
		svc, repo, _ := newTestZoneService(t)
		zone := &models.Zone{
			Name:    "broken",
			Polygon: []models.LatLng{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}},
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		err := svc.CreateZone(context.Background(), zone)

		assert.ErrorIs(t, err, ErrInvalidZone)
	})

	t.Run("ошибка репозитория", func(t *testing.T) {
		svc, repo, _ := newTestZoneService(t)
		zone := &models.Zone{Name: "circle", Radius: 100}
		dbErr := errors.New("db error")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr).Times(1)

		err := svc.CreateZone(context.Background(), zone)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestZoneService_GetZone(t *testing.T) {
	t.Run("зона найдена", func(t *testing.T) {
		svc, repo, _ := newTestZoneService(t)
		rec := dangerRecord("Valley of Flowers")

		repo.EXPECT().GetByID(gomock.Any(), rec.ID).Return(rec, nil).Times(1)

		zone, err := svc.GetZone(context.Background(), rec.ID)

		require.NoError(t, err)
		assert.Equal(t, rec.ID, zone.ID)
		assert.Equal(t, models.RiskDanger, zone.RiskLevel)
		assert.True(t, zone.IsHighRisk())
	})

	t.Run("зона не найдена", func(t *testing.T) {
		svc, repo, _ := newTestZoneService(t)
		id := uuid.New()

		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, ErrNotFound).Times(1)

		zone, err := svc.GetZone(context.Background(), id)

		assert.Nil(t, zone)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestZoneService_UpdateZone(t *testing.T) {
	svc, repo, _ := newTestZoneService(t)
	zone := &models.Zone{
		ID:      uuid.New(),
		Name:    "Triangle",
		Polygon: []models.LatLng{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 0}},
	}

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *models.ZoneRecord) error {
			assert.Equal(t, zone.ID, rec.ID)
			assert.Len(t, rec.Polygon, 3)
			return nil
		}).Times(1)

	err := svc.UpdateZone(context.Background(), zone)

	require.NoError(t, err)
	assert.Len(t, zone.Polygon, 3)
}

func TestZoneService_DeleteZone(t *testing.T) {
	svc, repo, _ := newTestZoneService(t)
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(ErrNotFound).Times(1)

	err := svc.DeleteZone(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestZoneService_ListZones(t *testing.T) {
	svc, repo, _ := newTestZoneService(t)
	inactive := dangerRecord("Closed pass")
	inactive.IsActive = false

	repo.EXPECT().List(gomock.Any()).Return([]*models.ZoneRecord{dangerRecord("A"), inactive}, nil).Times(1)

	zones, err := svc.ListZones(context.Background())

	require.NoError(t, err)
	assert.Len(t, zones, 2)
}

func TestZoneService_ActiveZones(t *testing.T) {
	t.Run("чтение из бд обновляет снимок", func(t *testing.T) {
		svc, repo, cache := newTestZoneService(t)
		records := []*models.ZoneRecord{dangerRecord("A")}

		repo.EXPECT().ListActive(gomock.Any()).Return(records, nil).Times(1)
		cache.EXPECT().SaveZones(gomock.Any(), records).Return(nil).Times(1)

		zones, degraded := svc.ActiveZones(context.Background())

		assert.False(t, degraded)
		require.Len(t, zones, 1)
		assert.Equal(t, "A", zones[0].Name)
	})

	t.Run("ошибка записи в кеш не влияет на результат", func(t *testing.T) {
		svc, repo, cache := newTestZoneService(t)

		repo.EXPECT().ListActive(gomock.Any()).Return([]*models.ZoneRecord{dangerRecord("A")}, nil).Times(1)
		cache.EXPECT().SaveZones(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

		zones, degraded := svc.ActiveZones(context.Background())

		assert.False(t, degraded)
		assert.Len(t, zones, 1)
	})

	t.Run("бд недоступна, снимок из кеша", func(t *testing.T) {
		svc, repo, cache := newTestZoneService(t)

		repo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)
		cache.EXPECT().LoadZones(gomock.Any()).Return([]*models.ZoneRecord{dangerRecord("cached")}, nil).Times(1)

		zones, degraded := svc.ActiveZones(context.Background())

		assert.True(t, degraded)
		require.Len(t, zones, 1)
		assert.Equal(t, "cached", zones[0].Name)
	})

	t.Run("бд и кеш недоступны, последний снимок из памяти", func(t *testing.T) {
		svc, repo, cache := newTestZoneService(t)

		gomock.InOrder(
			repo.EXPECT().ListActive(gomock.Any()).Return([]*models.ZoneRecord{dangerRecord("remembered")}, nil),
			repo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("connection refused")),
		)
		cache.EXPECT().SaveZones(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		cache.EXPECT().LoadZones(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)

		_, degraded := svc.ActiveZones(context.Background())
		require.False(t, degraded)

		zones, degraded := svc.ActiveZones(context.Background())

		assert.True(t, degraded)
		require.Len(t, zones, 1)
		assert.Equal(t, "remembered", zones[0].Name)
	})

	t.Run("нет никаких данных о зонах", func(t *testing.T) {
		svc, repo, cache := newTestZoneService(t)

		repo.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)
		cache.EXPECT().LoadZones(gomock.Any()).Return(nil, nil).Times(1)

		zones, degraded := svc.ActiveZones(context.Background())

		assert.True(t, degraded)
		assert.Empty(t, zones)
	})
}
