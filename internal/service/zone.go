package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=zone.go -destination=mocks/mock_zone_service.go -package=mocks

// ZoneService определяет контракт бизнес-логики управления геозонами
type ZoneService interface {
	CreateZone(ctx context.Context, zone *models.Zone) error
	GetZone(ctx context.Context, id uuid.UUID) (*models.Zone, error)
	UpdateZone(ctx context.Context, zone *models.Zone) error
	DeleteZone(ctx context.Context, id uuid.UUID) error
	ListZones(ctx context.Context) ([]*models.Zone, error)
	// ActiveZones никогда не возвращает ошибку: при недоступности бд используется
	// сохраненный снимок, а второй результат сообщает о деградации
	ActiveZones(ctx context.Context) ([]*models.Zone, bool)
}

type zoneService struct {
	repo   ZoneRepository
	cache  ZoneCache
	logger *logrus.Logger

	mu        sync.RWMutex
	lastKnown []*models.ZoneRecord
}

func NewZoneService(repo ZoneRepository, cache ZoneCache, logger *logrus.Logger) ZoneService {
	return &zoneService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// CreateZone создает геозону
func (s *zoneService) CreateZone(ctx context.Context, zone *models.Zone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "CreateZone",
		"name":    zone.Name,
	})
	log.Info("Attempting to create a new zone")

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Zone validation failed")
		return err
	}

	record := models.ToStoreZone(zone)
	if err := s.repo.Create(ctx, record); err != nil {
		log.WithError(err).Error("Failed to create zone in repository")
		return fmt.Errorf("service: could not create zone: %w", err)
	}
	*zone = *models.ToDomainZone(record)

	log.WithField("zone_id", zone.ID).Info("Zone created successfully")
	return nil
}

// GetZone получает геозону по ID
func (s *zoneService) GetZone(ctx context.Context, id uuid.UUID) (*models.Zone, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "zone",
			"method":  "GetZone",
			"zone_id": id,
		}).WithError(err).Warn("Failed to get zone from repository")
		return nil, fmt.Errorf("service: could not get zone: %w", err)
	}
	return models.ToDomainZone(record), nil
}

// UpdateZone обновляет существующую геозону
func (s *zoneService) UpdateZone(ctx context.Context, zone *models.Zone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "UpdateZone",
		"zone_id": zone.ID,
	})
	log.Info("Attempting to update zone")

	if err := validateZone(zone); err != nil {
		log.WithError(err).Warn("Zone validation failed")
		return err
	}

	record := models.ToStoreZone(zone)
	if err := s.repo.Update(ctx, record); err != nil {
		log.WithError(err).Error("Failed to update zone in repository")
		return fmt.Errorf("service: could not update zone: %w", err)
	}
	*zone = *models.ToDomainZone(record)

	log.Info("Zone updated successfully")
	return nil
}

// DeleteZone удаляет геозону
func (s *zoneService) DeleteZone(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "DeleteZone",
		"zone_id": id,
	})

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete zone in repository")
		return fmt.Errorf("service: could not delete zone: %w", err)
	}

	log.Info("Zone deleted successfully")
	return nil
}

// ListZones возвращает все геозоны
func (s *zoneService) ListZones(ctx context.Context) ([]*models.Zone, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "zone",
			"method":  "ListZones",
		}).WithError(err).Error("Failed to list zones from repository")
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	return models.ToDomainZones(records), nil
}

// ActiveZones читает активные зоны из бд и обновляет снимок в кеше.
// При ошибке чтения возвращает снимок из Redis, затем из памяти процесса.
func (s *zoneService) ActiveZones(ctx context.Context) ([]*models.Zone, bool) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "ActiveZones",
	})

	records, err := s.repo.ListActive(ctx)
	if err == nil {
		s.mu.Lock()
		s.lastKnown = records
		s.mu.Unlock()

		if cacheErr := s.cache.SaveZones(ctx, records); cacheErr != nil {
			log.WithError(cacheErr).Warn("Failed to refresh zone snapshot in cache")
		}
		return models.ToDomainZones(records), false
	}

	log.WithError(err).Warn("Zone store unreachable, falling back to cached zones")

	cached, cacheErr := s.cache.LoadZones(ctx)
	if cacheErr == nil && cached != nil {
		log.WithField("count", len(cached)).Info("Using zone snapshot from cache")
		return models.ToDomainZones(cached), true
	}
	if cacheErr != nil {
		log.WithError(cacheErr).Warn("Failed to load zone snapshot from cache")
	}

	s.mu.RLock()
	local := s.lastKnown
	s.mu.RUnlock()
	if local == nil {
		log.Warn("No zone data available, high-risk zone rule is disabled for this pass")
	}
	return models.ToDomainZones(local), true
}

func validateZone(zone *models.Zone) error {
	if len(zone.Polygon) >= 3 || zone.Radius > 0 {
		return nil
	}
	return ErrInvalidZone
}
