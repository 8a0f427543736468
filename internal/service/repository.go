package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// TouristRepository - чтение состояния туристов, которое ведет сервис телеметрии
type TouristRepository interface {
	ListActive(ctx context.Context) ([]*models.Tourist, error)
}

// ZoneRepository определяет контракт для работы с бд геозон
type ZoneRepository interface {
	Create(ctx context.Context, zone *models.ZoneRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ZoneRecord, error)
	Update(ctx context.Context, zone *models.ZoneRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.ZoneRecord, error)
	ListActive(ctx context.Context) ([]*models.ZoneRecord, error)
}

// ZoneCache хранит последний успешно прочитанный снимок активных зон
type ZoneCache interface {
	SaveZones(ctx context.Context, zones []*models.ZoneRecord) error
	// LoadZones возвращает nil, nil если снимка нет
	LoadZones(ctx context.Context) ([]*models.ZoneRecord, error)
}

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	MarkReportGenerated(ctx context.Context, id uuid.UUID) error
	Resolve(ctx context.Context, id uuid.UUID) error
	// ListOrphaned возвращает автоматические инциденты без отчета,
	// у туристов которых нет открытого отчета
	ListOrphaned(ctx context.Context, limit int) ([]*models.Incident, error)
}

// ReportRepository определяет контракт для работы с бд отчетов E-FIR
type ReportRepository interface {
	// Create возвращает ErrFIRNumberTaken или ErrOpenReportExists при нарушении уникальности
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	List(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error)
	ListOpenByTourist(ctx context.Context, touristID string) ([]*models.Report, error)
}

// PassLock - распределенная блокировка, не дающая двум проходам выполняться одновременно
type PassLock interface {
	Acquire(ctx context.Context, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, token string) error
}
