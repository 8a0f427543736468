package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report_service.go -package=mocks

// ReportService - чтение сгенерированных отчетов E-FIR
type ReportService interface {
	ListReports(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error)
}

type reportService struct {
	repo   ReportRepository
	logger *logrus.Logger
}

func NewReportService(repo ReportRepository, logger *logrus.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// ListReports возвращает список отчетов с пагинацией
func (s *reportService) ListReports(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "ListReports",
		"tourist_id": filter.TouristID,
		"status":     filter.Status,
		"page":       filter.Page,
		"page_size":  filter.PageSize,
	})

	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Debug("Reports listed successfully")
	return reports, nil
}

// GetReport получает отчет по ID
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service":   "report",
			"method":    "GetReport",
			"report_id": id,
		}).WithError(err).Warn("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	return report, nil
}
