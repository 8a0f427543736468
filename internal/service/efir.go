package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// FIRNumberFunc генерирует номер FIR для момента now
type FIRNumberFunc func(now time.Time) string

// NewFIRNumber возвращает номер вида FIR-YYYYMMDD-NNNN со случайным четырехзначным суффиксом.
// Суффикс не гарантирует уникальность, ее обеспечивает уникальный индекс в бд.
func NewFIRNumber(now time.Time) string {
	return fmt.Sprintf("FIR-%s-%04d", now.UTC().Format("20060102"), rand.IntN(10000))
}

// generateReport создает отчет E-FIR для инцидента. При коллизии номера FIR
// генерирует новый номер, не более maxAttempts раз.
func (s *detectionService) generateReport(ctx context.Context, incident *models.Incident, now time.Time) (*models.Report, error) {
	touristID := incident.PrimaryTouristID()
	log := s.logger.WithFields(logrus.Fields{
		"service":     "detection",
		"method":      "generateReport",
		"incident_id": incident.ID,
		"tourist_id":  touristID,
	})

	for attempt := 1; attempt <= s.maxFIRAttempts; attempt++ {
		report := &models.Report{
			ID:                       uuid.New(),
			FIRNumber:                s.firNumber(now),
			ReportType:               models.ReportTypeEFIR,
			TouristID:                touristID,
			IncidentID:               incident.ID,
			Status:                   models.ReportStatusOpen,
			Priority:                 models.SeverityHigh,
			Summary:                  reportSummary(incident),
			Details:                  reportDetails(incident),
			GeneratedBy:              models.ReportedBySystem,
			IsAutomaticallyGenerated: true,
			CreatedAt:                now,
			UpdatedAt:                now,
		}

		err := s.reports.Create(ctx, report)
		if err == nil {
			if markErr := s.incidents.MarkReportGenerated(ctx, incident.ID); markErr != nil {
				log.WithError(markErr).Warn("Report created but incident was not marked as having an E-FIR")
			}
			log.WithField("fir_number", report.FIRNumber).Info("E-FIR generated")
			return report, nil
		}
		if errors.Is(err, ErrFIRNumberTaken) {
			log.WithField("fir_number", report.FIRNumber).WithField("attempt", attempt).Warn("FIR number collision, regenerating")
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: no free number after %d attempts", ErrFIRNumberTaken, s.maxFIRAttempts)
}

func reportSummary(incident *models.Incident) string {
	kind := strings.ReplaceAll(string(incident.Type), "_", " ")
	return fmt.Sprintf("Automatic E-FIR: %s reported for tourist %s", kind, incident.PrimaryTouristID())
}

func reportDetails(incident *models.Incident) string {
	var b strings.Builder
	b.WriteString(incident.Description)
	fmt.Fprintf(&b, "\nLast known location: %.6f, %.6f", incident.Latitude, incident.Longitude)
	if incident.ZoneID != nil {
		fmt.Fprintf(&b, "\nZone: %s", incident.ZoneID)
	}
	fmt.Fprintf(&b, "\nIncident: %s (severity %s), detected at %s",
		incident.ID, incident.Severity, incident.CreatedAt.UTC().Format(time.RFC3339))
	return b.String()
}
