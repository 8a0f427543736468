package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/detection"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/observability"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=detection.go -destination=mocks/mock_detection_service.go -package=mocks

// DetectionService - движок автоматического обнаружения опасностей и генерации E-FIR
type DetectionService interface {
	// RunPass выполняет один проход обнаружения по всем активным туристам
	RunPass(ctx context.Context, now time.Time) (*models.PassResult, error)
	// LastPass возвращает результат последнего завершенного прохода или nil
	LastPass() *models.PassResult
}

// DetectionDeps - зависимости движка обнаружения
type DetectionDeps struct {
	Tourists  TouristRepository
	Zones     ZoneService
	Incidents IncidentRepository
	Reports   ReportRepository
	// Lock может быть nil, тогда проходы сериализуются только внутри процесса
	Lock      PassLock
	Publisher webhook.EventPublisher
	Metrics   *observability.Metrics
	Logger    *logrus.Logger
}

type detectionService struct {
	tourists  TouristRepository
	zones     ZoneService
	incidents IncidentRepository
	reports   ReportRepository
	lock      PassLock
	publisher webhook.EventPublisher
	metrics   *observability.Metrics
	logger    *logrus.Logger

	rules            detection.Rules
	firNumber        FIRNumberFunc
	workers          int
	lockTTL          time.Duration
	maxFIRAttempts   int
	reconcileOrphans bool
	orphanBatchSize  int

	running atomic.Bool
	mu      sync.RWMutex
	last    *models.PassResult
}

func NewDetectionService(deps DetectionDeps, cfg *config.Config) DetectionService {
	return newDetectionService(deps, cfg, NewFIRNumber)
}

func newDetectionService(deps DetectionDeps, cfg *config.Config, firNumber FIRNumberFunc) *detectionService {
	return &detectionService{
		tourists:         deps.Tourists,
		zones:            deps.Zones,
		incidents:        deps.Incidents,
		reports:          deps.Reports,
		lock:             deps.Lock,
		publisher:        deps.Publisher,
		metrics:          deps.Metrics,
		logger:           deps.Logger,
		rules:            detection.Rules{MissingAfter: cfg.MissingThreshold, DwellLimit: cfg.DwellThreshold},
		firNumber:        firNumber,
		workers:          max(cfg.PassWorkers, 1),
		lockTTL:          cfg.PassLockTTL,
		maxFIRAttempts:   max(cfg.FIRMaxAttempts, 1),
		reconcileOrphans: cfg.ReconcileOrphans,
		orphanBatchSize:  cfg.OrphanBatchSize,
	}
}

// RunPass выполняет проход: чтение туристов и зон, сверка осиротевших инцидентов,
// оценка правил и конвейер dedup -> инцидент -> E-FIR для каждого кандидата.
// Ошибка возвращается только если проход не удалось выполнить целиком.
func (s *detectionService) RunPass(ctx context.Context, now time.Time) (*models.PassResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "detection",
		"method":  "RunPass",
		"now":     now,
	})

	if !s.running.CompareAndSwap(false, true) {
		log.Warn("Previous evaluation pass still running in this process, skipping")
		s.metrics.Passes.WithLabelValues("skipped").Inc()
		return nil, ErrPassInProgress
	}
	defer s.running.Store(false)

	if s.lock != nil {
		token, ok, err := s.lock.Acquire(ctx, s.lockTTL)
		switch {
		case err != nil:
			// уникальный индекс на открытые отчеты по-прежнему защищает инвариант
			log.WithError(err).Warn("Failed to acquire distributed pass lock, continuing with local guard only")
		case !ok:
			log.Warn("Evaluation pass is running on another instance, skipping")
			s.metrics.Passes.WithLabelValues("skipped").Inc()
			return nil, ErrPassInProgress
		default:
			defer func() {
				if err := s.lock.Release(context.WithoutCancel(ctx), token); err != nil {
					log.WithError(err).Warn("Failed to release distributed pass lock")
				}
			}()
		}
	}

	started := time.Now()
	result := &models.PassResult{StartedAt: now, Reports: make([]*models.Report, 0)}

	tourists, err := s.tourists.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load active tourists, aborting pass")
		s.metrics.Passes.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("service: could not load active tourists: %w", err)
	}

	zones, degraded := s.zones.ActiveZones(ctx)
	result.ZonesDegraded = degraded
	if degraded {
		s.metrics.ZonesDegraded.Set(1)
	} else {
		s.metrics.ZonesDegraded.Set(0)
	}

	// сверка идет после чтений: при их сбое проход не оставляет записанных отчетов
	if s.reconcileOrphans {
		s.reconcile(ctx, now, result)
	}

	candidates := s.rules.Evaluate(tourists, zones, now)
	result.Evaluated = len(tourists)
	result.Candidates = len(candidates)

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, c := range candidates {
		s.metrics.Detections.WithLabelValues(string(c.Reason)).Inc()
		g.Go(func() error {
			out := s.process(ctx, c, now)
			mu.Lock()
			out.apply(result)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	result.FinishedAt = now.Add(time.Since(started))
	s.metrics.PassDuration.Observe(time.Since(started).Seconds())
	s.metrics.Passes.WithLabelValues("completed").Inc()

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()

	log.WithFields(logrus.Fields{
		"evaluated":      result.Evaluated,
		"candidates":     result.Candidates,
		"admitted":       result.Admitted,
		"rejected":       result.Rejected,
		"reports":        result.ReportsCreated,
		"failed":         result.Failed,
		"orphaned":       result.Orphaned,
		"reconciled":     result.Reconciled,
		"zones_degraded": result.ZonesDegraded,
	}).Info("Evaluation pass completed")
	return result, nil
}

func (s *detectionService) LastPass() *models.PassResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// outcome - итог обработки одного кандидата
type outcome struct {
	rejected bool
	admitted bool
	incident bool
	report   *models.Report
	orphaned bool
	failure  *models.PassFailure
}

func (o outcome) apply(r *models.PassResult) {
	if o.rejected {
		r.Rejected++
	}
	if o.admitted {
		r.Admitted++
	}
	if o.incident {
		r.IncidentsCreated++
	}
	if o.report != nil {
		r.ReportsCreated++
		r.Reports = append(r.Reports, o.report)
	}
	if o.orphaned {
		r.Orphaned++
	}
	if o.failure != nil {
		r.Failed++
		r.Failures = append(r.Failures, *o.failure)
	}
}

// process выполняет конвейер одного туриста строго по порядку: dedup, инцидент, E-FIR
func (s *detectionService) process(ctx context.Context, c detection.Candidate, now time.Time) outcome {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "detection",
		"method":     "process",
		"tourist_id": c.Tourist.ID,
		"reason":     c.Reason,
	})

	open, err := s.reports.ListOpenByTourist(ctx, c.Tourist.ID)
	if err != nil {
		log.WithError(err).Error("Failed to check open reports")
		return s.fail(c.Tourist.ID, "", models.StageDedup, err)
	}
	if len(open) > 0 {
		log.WithField("fir_number", open[0].FIRNumber).Debug("Open report already exists, candidate rejected")
		s.metrics.Rejected.Inc()
		return outcome{rejected: true}
	}

	incident, err := s.recordIncident(ctx, c, now)
	if err != nil {
		log.WithError(err).Error("Failed to record incident")
		return s.fail(c.Tourist.ID, "", models.StageIncident, err)
	}
	s.metrics.Incidents.Inc()

	report, err := s.generateReport(ctx, incident, now)
	if errors.Is(err, ErrOpenReportExists) {
		// отчет появился между проверкой и вставкой, дубликат инцидента закрываем
		log.WithField("incident_id", incident.ID).Warn("Open report appeared concurrently, resolving duplicate incident")
		if resolveErr := s.incidents.Resolve(ctx, incident.ID); resolveErr != nil {
			log.WithError(resolveErr).Warn("Failed to resolve duplicate incident")
		}
		s.metrics.Rejected.Inc()
		return outcome{rejected: true, incident: true}
	}
	if err != nil {
		log.WithError(err).WithField("incident_id", incident.ID).Error("Failed to generate E-FIR, incident left without report")
		out := s.fail(c.Tourist.ID, incident.ID.String(), models.StageReport, err)
		out.admitted, out.incident, out.orphaned = true, true, true
		return out
	}
	s.metrics.Reports.Inc()

	s.publish(ctx, string(c.Reason), report, incident)
	return outcome{admitted: true, incident: true, report: report}
}

// recordIncident сохраняет инцидент для допущенного кандидата
func (s *detectionService) recordIncident(ctx context.Context, c detection.Candidate, now time.Time) (*models.Incident, error) {
	incident := &models.Incident{
		ID:          uuid.New(),
		Type:        c.Reason.IncidentType(),
		Description: fmt.Sprintf("%s (%s): %s", c.Tourist.Name, c.Tourist.ID, c.Reason.Describe()),
		Status:      models.IncidentStatusOpen,
		Severity:    models.SeverityHigh,
		Latitude:    c.Tourist.Latitude,
		Longitude:   c.Tourist.Longitude,
		TouristIDs:  []string{c.Tourist.ID},
		ReportedBy:  models.ReportedBySystem,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.Zone != nil {
		zoneID := c.Zone.ID
		incident.ZoneID = &zoneID
		incident.Description += fmt.Sprintf(" (zone %q)", c.Zone.Name)
	}

	if err := s.incidents.Create(ctx, incident); err != nil {
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	return incident, nil
}

// reconcile повторяет генерацию E-FIR для автоматических инцидентов, оставшихся без отчета
func (s *detectionService) reconcile(ctx context.Context, now time.Time, result *models.PassResult) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "detection",
		"method":  "reconcile",
	})

	orphans, err := s.incidents.ListOrphaned(ctx, s.orphanBatchSize)
	if err != nil {
		log.WithError(err).Warn("Failed to list incidents without E-FIR, skipping reconciliation")
		return
	}

	for _, incident := range orphans {
		report, err := s.generateReport(ctx, incident, now)
		if errors.Is(err, ErrOpenReportExists) {
			continue
		}
		if err != nil {
			log.WithError(err).WithField("incident_id", incident.ID).Warn("Reconciliation failed")
			s.fail(incident.PrimaryTouristID(), incident.ID.String(), models.StageReconcile, err).apply(result)
			continue
		}
		s.metrics.Reports.Inc()
		result.Reconciled++
		result.ReportsCreated++
		result.Reports = append(result.Reports, report)
		s.publish(ctx, string(incident.Type), report, incident)
	}
}

func (s *detectionService) publish(ctx context.Context, reason string, report *models.Report, incident *models.Incident) {
	if s.publisher == nil {
		return
	}
	event := webhook.ReportEvent{
		Event:     webhook.EventEFIRCreated,
		Reason:    reason,
		Report:    report,
		Incident:  incident,
		Timestamp: report.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("fir_number", report.FIRNumber).Warn("Failed to publish E-FIR event")
	}
}

func (s *detectionService) fail(touristID, incidentID, stage string, err error) outcome {
	s.metrics.StageFailures.WithLabelValues(stage).Inc()
	return outcome{failure: &models.PassFailure{
		TouristID:  touristID,
		IncidentID: incidentID,
		Stage:      stage,
		Error:      err.Error(),
	}}
}
