package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// memoryStore - хранилище в памяти с теми же ограничениями уникальности, что и в бд:
// уникальный fir_number и не более одного открытого отчета на туриста.
type memoryStore struct {
	mu        sync.Mutex
	tourists  []*models.Tourist
	incidents map[uuid.UUID]*models.Incident
	reports   []*models.Report
}

func newMemoryStore(tourists ...*models.Tourist) *memoryStore {
	return &memoryStore{
		tourists:  tourists,
		incidents: make(map[uuid.UUID]*models.Incident),
	}
}

func (m *memoryStore) ListActive(_ context.Context) ([]*models.Tourist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Tourist, 0, len(m.tourists))
	for _, t := range m.tourists {
		if t.IsActive() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memoryStore) Create(_ context.Context, incident *models.Incident) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *incident
	m.incidents[incident.ID] = &copied
	return nil
}

func (m *memoryStore) MarkReportGenerated(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inc, ok := m.incidents[id]; ok {
		inc.EFIRCreated = true
		return nil
	}
	return ErrNotFound
}

func (m *memoryStore) Resolve(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inc, ok := m.incidents[id]; ok {
		inc.Status = models.IncidentStatusResolved
		return nil
	}
	return ErrNotFound
}

func (m *memoryStore) ListOrphaned(_ context.Context, limit int) ([]*models.Incident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Incident
	for _, inc := range m.incidents {
		if inc.EFIRCreated || inc.Status != models.IncidentStatusOpen || inc.ReportedBy != models.ReportedBySystem {
			continue
		}
		if m.openCountLocked(inc.PrimaryTouristID()) > 0 || m.hasReportLocked(inc.ID) {
			continue
		}
		copied := *inc
		out = append(out, &copied)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// reportStore оборачивает memoryStore, чтобы реализовать ReportRepository
// (у IncidentRepository и ReportRepository совпадают имена методов)
type reportStore struct{ *memoryStore }

func (r reportStore) Create(_ context.Context, report *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reports {
		if existing.FIRNumber == report.FIRNumber {
			return ErrFIRNumberTaken
		}
	}
	if report.IsOpen() && r.openCountLocked(report.TouristID) > 0 {
		return ErrOpenReportExists
	}
	copied := *report
	r.reports = append(r.reports, &copied)
	return nil
}

func (r reportStore) GetByID(_ context.Context, id uuid.UUID) (*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rep := range r.reports {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, ErrNotFound
}

func (r reportStore) List(_ context.Context, _ models.ReportFilter) ([]*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Report(nil), r.reports...), nil
}

func (r reportStore) ListOpenByTourist(_ context.Context, touristID string) ([]*models.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Report
	for _, rep := range r.reports {
		if rep.TouristID == touristID && rep.IsOpen() {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (m *memoryStore) openCountLocked(touristID string) int {
	n := 0
	for _, rep := range m.reports {
		if rep.TouristID == touristID && rep.IsOpen() {
			n++
		}
	}
	return n
}

func (m *memoryStore) hasReportLocked(incidentID uuid.UUID) bool {
	for _, rep := range m.reports {
		if rep.IncidentID == incidentID {
			return true
		}
	}
	return false
}

// closeReports переводит все отчеты туриста в статус closed
func (m *memoryStore) closeReports(touristID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rep := range m.reports {
		if rep.TouristID == touristID {
			rep.Status = models.ReportStatusClosed
		}
	}
}

// reportsForIncident считает отчеты, ссылающиеся на инцидент
func (m *memoryStore) reportsForIncident(incidentID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, rep := range m.reports {
		if rep.IncidentID == incidentID {
			n++
		}
	}
	return n
}

// markFailingIncidents - IncidentRepository, у которого MarkReportGenerated всегда падает
type markFailingIncidents struct {
	*memoryStore
	err error
}

func (m markFailingIncidents) MarkReportGenerated(context.Context, uuid.UUID) error {
	return m.err
}

func (m *memoryStore) openReports(touristID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openCountLocked(touristID)
}

func (m *memoryStore) reportCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reports)
}

func (m *memoryStore) incidentCount(status string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, inc := range m.incidents {
		if inc.Status == status {
			n++
		}
	}
	return n
}

// staticZones отдает фиксированный набор зон, остальные методы ZoneService не используются
type staticZones struct {
	ZoneService
	zones    []*models.Zone
	degraded bool
}

func (z staticZones) ActiveZones(context.Context) ([]*models.Zone, bool) {
	return z.zones, z.degraded
}
