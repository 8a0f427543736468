package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			id, type, description, status, severity, latitude, longitude,
			tourist_ids, zone_id, reported_by, efir_created, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		incident.ID,
		string(incident.Type),
		incident.Description,
		incident.Status,
		string(incident.Severity),
		incident.Latitude,
		incident.Longitude,
		incident.TouristIDs,
		incident.ZoneID,
		incident.ReportedBy,
		incident.EFIRCreated,
		incident.CreatedAt,
		incident.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// MarkReportGenerated помечает, что для инцидента создан E-FIR
func (r *IncidentRepository) MarkReportGenerated(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE incidents SET
			efir_created = TRUE,
			updated_at = NOW()
		WHERE id = $1;
	`
	return r.exec(ctx, query, id, "mark incident")
}

// Resolve закрывает инцидент, дублирующий уже существующий отчет
func (r *IncidentRepository) Resolve(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE incidents SET
			status = 'resolved',
			updated_at = NOW()
		WHERE id = $1;
	`
	return r.exec(ctx, query, id, "resolve incident")
}

func (r *IncidentRepository) exec(ctx context.Context, query string, id uuid.UUID, action string) error {
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// ListOrphaned возвращает открытые автоматические инциденты без E-FIR:
// ни один отчет не ссылается на инцидент, а у первого туриста нет открытого отчета
func (r *IncidentRepository) ListOrphaned(ctx context.Context, limit int) ([]*models.Incident, error) {
	query := `
		SELECT
			i.id,
			i.type,
			i.description,
			i.status,
			i.severity,
			i.latitude,
			i.longitude,
			i.tourist_ids,
			i.zone_id,
			i.reported_by,
			i.efir_created,
			i.created_at,
			i.updated_at
		FROM incidents i
		WHERE
			i.status = 'open'
			AND i.reported_by = 'system'
			AND NOT i.efir_created
			AND NOT EXISTS (
				SELECT 1 FROM reports r2
				WHERE r2.incident_id = i.id
			)
			AND NOT EXISTS (
				SELECT 1 FROM reports r
				WHERE r.tourist_id = i.tourist_ids[1]
					AND r.status IN ('open', 'in-progress')
			)
		ORDER BY i.created_at
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orphaned incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		var incidentType, severity string
		err := rows.Scan(
			&incident.ID,
			&incidentType,
			&incident.Description,
			&incident.Status,
			&severity,
			&incident.Latitude,
			&incident.Longitude,
			&incident.TouristIDs,
			&incident.ZoneID,
			&incident.ReportedBy,
			&incident.EFIRCreated,
			&incident.CreatedAt,
			&incident.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incident.Type = models.IncidentType(incidentType)
		incident.Severity = models.Severity(severity)
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}
