package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type ZoneRepository struct {
	db *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) service.ZoneRepository {
	return &ZoneRepository{db: db}
}

const zoneColumns = `
			id,
			name,
			description,
			latitude,
			longitude,
			radius,
			polygon,
			zone_type,
			risk_level,
			penalty_bonus,
			is_active,
			all_day,
			start_time,
			end_time,
			active_days,
			alert_on_enter,
			alert_on_exit,
			auto_escalate,
			created_at,
			updated_at`

// Create создает геозону, id и метки времени выставляет бд
func (r *ZoneRepository) Create(ctx context.Context, zone *models.ZoneRecord) error {
	polygon, err := encodePolygon(zone.Polygon)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO geofence_zones (
			name, description, latitude, longitude, radius, polygon, zone_type, risk_level,
			penalty_bonus, is_active, all_day, start_time, end_time, active_days,
			alert_on_enter, alert_on_exit, auto_escalate
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		zone.Name,
		zone.Description,
		zone.Latitude,
		zone.Longitude,
		zone.Radius,
		polygon,
		zone.ZoneType,
		zone.RiskLevel,
		zone.PenaltyBonus,
		zone.IsActive,
		zone.AllDay,
		zone.StartTime,
		zone.EndTime,
		zone.ActiveDays,
		zone.AlertOnEnter,
		zone.AlertOnExit,
		zone.AutoEscalate,
	).Scan(&zone.ID, &zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

// GetByID возвращает геозону по UUID
func (r *ZoneRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ZoneRecord, error) {
	query := `SELECT ` + zoneColumns + ` FROM geofence_zones WHERE id = $1;`

	zone, err := scanZone(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("zone with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get zone by id: %w", err)
	}
	return zone, nil
}

func (r *ZoneRepository) Update(ctx context.Context, zone *models.ZoneRecord) error {
	polygon, err := encodePolygon(zone.Polygon)
	if err != nil {
		return err
	}

	query := `
		UPDATE geofence_zones SET
			name = $1,
			description = $2,
			latitude = $3,
			longitude = $4,
			radius = $5,
			polygon = $6,
			zone_type = $7,
			risk_level = $8,
			penalty_bonus = $9,
			is_active = $10,
			all_day = $11,
			start_time = $12,
			end_time = $13,
			active_days = $14,
			alert_on_enter = $15,
			alert_on_exit = $16,
			auto_escalate = $17,
			updated_at = NOW()
		WHERE id = $18
		RETURNING created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		zone.Name,
		zone.Description,
		zone.Latitude,
		zone.Longitude,
		zone.Radius,
		polygon,
		zone.ZoneType,
		zone.RiskLevel,
		zone.PenaltyBonus,
		zone.IsActive,
		zone.AllDay,
		zone.StartTime,
		zone.EndTime,
		zone.ActiveDays,
		zone.AlertOnEnter,
		zone.AlertOnExit,
		zone.AutoEscalate,
		zone.ID,
	).Scan(&zone.CreatedAt, &zone.UpdatedAt)
	if err != nil {
		// строки нет, значит зоны с таким id не существует
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("zone with id %s: %w", zone.ID, service.ErrNotFound)
		}
		return fmt.Errorf("failed to update zone: %w", err)
	}
	return nil
}

// Delete удаляет геозону. Инциденты сохраняют zone_id (ON DELETE SET NULL).
func (r *ZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM geofence_zones WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("zone with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *ZoneRepository) List(ctx context.Context) ([]*models.ZoneRecord, error) {
	query := `SELECT ` + zoneColumns + ` FROM geofence_zones ORDER BY created_at DESC;`
	return r.query(ctx, query)
}

// ListActive возвращает зоны с is_active = true, расписание проверяет движок
func (r *ZoneRepository) ListActive(ctx context.Context) ([]*models.ZoneRecord, error) {
	query := `SELECT ` + zoneColumns + ` FROM geofence_zones WHERE is_active ORDER BY created_at;`
	return r.query(ctx, query)
}

func (r *ZoneRepository) query(ctx context.Context, query string) ([]*models.ZoneRecord, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.ZoneRecord, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return zones, nil
}

func scanZone(row pgx.Row) (*models.ZoneRecord, error) {
	zone := &models.ZoneRecord{}
	var polygon []byte
	err := row.Scan(
		&zone.ID,
		&zone.Name,
		&zone.Description,
		&zone.Latitude,
		&zone.Longitude,
		&zone.Radius,
		&polygon,
		&zone.ZoneType,
		&zone.RiskLevel,
		&zone.PenaltyBonus,
		&zone.IsActive,
		&zone.AllDay,
		&zone.StartTime,
		&zone.EndTime,
		&zone.ActiveDays,
		&zone.AlertOnEnter,
		&zone.AlertOnExit,
		&zone.AutoEscalate,
		&zone.CreatedAt,
		&zone.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(polygon) > 0 {
		if err := json.Unmarshal(polygon, &zone.Polygon); err != nil {
			return nil, fmt.Errorf("failed to unmarshal zone polygon: %w", err)
		}
	}
	return zone, nil
}

// encodePolygon возвращает nil для зоны-круга, чтобы в колонку попал NULL
func encodePolygon(points []models.StorePoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(points)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal zone polygon: %w", err)
	}
	return b, nil
}
