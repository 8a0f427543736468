package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

// TouristRepository читает состояние туристов. Таблицу ведет сервис телеметрии,
// движок обнаружения ее только читает.
type TouristRepository struct {
	db *pgxpool.Pool
}

func NewTouristRepository(db *pgxpool.Pool) service.TouristRepository {
	return &TouristRepository{db: db}
}

// ListActive возвращает всех туристов со статусом 'active'
func (r *TouristRepository) ListActive(ctx context.Context) ([]*models.Tourist, error) {
	query := `
		SELECT
			id,
			name,
			status,
			last_telemetry_at,
			sos_active,
			in_high_risk_zone,
			entered_high_risk_zone_at,
			next_scheduled_check_in,
			last_check_in_status,
			latitude,
			longitude
		FROM tourists
		WHERE status = 'active';
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tourists: %w", err)
	}
	defer rows.Close()

	tourists := make([]*models.Tourist, 0)
	for rows.Next() {
		t := &models.Tourist{}
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Status,
			&t.LastTelemetryAt,
			&t.SOSActive,
			&t.InHighRiskZone,
			&t.EnteredHighRiskZoneAt,
			&t.NextScheduledCheckIn,
			&t.LastCheckInStatus,
			&t.Latitude,
			&t.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tourist row: %w", err)
		}
		tourists = append(tourists, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return tourists, nil
}
