package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

const (
	constraintFIRNumber  = "reports_fir_number_key"
	constraintOpenReport = "reports_one_open_per_tourist"
)

const reportSelectColumns = `
			id,
			fir_number,
			report_type,
			tourist_id,
			incident_id,
			status,
			priority,
			summary,
			details,
			generated_by,
			is_automatically_generated,
			created_at,
			updated_at`

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// Create сохраняет отчет E-FIR. Нарушения уникальности переводятся в
// service.ErrFIRNumberTaken и service.ErrOpenReportExists.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (
			id, fir_number, report_type, tourist_id, incident_id, status, priority,
			summary, details, generated_by, is_automatically_generated, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.FIRNumber,
		report.ReportType,
		report.TouristID,
		report.IncidentID,
		report.Status,
		string(report.Priority),
		report.Summary,
		report.Details,
		report.GeneratedBy,
		report.IsAutomaticallyGenerated,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", translateUniqueViolation(err))
	}
	return nil
}

func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case constraintFIRNumber:
		return service.ErrFIRNumberTaken
	case constraintOpenReport:
		return service.ErrOpenReportExists
	}
	return err
}

// GetByID возвращает отчет по UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	query := `SELECT ` + reportSelectColumns + ` FROM reports WHERE id = $1;`

	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// List возвращает список отчетов с фильтрами и пагинацией
func (r *ReportRepository) List(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error) {
	// рассчитываем смещение
	offset := (filter.Page - 1) * filter.PageSize

	var (
		where []string
		args  []any
	)
	if filter.TouristID != "" {
		args = append(args, filter.TouristID)
		where = append(where, fmt.Sprintf("tourist_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + reportSelectColumns + ` FROM reports`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, filter.PageSize, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	return r.query(ctx, query, args...)
}

// ListOpenByTourist возвращает незакрытые отчеты туриста
func (r *ReportRepository) ListOpenByTourist(ctx context.Context, touristID string) ([]*models.Report, error) {
	query := `SELECT ` + reportSelectColumns + `
		FROM reports
		WHERE tourist_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC;`
	return r.query(ctx, query, touristID, models.OpenReportStatuses)
}

func (r *ReportRepository) query(ctx context.Context, query string, args ...any) ([]*models.Report, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	var priority string
	err := row.Scan(
		&report.ID,
		&report.FIRNumber,
		&report.ReportType,
		&report.TouristID,
		&report.IncidentID,
		&report.Status,
		&priority,
		&report.Summary,
		&report.Details,
		&report.GeneratedBy,
		&report.IsAutomaticallyGenerated,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	report.Priority = models.Severity(priority)
	return report, nil
}
