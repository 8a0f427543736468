package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestTranslateUniqueViolation(t *testing.T) {
	other := errors.New("connection reset")

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "занятый номер FIR",
			err:      &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraintFIRNumber},
			expected: service.ErrFIRNumberTaken,
		},
		{
			name:     "второй открытый отчет",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraintOpenReport}),
			expected: service.ErrOpenReportExists,
		},
		{
			name:     "ошибка соединения",
			err:      other,
			expected: other,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, translateUniqueViolation(tc.err), tc.expected)
		})
	}

	t.Run("другое ограничение", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "reports_pkey"}
		err := translateUniqueViolation(pgErr)
		assert.NotErrorIs(t, err, service.ErrFIRNumberTaken)
		assert.NotErrorIs(t, err, service.ErrOpenReportExists)
	})
}
