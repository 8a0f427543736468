package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportService_ListReports(t *testing.T) {
	testCases := []struct {
		name     string
		filter   models.ReportFilter
		expected models.ReportFilter
	}{
		{
			name:     "значения по умолчанию",
			filter:   models.ReportFilter{},
			expected: models.ReportFilter{Page: 1, PageSize: 20},
		},
		{
			name:     "слишком большая страница",
			filter:   models.ReportFilter{TouristID: "T-1", Page: 3, PageSize: 500},
			expected: models.ReportFilter{TouristID: "T-1", Page: 3, PageSize: 20},
		},
		{
			name:     "фильтр по статусу",
			filter:   models.ReportFilter{Status: models.ReportStatusOpen, Page: 2, PageSize: 50},
			expected: models.ReportFilter{Status: models.ReportStatusOpen, Page: 2, PageSize: 50},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockReportRepository(ctrl)
			svc := NewReportService(repo, testLogger())
			reports := []*models.Report{{ID: uuid.New(), FIRNumber: "FIR-20240515-0042"}}

			repo.EXPECT().List(gomock.Any(), tc.expected).Return(reports, nil).Times(1)

			got, err := svc.ListReports(context.Background(), tc.filter)

			require.NoError(t, err)
			assert.Equal(t, reports, got)
		})
	}
}

func TestReportService_ListReports_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	svc := NewReportService(repo, testLogger())
	dbErr := errors.New("db error")

	repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

	got, err := svc.ListReports(context.Background(), models.ReportFilter{})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, dbErr)
}

func TestReportService_GetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReportRepository(ctrl)
	svc := NewReportService(repo, testLogger())
	id := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, ErrNotFound).Times(1)

	got, err := svc.GetReport(context.Background(), id)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}
