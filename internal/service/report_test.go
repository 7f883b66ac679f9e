package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"oper-review-backend/internal/database/models"
	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/mocks"
	"oper-review-backend/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockReportRepositoryInterface
	mockUnitRepo  *mocks.MockUnitRepositoryInterface
	reportService *service.ReportService
	ctx           context.Context
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.mockUnitRepo = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.reportService = service.NewReportService(suite.mockRepo, suite.mockUnitRepo, service.NewValidator())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateReport tests creating a report
func (suite *ReportServiceTestSuite) TestCreateReport() {
	created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	suite.mockUnitRepo.EXPECT().Exists(suite.ctx, uint(3)).Return(true, nil)
	suite.mockRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) error {
			assert.Equal(suite.T(), uint(3), r.UnitID)
			assert.Equal(suite.T(), "2025-01-31", r.ReportDate)
			r.ID = 7
			r.CreatedAt = created
			return nil
		})

	dto, err := suite.reportService.CreateReport(suite.ctx, 3, &service.CreateReportRequest{ReportDate: "2025-01-31"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(7), dto.ID)
	assert.Equal(suite.T(), uint(3), dto.UnitID)
	assert.Equal(suite.T(), "2025-01-31", dto.ReportDate)
	assert.Equal(suite.T(), created, dto.CreatedAt)
}

// TestCreateReportInvalidDate tests date validation
func (suite *ReportServiceTestSuite) TestCreateReportInvalidDate() {
	for _, date := range []string{"", "31.01.2025", "2025-13-01", "2025-01-31T00:00:00Z"} {
		suite.Run(date, func() {
			dto, err := suite.reportService.CreateReport(suite.ctx, 3, &service.CreateReportRequest{ReportDate: date})

			assert.Nil(suite.T(), dto)
			assert.True(suite.T(), apperrors.IsValidation(err))
			assert.Contains(suite.T(), err.Error(), "reportDate")
		})
	}
}

// TestCreateReportUnitNotFound tests creating a report for a missing unit
func (suite *ReportServiceTestSuite) TestCreateReportUnitNotFound() {
	suite.mockUnitRepo.EXPECT().Exists(suite.ctx, uint(99)).Return(false, nil)

	dto, err := suite.reportService.CreateReport(suite.ctx, 99, &service.CreateReportRequest{ReportDate: "2025-01-31"})

	assert.Nil(suite.T(), dto)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnitNotFound)
}

// TestCreateReportDuplicate tests the unit and date uniqueness
func (suite *ReportServiceTestSuite) TestCreateReportDuplicate() {
	suite.Run("postgres", func() {
		suite.mockUnitRepo.EXPECT().Exists(suite.ctx, uint(3)).Return(true, nil)
		suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := suite.reportService.CreateReport(suite.ctx, 3, &service.CreateReportRequest{ReportDate: "2025-01-31"})
		assert.ErrorIs(suite.T(), err, apperrors.ErrReportExists)
	})

	suite.Run("sqlite", func() {
		suite.mockUnitRepo.EXPECT().Exists(suite.ctx, uint(3)).Return(true, nil)
		suite.mockRepo.EXPECT().Create(suite.ctx, gomock.Any()).Return(errors.New("UNIQUE constraint failed: report.unit_id, report.report_date"))

		_, err := suite.reportService.CreateReport(suite.ctx, 3, &service.CreateReportRequest{ReportDate: "2025-01-31"})
		assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	})
}

// TestListReports tests listing a unit's reports
func (suite *ReportServiceTestSuite) TestListReports() {
	suite.mockUnitRepo.EXPECT().Exists(suite.ctx, uint(3)).Return(true, nil)
	suite.mockRepo.EXPECT().GetByUnitID(suite.ctx, uint(3)).Return([]models.Report{
		{ID: 2, UnitID: 3, ReportDate: "2025-02-28"},
		{ID: 1, UnitID: 3, ReportDate: "2025-01-31"},
	}, nil)

	reports, err := suite.reportService.ListReports(suite.ctx, 3)

	suite.Require().NoError(err)
	suite.Require().Len(reports, 2)
	assert.Equal(suite.T(), "2025-02-28", reports[0].ReportDate)
	assert.Equal(suite.T(), "2025-01-31", reports[1].ReportDate)
}

// TestListReportsEmpty tests that an empty list is not nil
func (suite *ReportServiceTestSuite) TestListReportsEmpty() {
	suite.mockUnitRepo.EXPECT().Exists(suite.ctx, uint(3)).Return(true, nil)
	suite.mockRepo.EXPECT().GetByUnitID(suite.ctx, uint(3)).Return(nil, nil)

	reports, err := suite.reportService.ListReports(suite.ctx, 3)

	suite.Require().NoError(err)
	assert.NotNil(suite.T(), reports)
	assert.Empty(suite.T(), reports)
}

// TestListReportsUnitNotFound tests listing for a missing unit
func (suite *ReportServiceTestSuite) TestListReportsUnitNotFound() {
	suite.mockUnitRepo.EXPECT().Exists(suite.ctx, uint(99)).Return(false, nil)

	reports, err := suite.reportService.ListReports(suite.ctx, 99)

	assert.Nil(suite.T(), reports)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnitNotFound)
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
