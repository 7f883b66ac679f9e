package repository

import (
	"context"
	"testing"
	"time"

	"oper-review-backend/internal/database/models"
	"oper-review-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// HealthCheckRepositoryTestSuite tests the HealthCheckRepository
type HealthCheckRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *HealthCheckRepository
}

// SetupSuite runs before all tests in the suite
func (suite *HealthCheckRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewHealthCheckRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *HealthCheckRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *HealthCheckRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TestRecord tests that each check appends a row
func (suite *HealthCheckRepositoryTestSuite) TestRecord() {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	suite.Require().NoError(suite.repo.Record(context.Background(), now))
	suite.Require().NoError(suite.repo.Record(context.Background(), now))

	var rows []models.HealthCheck
	suite.Require().NoError(suite.baseTestSuite.DB.Find(&rows).Error)
	suite.Len(rows, 2)
	suite.Equal(now, rows[0].CheckedAt)
}

// TestPing tests the connection check
func (suite *HealthCheckRepositoryTestSuite) TestPing() {
	suite.NoError(suite.repo.Ping(context.Background()))
}

// TestHealthCheckRepositoryTestSuite runs the test suite
func TestHealthCheckRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckRepositoryTestSuite))
}
