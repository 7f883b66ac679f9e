package service_test

import (
	"context"
	"errors"
	"testing"

	"oper-review-backend/internal/database/models"
	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/mocks"
	"oper-review-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

// OrgServiceTestSuite defines the test suite for OrgService
type OrgServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUnitRepo *mocks.MockUnitRepositoryInterface
	orgService   *service.OrgService
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *OrgServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUnitRepo = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.orgService = service.NewOrgService(suite.mockUnitRepo)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *OrgServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func scenarioUnit() *models.Unit {
	return &models.Unit{
		ID:        3,
		Name:      "IT Department",
		ManagerID: uintPtr(1),
		Manager:   &models.Employee{ID: 1, Name: "Darth Vader", Position: strPtr("Director")},
		Children: []models.Unit{
			{ID: 5, Name: "X", ParentUnitID: uintPtr(3), Manager: &models.Employee{ID: 2, Name: "Obi-Wan"}},
			{ID: 6, Name: "Y", ParentUnitID: uintPtr(3)},
		},
		Employees: []models.Employee{
			{ID: 10, Name: "A", Position: strPtr("Eng")},
		},
	}
}

// TestGetUnitView tests mapping a unit into its view
func (suite *OrgServiceTestSuite) TestGetUnitView() {
	suite.mockUnitRepo.EXPECT().
		GetView(suite.ctx, uint(3)).
		Return(scenarioUnit(), nil).
		Times(1)

	view, err := suite.orgService.GetUnitView(suite.ctx, 3)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(3), view.ID)
	assert.Nil(suite.T(), view.ParentID)
	suite.Require().NotNil(view.Manager)
	assert.Equal(suite.T(), "Darth Vader", view.Manager.Name)
	assert.Equal(suite.T(), "Director", *view.Manager.Position)

	suite.Require().Len(view.Children, 2)
	assert.Equal(suite.T(), uint(5), view.Children[0].ID)
	assert.Equal(suite.T(), "X", view.Children[0].Name)
	suite.Require().NotNil(view.Children[0].ManagerName)
	assert.Equal(suite.T(), "Obi-Wan", *view.Children[0].ManagerName)
	assert.Equal(suite.T(), uint(6), view.Children[1].ID)
	assert.Nil(suite.T(), view.Children[1].ManagerName)

	suite.Require().Len(view.Employees, 1)
	assert.Equal(suite.T(), service.EmployeeDto{ID: 10, Name: "A", Position: strPtr("Eng")}, view.Employees[0])
}

// TestGetUnitViewEmptyCollections tests that children and employees are never nil
func (suite *OrgServiceTestSuite) TestGetUnitViewEmptyCollections() {
	suite.mockUnitRepo.EXPECT().
		GetView(suite.ctx, uint(7)).
		Return(&models.Unit{ID: 7, Name: "Lonely", ParentUnitID: uintPtr(3)}, nil)

	view, err := suite.orgService.GetUnitView(suite.ctx, 7)

	suite.Require().NoError(err)
	assert.NotNil(suite.T(), view.Children)
	assert.NotNil(suite.T(), view.Employees)
	assert.Empty(suite.T(), view.Children)
	assert.Nil(suite.T(), view.Manager)
	assert.Equal(suite.T(), uint(3), *view.ParentID)
}

// TestGetUnitViewNotFound tests a missing unit
func (suite *OrgServiceTestSuite) TestGetUnitViewNotFound() {
	suite.mockUnitRepo.EXPECT().
		GetView(suite.ctx, uint(99)).
		Return(nil, gorm.ErrRecordNotFound)

	view, err := suite.orgService.GetUnitView(suite.ctx, 99)

	assert.Nil(suite.T(), view)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnitNotFound)
}

// TestGetUnitViewRepositoryError tests wrapping of storage errors
func (suite *OrgServiceTestSuite) TestGetUnitViewRepositoryError() {
	suite.mockUnitRepo.EXPECT().
		GetView(suite.ctx, uint(1)).
		Return(nil, errors.New("connection reset"))

	view, err := suite.orgService.GetUnitView(suite.ctx, 1)

	assert.Nil(suite.T(), view)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to get unit")
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

// TestGetRootUnit tests that the root view has no parent
func (suite *OrgServiceTestSuite) TestGetRootUnit() {
	suite.mockUnitRepo.EXPECT().
		GetRootView(suite.ctx).
		Return(scenarioUnit(), nil)

	view, err := suite.orgService.GetRootUnit(suite.ctx)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), uint(3), view.ID)
	assert.Nil(suite.T(), view.ParentID)
}

// TestGetRootUnitNotFound tests an empty directory
func (suite *OrgServiceTestSuite) TestGetRootUnitNotFound() {
	suite.mockUnitRepo.EXPECT().
		GetRootView(suite.ctx).
		Return(nil, gorm.ErrRecordNotFound)

	view, err := suite.orgService.GetRootUnit(suite.ctx)

	assert.Nil(suite.T(), view)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRootUnitNotFound)
}

// TestCheckRootInvariant tests the single root check
func (suite *OrgServiceTestSuite) TestCheckRootInvariant() {
	suite.Run("single root", func() {
		suite.mockUnitRepo.EXPECT().ListRootIDs(suite.ctx).Return([]uint{1}, nil)
		assert.NoError(suite.T(), suite.orgService.CheckRootInvariant(suite.ctx))
	})

	suite.Run("no root", func() {
		suite.mockUnitRepo.EXPECT().ListRootIDs(suite.ctx).Return([]uint{}, nil)
		assert.ErrorIs(suite.T(), suite.orgService.CheckRootInvariant(suite.ctx), apperrors.ErrNoRootUnit)
	})

	suite.Run("several roots", func() {
		suite.mockUnitRepo.EXPECT().ListRootIDs(suite.ctx).Return([]uint{2, 8}, nil)
		err := suite.orgService.CheckRootInvariant(suite.ctx)
		assert.ErrorIs(suite.T(), err, apperrors.ErrMultipleRootUnits)
		assert.Contains(suite.T(), err.Error(), "using 2")
	})

	suite.Run("storage error", func() {
		suite.mockUnitRepo.EXPECT().ListRootIDs(suite.ctx).Return(nil, errors.New("boom"))
		err := suite.orgService.CheckRootInvariant(suite.ctx)
		assert.Error(suite.T(), err)
		assert.NotErrorIs(suite.T(), err, apperrors.ErrNoRootUnit)
	})
}

// TestOrgServiceTestSuite runs the test suite
func TestOrgServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrgServiceTestSuite))
}
