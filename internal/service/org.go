package service

import (
	"context"
	"errors"
	"fmt"

	"oper-review-backend/internal/database/models"
	apperrors "oper-review-backend/internal/errors"
	"oper-review-backend/internal/repository"

	"gorm.io/gorm"
)

// OrgService handles read access to the unit hierarchy
type OrgService struct {
	unitRepo repository.UnitRepositoryInterface
}

// NewOrgService creates a new org service
func NewOrgService(unitRepo repository.UnitRepositoryInterface) *OrgService {
	return &OrgService{
		unitRepo: unitRepo,
	}
}

// EmployeeDto represents an employee in a unit view
type EmployeeDto struct {
	ID       uint    `json:"id" example:"10"`
	Name     string  `json:"name" example:"Luke Skywalker"`
	Position *string `json:"position" example:"Engineer"`
}

// ChildUnitDto represents a direct child unit
type ChildUnitDto struct {
	ID          uint    `json:"id" example:"5"`
	Name        string  `json:"name" example:"Backend Team"`
	ManagerName *string `json:"managerName" example:"Obi-Wan Kenobi"`
}

// UnitViewDto represents a unit with its manager, direct children and employees
type UnitViewDto struct {
	ID        uint           `json:"id" example:"3"`
	Name      string         `json:"name" example:"IT Department"`
	ParentID  *uint          `json:"parentId"`
	Manager   *EmployeeDto   `json:"manager"`
	Children  []ChildUnitDto `json:"children"`
	Employees []EmployeeDto  `json:"employees"`
}

// GetRootUnit returns the view of the parentless unit with the lowest id
func (s *OrgService) GetRootUnit(ctx context.Context) (*UnitViewDto, error) {
	unit, err := s.unitRepo.GetRootView(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRootUnitNotFound
		}
		return nil, fmt.Errorf("failed to get root unit: %w", err)
	}
	return toUnitView(unit), nil
}

// GetUnitView returns the view of a single unit
func (s *OrgService) GetUnitView(ctx context.Context, unitID uint) (*UnitViewDto, error) {
	unit, err := s.unitRepo.GetView(ctx, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnitNotFound
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	return toUnitView(unit), nil
}

// CheckRootInvariant verifies that exactly one unit has no parent
func (s *OrgService) CheckRootInvariant(ctx context.Context) error {
	ids, err := s.unitRepo.ListRootIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list root units: %w", err)
	}
	switch len(ids) {
	case 0:
		return apperrors.ErrNoRootUnit
	case 1:
		return nil
	default:
		return fmt.Errorf("%w: ids %v, using %d", apperrors.ErrMultipleRootUnits, ids, ids[0])
	}
}

func toEmployeeDto(e *models.Employee) EmployeeDto {
	return EmployeeDto{
		ID:       e.ID,
		Name:     e.Name,
		Position: e.Position,
	}
}

func toUnitView(unit *models.Unit) *UnitViewDto {
	view := &UnitViewDto{
		ID:        unit.ID,
		Name:      unit.Name,
		ParentID:  unit.ParentUnitID,
		Children:  make([]ChildUnitDto, 0, len(unit.Children)),
		Employees: make([]EmployeeDto, 0, len(unit.Employees)),
	}

	if unit.Manager != nil {
		manager := toEmployeeDto(unit.Manager)
		view.Manager = &manager
	}

	for _, child := range unit.Children {
		dto := ChildUnitDto{ID: child.ID, Name: child.Name}
		if child.Manager != nil {
			name := child.Manager.Name
			dto.ManagerName = &name
		}
		view.Children = append(view.Children, dto)
	}

	for i := range unit.Employees {
		view.Employees = append(view.Employees, toEmployeeDto(&unit.Employees[i]))
	}

	return view
}
