package repository

import (
	"context"

	"oper-review-backend/internal/database/models"

	"gorm.io/gorm"
)

// UnitRepository handles database operations for units
type UnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// viewQuery preloads everything a unit view needs: the manager, direct children
// with their managers, and directly assigned employees.
func viewQuery(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Manager").
		Preload("Children", orderByID).
		Preload("Children.Manager").
		Preload("Employees", orderByID)
}

// GetView retrieves a unit with its manager, children and employees in one transaction
func (r *UnitRepository) GetView(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return viewQuery(tx).First(&unit, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetRootView retrieves the parentless unit with the lowest id as a full view
func (r *UnitRepository) GetRootView(ctx context.Context) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return viewQuery(tx).
			Where("parent_unit_id IS NULL").
			Order("id ASC").
			First(&unit).Error
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// ListRootIDs returns the ids of all units without a parent, ascending
func (r *UnitRepository) ListRootIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Unit{}).
		Where("parent_unit_id IS NULL").
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Exists reports whether a unit with the given id exists
func (r *UnitRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Unit{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
