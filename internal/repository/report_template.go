package repository

import (
	"context"

	"oper-review-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportTemplateRepository handles database operations for report templates
type ReportTemplateRepository struct {
	db *gorm.DB
}

// NewReportTemplateRepository creates a new report template repository
func NewReportTemplateRepository(db *gorm.DB) *ReportTemplateRepository {
	return &ReportTemplateRepository{db: db}
}

func orderPlugins(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("id ASC")
}

func loadTemplate(tx *gorm.DB, unitID uint) (*models.ReportTemplate, error) {
	var template models.ReportTemplate
	err := tx.Preload("Plugins", orderPlugins).First(&template, "unit_id = ?", unitID).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByUnitID retrieves a unit's template with plugins ordered by sort order then id,
// reading both in one transaction.
// A missing unit and a unit without a template both yield gorm.ErrRecordNotFound.
func (r *ReportTemplateRepository) GetByUnitID(ctx context.Context, unitID uint) (*models.ReportTemplate, error) {
	var template *models.ReportTemplate
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		loaded, err := loadTemplate(tx, unitID)
		if err != nil {
			return err
		}
		template = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return template, nil
}

// Replace creates the unit's template if needed and swaps its plugin rows for the given list.
// Returns gorm.ErrRecordNotFound when the unit does not exist.
func (r *ReportTemplateRepository) Replace(ctx context.Context, unitID uint, plugins []models.ReportTemplatePlugin) (*models.ReportTemplate, error) {
	var result *models.ReportTemplate
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var unit models.Unit
		if err := tx.Select("id").First(&unit, "id = ?", unitID).Error; err != nil {
			return err
		}

		// A concurrent first save may insert the row first; keep theirs and replace its plugins
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unit_id"}},
			DoNothing: true,
		}).Create(&models.ReportTemplate{UnitID: unitID}).Error
		if err != nil {
			return err
		}

		var template models.ReportTemplate
		if err := tx.Select("id").First(&template, "unit_id = ?", unitID).Error; err != nil {
			return err
		}

		if err := tx.Where("report_template_id = ?", template.ID).Delete(&models.ReportTemplatePlugin{}).Error; err != nil {
			return err
		}

		if len(plugins) > 0 {
			rows := make([]models.ReportTemplatePlugin, len(plugins))
			for i, p := range plugins {
				rows[i] = models.ReportTemplatePlugin{
					ReportTemplateID: template.ID,
					PluginID:         p.PluginID,
					CustomTitle:      p.CustomTitle,
					SortOrder:        p.SortOrder,
				}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		loaded, err := loadTemplate(tx, unitID)
		if err != nil {
			return err
		}
		result = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
