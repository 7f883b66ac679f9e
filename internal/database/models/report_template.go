package models

// ReportTemplate is the per-unit report layout. At most one exists per unit.
type ReportTemplate struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UnitID uint `json:"unit_id" gorm:"not null;uniqueIndex"`

	// Relationships
	Unit    *Unit                  `json:"unit,omitempty" gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
	Plugins []ReportTemplatePlugin `json:"plugins,omitempty" gorm:"foreignKey:ReportTemplateID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ReportTemplate
func (ReportTemplate) TableName() string {
	return "report_template"
}

// ReportTemplatePlugin is one configured plugin instance inside a template
type ReportTemplatePlugin struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	ReportTemplateID uint    `json:"report_template_id" gorm:"not null;index"`
	PluginID         string  `json:"plugin_id" gorm:"size:64;not null" validate:"max=64"`
	CustomTitle      *string `json:"custom_title,omitempty" gorm:"size:255" validate:"omitempty,max=255"`
	SortOrder        int     `json:"sort_order" gorm:"not null;default:0"`
}

// TableName returns the table name for ReportTemplatePlugin
func (ReportTemplatePlugin) TableName() string {
	return "report_template_plugin"
}
