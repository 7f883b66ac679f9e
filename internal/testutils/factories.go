package testutils

import (
	"time"

	"oper-review-backend/internal/database/models"
)

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// UintPtr returns a pointer to v
func UintPtr(v uint) *uint {
	return &v
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	return &models.Employee{
		Name:     "Luke Skywalker",
		Position: StringPtr("Engineer"),
	}
}

// WithName sets a custom name and position for the employee
func (f *EmployeeFactory) WithName(name, position string) *models.Employee {
	e := f.Create()
	e.Name = name
	if position == "" {
		e.Position = nil
	} else {
		e.Position = StringPtr(position)
	}
	return e
}

// UnitFactory provides methods to create test Unit data
type UnitFactory struct{}

// NewUnitFactory creates a new UnitFactory
func NewUnitFactory() *UnitFactory {
	return &UnitFactory{}
}

// Create creates a test root Unit with default values
func (f *UnitFactory) Create() *models.Unit {
	return &models.Unit{
		Name: "IT Department",
	}
}

// WithName sets a custom name for the unit
func (f *UnitFactory) WithName(name string) *models.Unit {
	u := f.Create()
	u.Name = name
	return u
}

// WithParent creates a unit under the given parent
func (f *UnitFactory) WithParent(name string, parentID uint) *models.Unit {
	u := f.WithName(name)
	u.ParentUnitID = UintPtr(parentID)
	return u
}

// ReportTemplatePluginFactory provides methods to create test ReportTemplatePlugin data
type ReportTemplatePluginFactory struct{}

// NewReportTemplatePluginFactory creates a new ReportTemplatePluginFactory
func NewReportTemplatePluginFactory() *ReportTemplatePluginFactory {
	return &ReportTemplatePluginFactory{}
}

// Create creates a test plugin entry with default values
func (f *ReportTemplatePluginFactory) Create() models.ReportTemplatePlugin {
	return models.ReportTemplatePlugin{
		PluginID:  "team-lead-time",
		SortOrder: 0,
	}
}

// With creates a plugin entry with the given id, title and sort order
func (f *ReportTemplatePluginFactory) With(pluginID string, customTitle *string, sortOrder int) models.ReportTemplatePlugin {
	p := f.Create()
	p.PluginID = pluginID
	p.CustomTitle = customTitle
	p.SortOrder = sortOrder
	return p
}

// ReportFactory provides methods to create test Report data
type ReportFactory struct{}

// NewReportFactory creates a new ReportFactory
func NewReportFactory() *ReportFactory {
	return &ReportFactory{}
}

// Create creates a test Report with default values
func (f *ReportFactory) Create() *models.Report {
	return &models.Report{
		ReportDate: "2025-01-31",
		CreatedAt:  time.Now(),
	}
}

// WithUnit creates a report for the given unit and date
func (f *ReportFactory) WithUnit(unitID uint, date string) *models.Report {
	r := f.Create()
	r.UnitID = unitID
	r.ReportDate = date
	return r
}

// FactorySet provides access to all factories
type FactorySet struct {
	Employee             *EmployeeFactory
	Unit                 *UnitFactory
	ReportTemplatePlugin *ReportTemplatePluginFactory
	Report               *ReportFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee:             NewEmployeeFactory(),
		Unit:                 NewUnitFactory(),
		ReportTemplatePlugin: NewReportTemplatePluginFactory(),
		Report:               NewReportFactory(),
	}
}
