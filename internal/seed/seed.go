// Package seed loads demo org directory data from YAML files.
package seed

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"oper-review-backend/internal/database/models"
	"oper-review-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// EmployeeData describes one employee
type EmployeeData struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position,omitempty"`
}

// UnitData describes one unit. Parent and manager are referenced by name.
type UnitData struct {
	Name    string `yaml:"name"`
	Parent  string `yaml:"parent,omitempty"`
	Manager string `yaml:"manager,omitempty"`
}

// AssignmentData lists the employees that belong to a unit
type AssignmentData struct {
	Unit      string   `yaml:"unit"`
	Employees []string `yaml:"employees"`
}

// File structures
type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

type UnitsFile struct {
	Units []UnitData `yaml:"units"`
}

type AssignmentsFile struct {
	Assignments []AssignmentData `yaml:"assignments"`
}

// Data is the full seed data set
type Data struct {
	Employees   []EmployeeData
	Units       []UnitData
	Assignments []AssignmentData
}

// Result counts the rows written by Apply
type Result struct {
	Employees   int
	Units       int
	Assignments int
}

// Load reads every *.yaml file under dataDir. Files are routed by name:
// employees, units and assignments.
func Load(dataDir string) (*Data, error) {
	data := &Data{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := filepath.Base(path)
		switch {
		case strings.Contains(name, "employees"):
			var file EmployeesFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Employees = append(data.Employees, file.Employees...)
		case strings.Contains(name, "units"):
			var file UnitsFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Units = append(data.Units, file.Units...)
		case strings.Contains(name, "assignments"):
			var file AssignmentsFile
			if err := yaml.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			data.Assignments = append(data.Assignments, file.Assignments...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data from %s: %w", dataDir, err)
	}

	return data, nil
}

// Apply replaces the org directory with data in a single transaction.
// Existing employees, units and memberships are deleted first, so applying
// the same data twice yields the same rows. Report templates and reports of
// the deleted units go with them.
func Apply(ctx context.Context, db *gorm.DB, data *Data) (*Result, error) {
	result := &Result{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wipe(tx); err != nil {
			return err
		}

		employeeIDs := make(map[string]uint, len(data.Employees))
		for _, e := range data.Employees {
			employee := models.Employee{Name: e.Name}
			if e.Position != "" {
				position := e.Position
				employee.Position = &position
			}
			if err := tx.Create(&employee).Error; err != nil {
				return fmt.Errorf("failed to create employee %s: %w", e.Name, err)
			}
			employeeIDs[e.Name] = employee.ID
			result.Employees++
		}

		unitIDs := make(map[string]uint, len(data.Units))
		for _, u := range data.Units {
			unit := models.Unit{Name: u.Name}
			if u.Parent != "" {
				parentID, ok := unitIDs[u.Parent]
				if !ok {
					return fmt.Errorf("unit %s: parent %s must be listed before it", u.Name, u.Parent)
				}
				unit.ParentUnitID = &parentID
			}
			if id, ok := employeeIDs[u.Manager]; ok {
				unit.ManagerID = &id
			}
			if err := tx.Create(&unit).Error; err != nil {
				return fmt.Errorf("failed to create unit %s: %w", u.Name, err)
			}
			unitIDs[u.Name] = unit.ID
			result.Units++
		}

		seen := make(map[models.UnitEmployee]bool)
		for _, a := range data.Assignments {
			unitID, ok := unitIDs[a.Unit]
			if !ok {
				logger.New().WithField("unit", a.Unit).Warn("Skipping assignments for unknown unit")
				continue
			}
			for _, name := range a.Employees {
				employeeID, ok := employeeIDs[name]
				if !ok {
					logger.New().WithField("employee", name).Warn("Skipping unknown employee")
					continue
				}
				link := models.UnitEmployee{UnitID: unitID, EmployeeID: employeeID}
				if seen[link] {
					continue
				}
				seen[link] = true
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("failed to assign %s to %s: %w", name, a.Unit, err)
				}
				result.Assignments++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Run loads dataDir and applies it
func Run(ctx context.Context, db *gorm.DB, dataDir string) (*Result, error) {
	data, err := Load(dataDir)
	if err != nil {
		return nil, err
	}
	return Apply(ctx, db, data)
}

func wipe(tx *gorm.DB) error {
	global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{&models.UnitEmployee{}, &models.Unit{}, &models.Employee{}} {
		if err := global.Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}
