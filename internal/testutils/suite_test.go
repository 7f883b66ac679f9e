package testutils

import (
	"testing"

	"oper-review-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestSuiteMigratesSchema(t *testing.T) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()

	for _, table := range cleanTables {
		assert.True(t, s.DB.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestCleanTestDB(t *testing.T) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()

	emp := NewEmployeeFactory().Create()
	require.NoError(t, s.DB.Create(emp).Error)

	s.CleanTestDB()

	var count int64
	require.NoError(t, s.DB.Model(&models.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}
