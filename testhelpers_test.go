package hraccess

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestService opens a per-test in-memory database and runs migrations.
func newTestService(t *testing.T) *Service {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	svc, err := New(Config{DB: db, AutoMigrate: true})
	require.NoError(t, err)
	return svc
}

// seedOrg creates a location, a department and an employee in it, returning
// the three ids. Seeded directly so tests that care about history contents
// start from a clean audit table.
func seedOrg(t *testing.T, svc *Service) (locID, deptID, empID uint) {
	t.Helper()

	loc := Location{Name: "Head Office"}
	require.NoError(t, svc.db.Create(&loc).Error)
	dept := Department{Name: "Logistics"}
	require.NoError(t, svc.db.Create(&dept).Error)
	emp := Employee{FirstName: "Maija", LastName: "Ozola", DepartmentID: &dept.ID, LocationID: loc.ID}
	require.NoError(t, svc.db.Create(&emp).Error)
	return loc.ID, dept.ID, emp.ID
}

func seedManager(t *testing.T, svc *Service, userID, deptID uint) {
	t.Helper()
	require.NoError(t, svc.db.Create(&ManagementAssignment{UserID: userID, DepartmentID: deptID}).Error)
}

func ctxb() context.Context { return context.Background() }

func uintPtr(v uint) *uint { return &v }
