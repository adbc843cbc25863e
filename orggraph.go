package hraccess

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// OrgGraph is the read-only view of the manager-department-employee
// relationships the resolver depends on. Owned by the persistence layer;
// the resolver never writes through it.
type OrgGraph interface {
	// DepartmentOf returns the department id of an employee, or nil if the
	// employee is unassigned. ErrEmployeeNotFound if the employee does not
	// exist (or was soft-deleted).
	DepartmentOf(ctx context.Context, employeeID uint) (*uint, error)
	// ManagersOf returns the user ids currently managing a department.
	ManagersOf(ctx context.Context, departmentID uint) (map[uint]struct{}, error)
	// EmployeeForUser resolves a user account to its own employee record.
	// Returns (0, false, nil) when the user has no linked employee.
	EmployeeForUser(ctx context.Context, userID uint) (uint, bool, error)
}

type gormOrgGraph struct {
	db *gorm.DB
}

func (g *gormOrgGraph) DepartmentOf(ctx context.Context, employeeID uint) (*uint, error) {
	var emp Employee
	err := g.db.WithContext(ctx).Select("id", "department_id").First(&emp, employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return emp.DepartmentID, nil
}

func (g *gormOrgGraph) ManagersOf(ctx context.Context, departmentID uint) (map[uint]struct{}, error) {
	var assignments []ManagementAssignment
	if err := g.db.WithContext(ctx).Where("department_id = ?", departmentID).Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch management assignments: %w", err)
	}

	managers := make(map[uint]struct{}, len(assignments))
	for _, a := range assignments {
		managers[a.UserID] = struct{}{}
	}
	return managers, nil
}

func (g *gormOrgGraph) EmployeeForUser(ctx context.Context, userID uint) (uint, bool, error) {
	var emp Employee
	err := g.db.WithContext(ctx).Select("id").Where("user_id = ?", userID).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to resolve employee for user: %w", err)
	}
	return emp.ID, true, nil
}
