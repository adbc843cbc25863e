package hraccess

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// AssignManager makes a user a manager of a department. Assigning an
// existing manager again fails with ErrAlreadyExists. Cached access
// decisions are invalidated before returning so the next check sees the new
// assignment.
func (s *Service) AssignManager(ctx context.Context, actorID *uint, userID, departmentID uint) error {
	if userID == 0 || departmentID == 0 {
		return ErrInvalidInput
	}

	var dept Department
	if err := s.db.WithContext(ctx).First(&dept, departmentID).Error; err != nil {
		return ErrNotFound
	}

	var existing ManagementAssignment
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND department_id = ?", userID, departmentID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check management assignment: %w", err)
	}

	assignment := &ManagementAssignment{UserID: userID, DepartmentID: departmentID}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityManagement, departmentID, ActionCreate, nil, assignment, actorID)
	})
	if err != nil {
		return err
	}

	s.invalidateAccessCache(ctx)
	return nil
}

// RemoveManager removes a user's management assignment for a department.
func (s *Service) RemoveManager(ctx context.Context, actorID *uint, userID, departmentID uint) error {
	if userID == 0 || departmentID == 0 {
		return ErrInvalidInput
	}

	var assignment ManagementAssignment
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND department_id = ?", userID, departmentID).
		First(&assignment).Error; err != nil {
		return ErrNotFound
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&assignment).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityManagement, departmentID, ActionDelete, assignment, nil, actorID)
	})
	if err != nil {
		return err
	}

	s.invalidateAccessCache(ctx)
	return nil
}

// ManagedDepartments retrieves the department IDs a user manages.
func (s *Service) ManagedDepartments(ctx context.Context, userID uint) ([]uint, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	var deptIDs []uint
	if err := s.db.WithContext(ctx).Model(&ManagementAssignment{}).
		Where("user_id = ?", userID).
		Pluck("department_id", &deptIDs).Error; err != nil {
		return nil, err
	}
	return deptIDs, nil
}
