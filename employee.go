package hraccess

import (
	"context"

	"gorm.io/gorm"
)

// CreateEmployee creates a new employee record with its CREATE audit entry.
func (s *Service) CreateEmployee(ctx context.Context, actorID *uint, emp *Employee) (*Employee, error) {
	if emp == nil || emp.FirstName == "" || emp.LastName == "" || emp.LocationID == 0 {
		return nil, ErrInvalidInput
	}

	if emp.DepartmentID != nil {
		var dept Department
		if err := s.db.WithContext(ctx).First(&dept, *emp.DepartmentID).Error; err != nil {
			return nil, ErrNotFound
		}
	}
	var loc Location
	if err := s.db.WithContext(ctx).First(&loc, emp.LocationID).Error; err != nil {
		return nil, ErrNotFound
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityEmployee, emp.ID, ActionCreate, nil, emp, actorID)
	})
	if err != nil {
		return nil, err
	}
	return emp, nil
}

// UpdateEmployee applies new field values to an employee. A department move
// changes who may access the record, so cached decisions are dropped before
// returning.
func (s *Service) UpdateEmployee(ctx context.Context, actorID *uint, id uint, updated Employee) (*Employee, error) {
	if id == 0 || updated.FirstName == "" || updated.LastName == "" || updated.LocationID == 0 {
		return nil, ErrInvalidInput
	}

	var emp Employee
	if err := s.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, ErrEmployeeNotFound
	}

	if updated.DepartmentID != nil {
		var dept Department
		if err := s.db.WithContext(ctx).First(&dept, *updated.DepartmentID).Error; err != nil {
			return nil, ErrNotFound
		}
	}

	old := emp
	emp.FirstName = updated.FirstName
	emp.LastName = updated.LastName
	emp.DepartmentID = updated.DepartmentID
	emp.LocationID = updated.LocationID
	emp.UserID = updated.UserID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&emp).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityEmployee, emp.ID, ActionUpdate, old, emp, actorID)
	})
	if err != nil {
		return nil, err
	}

	// Only department and identity-link changes can flip a decision; a
	// name-only edit leaves cached decisions valid.
	if !uintPtrEqual(old.DepartmentID, emp.DepartmentID) || !uintPtrEqual(old.UserID, emp.UserID) {
		s.invalidateAccessCache(ctx)
	}
	return &emp, nil
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// GetEmployee retrieves an employee by ID.
func (s *Service) GetEmployee(ctx context.Context, id uint) (*Employee, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}

	var emp Employee
	if err := s.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, ErrEmployeeNotFound
	}
	return &emp, nil
}

// DeleteEmployee soft-deletes an employee. The row disappears from normal
// queries while its history rows persist — this is what produces orphaned
// history, reachable afterwards only via IncludeOrphaned.
func (s *Service) DeleteEmployee(ctx context.Context, actorID *uint, id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}

	var emp Employee
	if err := s.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return ErrEmployeeNotFound
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&emp).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityEmployee, id, ActionDelete, emp, nil, actorID)
	})
	if err != nil {
		return err
	}

	s.invalidateAccessCache(ctx)
	return nil
}
