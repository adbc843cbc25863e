package hraccess

import (
	"context"

	"gorm.io/gorm"
)

// CreateDepartment creates a new department. The history append rides the
// same transaction: if it fails, the department insert rolls back.
func (s *Service) CreateDepartment(ctx context.Context, actorID *uint, name string) (*Department, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}

	dept := &Department{Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dept).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityDepartment, dept.ID, ActionCreate, nil, dept, actorID)
	})
	if err != nil {
		return nil, err
	}
	return dept, nil
}

// UpdateDepartment updates a department's name.
func (s *Service) UpdateDepartment(ctx context.Context, actorID *uint, id uint, name string) (*Department, error) {
	if id == 0 || name == "" {
		return nil, ErrInvalidInput
	}

	var dept Department
	if err := s.db.WithContext(ctx).First(&dept, id).Error; err != nil {
		return nil, ErrNotFound
	}

	old := dept
	dept.Name = name
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&dept).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityDepartment, dept.ID, ActionUpdate, old, dept, actorID)
	})
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// GetDepartment retrieves a department by ID.
func (s *Service) GetDepartment(ctx context.Context, id uint) (*Department, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}

	var dept Department
	if err := s.db.WithContext(ctx).First(&dept, id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &dept, nil
}

// DeleteDepartment soft-deletes a department by ID. History referencing the
// department stays queryable afterwards.
func (s *Service) DeleteDepartment(ctx context.Context, actorID *uint, id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}

	var dept Department
	if err := s.db.WithContext(ctx).First(&dept, id).Error; err != nil {
		return ErrNotFound
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&dept).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityDepartment, id, ActionDelete, dept, nil, actorID)
	})
	if err != nil {
		return err
	}

	s.invalidateAccessCache(ctx)
	return nil
}

// ListDepartments retrieves all departments.
func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	var depts []Department
	if err := s.db.WithContext(ctx).Find(&depts).Error; err != nil {
		return nil, err
	}
	return depts, nil
}
