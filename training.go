package hraccess

import (
	"context"

	"gorm.io/gorm"
)

// AddTrainingRecord attaches a completed training to an employee.
func (s *Service) AddTrainingRecord(ctx context.Context, actorID *uint, rec *TrainingRecord) (*TrainingRecord, error) {
	if rec == nil || rec.EmployeeID == 0 || rec.Name == "" {
		return nil, ErrInvalidInput
	}

	var emp Employee
	if err := s.db.WithContext(ctx).First(&emp, rec.EmployeeID).Error; err != nil {
		return nil, ErrEmployeeNotFound
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityTraining, rec.ID, ActionCreate, nil, rec, actorID)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteTrainingRecord soft-deletes a training record. Its history still
// counts toward the owning employee's audit trail.
func (s *Service) DeleteTrainingRecord(ctx context.Context, actorID *uint, id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}

	var rec TrainingRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return ErrNotFound
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&rec).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityTraining, id, ActionDelete, rec, nil, actorID)
	})
}

// ListTrainingRecords retrieves all training records of an employee.
func (s *Service) ListTrainingRecords(ctx context.Context, employeeID uint) ([]TrainingRecord, error) {
	if employeeID == 0 {
		return nil, ErrInvalidInput
	}

	var recs []TrainingRecord
	if err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
