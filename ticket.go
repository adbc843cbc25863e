package hraccess

import (
	"context"

	"gorm.io/gorm"
)

// AddTicketRecord attaches a licence/certificate entry to an employee.
func (s *Service) AddTicketRecord(ctx context.Context, actorID *uint, rec *TicketRecord) (*TicketRecord, error) {
	if rec == nil || rec.EmployeeID == 0 || rec.Category == "" {
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
		return appendHistory(tx, EntityTicket, rec.ID, ActionCreate, nil, rec, actorID)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteTicketRecord soft-deletes a ticket record.
func (s *Service) DeleteTicketRecord(ctx context.Context, actorID *uint, id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}

	var rec TicketRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return ErrNotFound
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&rec).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityTicket, id, ActionDelete, rec, nil, actorID)
	})
}

// ListTicketRecords retrieves all ticket records of an employee.
func (s *Service) ListTicketRecords(ctx context.Context, employeeID uint) ([]TicketRecord, error) {
	if employeeID == 0 {
		return nil, ErrInvalidInput
	}

	var recs []TicketRecord
	if err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
