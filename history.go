package hraccess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// HistoryFilter narrows a history query. Zero values mean "no filter":
// empty Action matches all actions, Limit 0 returns the full set.
type HistoryFilter struct {
	Action          HistoryAction
	Limit           int
	Offset          int
	IncludeOrphaned bool
}

// Page is one page of history entries, most recent first. Total counts all
// matching entries regardless of Limit/Offset.
type Page struct {
	Entries []HistoryRecord
	Total   int64
}

// Record appends one immutable history entry. The entry is committed the
// instant this returns nil; there is no draft or pending state and nothing
// ever updates or deletes the row afterwards. Any ID on the entry is
// ignored so a repeated call appends a second independent entry.
func (s *Service) Record(ctx context.Context, entry HistoryRecord) error {
	if !entry.Kind.valid() || !entry.Action.valid() || entry.RecordID == 0 {
		return ErrInvalidInput
	}

	entry.ID = 0
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// appendHistory writes an audit entry on the same transaction as the primary
// mutation it documents, so the entry only becomes durable if the mutation
// commits and the mutation only reports success if the entry was persisted.
func appendHistory(tx *gorm.DB, kind EntityKind, recordID uint, action HistoryAction, oldValue, newValue any, actorID *uint) error {
	entry := HistoryRecord{
		Kind:      kind,
		RecordID:  recordID,
		Action:    action,
		ActorID:   actorID,
		CreatedAt: time.Now(),
	}

	var err error
	if entry.OldValues, err = snapshot(oldValue); err != nil {
		return err
	}
	if entry.NewValues, err = snapshot(newValue); err != nil {
		return err
	}

	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// snapshot serializes a record state for storage in a history entry.
func snapshot(value any) (*string, error) {
	if value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	str := string(raw)
	return &str, nil
}

// QueryEmployeeHistory returns the audit trail of an employee: the
// employee's own entries plus those of training and ticket records owned by
// the employee. Ordered by timestamp descending (entry id breaks ties) so
// pagination is stable; Limit/Offset apply after ordering.
//
// If the employee does not currently exist the query fails with
// ErrEmployeeNotFound unless IncludeOrphaned is set — history of deleted
// employees is never leaked by accident, only on explicit request.
func (s *Service) QueryEmployeeHistory(ctx context.Context, employeeID uint, filter HistoryFilter) (*Page, error) {
	if employeeID == 0 {
		return nil, ErrInvalidInput
	}
	if filter.Action != "" && !filter.Action.valid() {
		return nil, ErrInvalidInput
	}

	err := s.db.WithContext(ctx).Select("id").First(&Employee{}, employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if !filter.IncludeOrphaned {
			return nil, ErrEmployeeNotFound
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	// Owned-record ids are resolved unscoped: a deleted training or ticket
	// row still attributes its history to the employee.
	base := func() *gorm.DB {
		trainingIDs := s.db.WithContext(ctx).Unscoped().Model(&TrainingRecord{}).
			Select("id").Where("employee_id = ?", employeeID)
		ticketIDs := s.db.WithContext(ctx).Unscoped().Model(&TicketRecord{}).
			Select("id").Where("employee_id = ?", employeeID)

		q := s.db.WithContext(ctx).Model(&HistoryRecord{}).Where(
			"(entity_kind = ? AND record_id = ?) OR (entity_kind = ? AND record_id IN (?)) OR (entity_kind = ? AND record_id IN (?))",
			EntityEmployee, employeeID,
			EntityTraining, trainingIDs,
			EntityTicket, ticketIDs,
		)
		if filter.Action != "" {
			q = q.Where("action = ?", filter.Action)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	q := base().Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var entries []HistoryRecord
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	return &Page{Entries: entries, Total: total}, nil
}
