package hraccess

import (
	"time"

	"gorm.io/gorm"
)

// Department represents an organizational unit (e.g., Logistics, HR).
type Department struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Location represents a physical site an employee is based at.
type Location struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Employee is the subject of every access decision. DepartmentID is nullable:
// an unassigned employee is reachable by no department manager.
type Employee struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	DepartmentID *uint  `gorm:"index"`
	LocationID   uint   `gorm:"index;not null"`
	UserID       *uint  `gorm:"uniqueIndex"` // account of the person themselves, if any
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// ManagementAssignment links a user to a department they manage.
// Many-to-many: a user may manage several departments and a department may
// have several managers. Management does not own the department. Removal is
// a hard delete: the composite key must be free for a later re-assignment,
// and the history append already preserves the removal record.
type ManagementAssignment struct {
	UserID       uint `gorm:"primaryKey;autoIncrement:false"`
	DepartmentID uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TrainingRecord is an employee-owned record of a completed training.
type TrainingRecord struct {
	ID          uint   `gorm:"primaryKey"`
	EmployeeID  uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	CompletedAt time.Time
	ExpiresAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TicketRecord is an employee-owned licence/certificate entry.
type TicketRecord struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"index;not null"`
	Category   string `gorm:"not null"`
	IssuedAt   time.Time
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// EntityKind tags which logical table a HistoryRecord refers to. A typed
// enum rather than a free-form string so a typo cannot silently create an
// unqueryable orphan.
type EntityKind string

const (
	EntityEmployee   EntityKind = "Employee"
	EntityDepartment EntityKind = "Department"
	EntityLocation   EntityKind = "Location"
	EntityTraining   EntityKind = "TrainingRecord"
	EntityTicket     EntityKind = "TicketRecord"
	EntityManagement EntityKind = "ManagementAssignment"
)

func (k EntityKind) valid() bool {
	switch k {
	case EntityEmployee, EntityDepartment, EntityLocation, EntityTraining, EntityTicket, EntityManagement:
		return true
	}
	return false
}

// HistoryAction is the kind of mutation a HistoryRecord documents.
type HistoryAction string

const (
	ActionCreate HistoryAction = "CREATE"
	ActionUpdate HistoryAction = "UPDATE"
	ActionDelete HistoryAction = "DELETE"
)

func (a HistoryAction) valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// HistoryRecord is one append-only audit entry. Rows are never updated or
// deleted after insertion; (Kind, RecordID) is a weak reference and the
// referenced row may no longer exist. No UpdatedAt/DeletedAt on purpose.
type HistoryRecord struct {
	ID        uint          `gorm:"primaryKey"`
	Kind      EntityKind    `gorm:"column:entity_kind;index;not null"`
	RecordID  uint          `gorm:"index;not null"`
	Action    HistoryAction `gorm:"not null"`
	OldValues *string       // serialized snapshot, absent on CREATE
	NewValues *string       // serialized snapshot, absent on DELETE
	ActorID   *uint         `gorm:"index"` // nil for system-initiated changes
	CreatedAt time.Time     `gorm:"index"`
}
