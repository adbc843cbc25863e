package hraccess

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordValidation(t *testing.T) {
	svc := newTestService(t)

	assert.ErrorIs(t, svc.Record(ctxb(), HistoryRecord{Kind: "Bogus", RecordID: 1, Action: ActionCreate}), ErrInvalidInput)
	assert.ErrorIs(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: 1, Action: "TOUCH"}), ErrInvalidInput)
	assert.ErrorIs(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: 0, Action: ActionCreate}), ErrInvalidInput)
}

func TestRecordIsAppendOnly(t *testing.T) {
	svc := newTestService(t)
	_, _, empID := seedOrg(t, svc)

	old := `{"first_name":"Maija"}`
	entry := HistoryRecord{Kind: EntityEmployee, RecordID: empID, Action: ActionUpdate, OldValues: &old}
	require.NoError(t, svc.Record(ctxb(), entry))

	// A second call with different content appends, never overwrites —
	// even when the caller reuses an entry carrying a row id.
	var first HistoryRecord
	require.NoError(t, svc.db.First(&first).Error)
	second := first
	second.Action = ActionDelete
	require.NoError(t, svc.Record(ctxb(), second))

	var count int64
	require.NoError(t, svc.db.Model(&HistoryRecord{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var unchanged HistoryRecord
	require.NoError(t, svc.db.First(&unchanged, first.ID).Error)
	assert.Equal(t, ActionUpdate, unchanged.Action)
	require.NotNil(t, unchanged.OldValues)
	assert.JSONEq(t, old, *unchanged.OldValues)
}

func TestQueryOrderingNewestFirst(t *testing.T) {
	svc := newTestService(t)
	_, _, empID := seedOrg(t, svc)

	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: empID, Action: ActionCreate, CreatedAt: t1}))
	require.NoError(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: empID, Action: ActionUpdate, CreatedAt: t2}))

	page, err := svc.QueryEmployeeHistory(ctxb(), empID, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, ActionUpdate, page.Entries[0].Action)
	assert.Equal(t, ActionCreate, page.Entries[1].Action)
}

func TestQueryPaginationStable(t *testing.T) {
	svc := newTestService(t)
	_, _, empID := seedOrg(t, svc)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, svc.Record(ctxb(), HistoryRecord{
			Kind: EntityEmployee, RecordID: empID, Action: ActionUpdate,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	full, err := svc.QueryEmployeeHistory(ctxb(), empID, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, full.Entries, 4)
	assert.EqualValues(t, 4, full.Total)

	var paged []HistoryRecord
	for offset := 0; offset < 4; offset++ {
		page, err := svc.QueryEmployeeHistory(ctxb(), empID, HistoryFilter{Limit: 1, Offset: offset})
		require.NoError(t, err)
		require.Len(t, page.Entries, 1)
		assert.EqualValues(t, 4, page.Total)
		paged = append(paged, page.Entries[0])
	}

	for i := range full.Entries {
		assert.Equal(t, full.Entries[i].ID, paged[i].ID, "page walk must match unpaginated order")
	}
}

func TestQueryActionFilter(t *testing.T) {
	svc := newTestService(t)
	_, _, empID := seedOrg(t, svc)

	require.NoError(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: empID, Action: ActionCreate}))
	require.NoError(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: empID, Action: ActionUpdate}))
	require.NoError(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: empID, Action: ActionUpdate}))

	page, err := svc.QueryEmployeeHistory(ctxb(), empID, HistoryFilter{Action: ActionUpdate})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	for _, e := range page.Entries {
		assert.Equal(t, ActionUpdate, e.Action)
	}

	_, err = svc.QueryEmployeeHistory(ctxb(), empID, HistoryFilter{Action: "TOUCH"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOrphanSuppressionDefault(t *testing.T) {
	svc := newTestService(t)
	loc, deptID, _ := seedOrg(t, svc)

	admin := uintPtr(1)
	emp, err := svc.CreateEmployee(ctxb(), admin, &Employee{
		FirstName: "Karlis", LastName: "Vitols", DepartmentID: &deptID, LocationID: loc,
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEmployee(ctxb(), admin, emp.ID))

	_, err = svc.QueryEmployeeHistory(ctxb(), emp.ID, HistoryFilter{})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)

	page, err := svc.QueryEmployeeHistory(ctxb(), emp.ID, HistoryFilter{IncludeOrphaned: true})
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, ActionDelete, page.Entries[0].Action)
	assert.Equal(t, ActionCreate, page.Entries[1].Action)
}

func TestQueryIncludesOwnedRecordHistory(t *testing.T) {
	svc := newTestService(t)
	_, _, empID := seedOrg(t, svc)

	admin := uintPtr(1)
	training, err := svc.AddTrainingRecord(ctxb(), admin, &TrainingRecord{
		EmployeeID: empID, Name: "Forklift Safety", CompletedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = svc.AddTicketRecord(ctxb(), admin, &TicketRecord{
		EmployeeID: empID, Category: "Forklift Licence", IssuedAt: time.Now(),
	})
	require.NoError(t, err)

	page, err := svc.QueryEmployeeHistory(ctxb(), empID, HistoryFilter{})
	require.NoError(t, err)

	kinds := make(map[EntityKind]int)
	for _, e := range page.Entries {
		kinds[e.Kind]++
	}
	assert.Equal(t, 1, kinds[EntityTraining])
	assert.Equal(t, 1, kinds[EntityTicket])

	// Deleting the owned record keeps its history attributable.
	require.NoError(t, svc.DeleteTrainingRecord(ctxb(), admin, training.ID))
	page, err = svc.QueryEmployeeHistory(ctxb(), empID, HistoryFilter{})
	require.NoError(t, err)

	kinds = make(map[EntityKind]int)
	for _, e := range page.Entries {
		kinds[e.Kind]++
	}
	assert.Equal(t, 2, kinds[EntityTraining], "training CREATE and DELETE both belong to the employee")
}

func TestQueryDoesNotMixEmployees(t *testing.T) {
	svc := newTestService(t)
	loc, deptID, empID := seedOrg(t, svc)

	other := Employee{FirstName: "Liga", LastName: "Kalnina", DepartmentID: &deptID, LocationID: loc}
	require.NoError(t, svc.db.Create(&other).Error)

	require.NoError(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: empID, Action: ActionUpdate}))
	require.NoError(t, svc.Record(ctxb(), HistoryRecord{Kind: EntityEmployee, RecordID: other.ID, Action: ActionUpdate}))

	page, err := svc.QueryEmployeeHistory(ctxb(), empID, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, empID, page.Entries[0].RecordID)
}
