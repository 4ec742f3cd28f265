package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := ConnectDB(":memory:")
	require.NoError(t, err)
	// A pooled second connection would see a different in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(db))
	return db
}

func testDeadline(title string) Deadline {
	return Deadline{
		Title:   title,
		Type:    TypeFiling,
		DueDate: time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAssignsID(t *testing.T) {
	db := newTestDB(t)

	d := testDeadline("Annual accounts")
	require.NoError(t, CreateDeadline(db, &d))
	assert.NotZero(t, d.ID)

	items, err := ListDeadlines(db, ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Annual accounts", items[0].Title)
	assert.Equal(t, TypeFiling, items[0].Type)
	assert.True(t, items[0].DueDate.Equal(d.DueDate))
	assert.Nil(t, items[0].BusinessID)
}

func TestCreateRejectsInvalid(t *testing.T) {
	db := newTestDB(t)

	d := testDeadline("  ")
	assert.Error(t, CreateDeadline(db, &d))

	d = testDeadline("bad type")
	d.Type = "whatever"
	assert.Error(t, CreateDeadline(db, &d))

	d = testDeadline("recurring without interval")
	d.IsRecurring = true
	assert.Error(t, CreateDeadline(db, &d))

	d = testDeadline("negative reminder")
	d.ReminderDays = -1
	assert.Error(t, CreateDeadline(db, &d))
}

func TestValidateClearsStaleRecurrence(t *testing.T) {
	d := testDeadline("was recurring")
	d.RecurrenceMonths = 6

	require.NoError(t, d.Validate())
	assert.Zero(t, d.RecurrenceMonths, "interval is meaningless on a one-off")
}

func TestCompleteDeadlineKeepsDueDate(t *testing.T) {
	db := newTestDB(t)

	d := testDeadline("VAT return")
	require.NoError(t, CreateDeadline(db, &d))
	require.NoError(t, CompleteDeadline(db, d.ID))

	// Hidden from the default listing
	items, err := ListDeadlines(db, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = ListDeadlines(db, ListFilter{IncludeCompleted: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsCompleted)
	assert.True(t, items[0].DueDate.Equal(d.DueDate), "completion never rewrites the due date")
}

func TestListFilters(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, AddBusiness(db, "Acme Ltd"))
	businesses, err := ListBusinesses(db)
	require.NoError(t, err)
	require.Len(t, businesses, 1)
	acme := businesses[0].ID

	org := testDeadline("org-wide report")
	org.Type = TypeReport
	require.NoError(t, CreateDeadline(db, &org))

	scoped := testDeadline("acme renewal")
	scoped.Type = TypeRenewal
	scoped.BusinessID = &acme
	require.NoError(t, CreateDeadline(db, &scoped))

	items, err := ListDeadlines(db, ListFilter{Type: TypeRenewal})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "acme renewal", items[0].Title)
	require.NotNil(t, items[0].BusinessID)
	assert.Equal(t, acme, *items[0].BusinessID)

	items, err = ListDeadlines(db, ListFilter{UnassignedOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "org-wide report", items[0].Title)

	items, err = ListDeadlines(db, ListFilter{BusinessIDs: []int{acme}})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "acme renewal", items[0].Title)

	items, err = ListDeadlines(db, ListFilter{BusinessIDs: []int{acme + 99}})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)

	d := testDeadline("draft")
	require.NoError(t, CreateDeadline(db, &d))

	d.Title = "final"
	d.IsRecurring = true
	d.RecurrenceMonths = 12
	require.NoError(t, UpdateDeadline(db, &d))

	items, err := ListDeadlines(db, ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "final", items[0].Title)
	assert.True(t, items[0].IsRecurring)
	assert.Equal(t, 12, items[0].RecurrenceMonths)

	require.NoError(t, DeleteDeadline(db, d.ID))
	items, err = ListDeadlines(db, ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListOrdersByDueDateThenTitle(t *testing.T) {
	db := newTestDB(t)

	later := testDeadline("zz later")
	later.DueDate = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, CreateDeadline(db, &later))

	b := testDeadline("beta")
	require.NoError(t, CreateDeadline(db, &b))

	a := testDeadline("alpha")
	require.NoError(t, CreateDeadline(db, &a))

	items, err := ListDeadlines(db, ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "alpha", items[0].Title)
	assert.Equal(t, "beta", items[1].Title)
	assert.Equal(t, "zz later", items[2].Title)
}
