package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextPendingPicksLowestIndex(t *testing.T) {
	touches := []Touch{
		{ID: "c", Index: 2, Status: TouchPending},
		{ID: "a", Index: 0, Status: TouchDone},
		{ID: "b", Index: 1, Status: TouchPending},
	}

	next := NextPending(touches)
	assert.NotNil(t, next)
	assert.Equal(t, "b", next.ID)
}

func TestNextPendingNoneLeft(t *testing.T) {
	touches := []Touch{
		{ID: "a", Index: 0, Status: TouchDone},
		{ID: "b", Index: 1, Status: TouchDone},
	}
	assert.Nil(t, NextPending(touches))
	assert.Nil(t, NextPending(nil))
}

func TestNextPendingDuplicateIndexStillDeterministic(t *testing.T) {
	// Index uniqueness should hold by construction; if it ever breaks the
	// lowest index still wins.
	touches := []Touch{
		{ID: "x", Index: 1, Status: TouchPending},
		{ID: "y", Index: 1, Status: TouchPending},
		{ID: "z", Index: 0, Status: TouchPending},
	}
	assert.Equal(t, "z", NextPending(touches).ID)
}

func TestDueByInclusiveCutoff(t *testing.T) {
	cutoff := day(2025, 6, 10)
	touches := []Touch{
		{ID: "overdue", Index: 0, Status: TouchPending, Due: day(2025, 6, 1)},
		{ID: "today", Index: 1, Status: TouchPending, Due: day(2025, 6, 10)},
		{ID: "future", Index: 2, Status: TouchPending, Due: day(2025, 6, 11)},
		{ID: "done", Index: 3, Status: TouchDone, Due: day(2025, 6, 1)},
	}

	due := DueBy(touches, cutoff)
	assert.Len(t, due, 2)
	assert.Equal(t, "overdue", due[0].ID)
	assert.Equal(t, "today", due[1].ID)
}

func TestDueByIdempotentAndOrderPreserving(t *testing.T) {
	cutoff := day(2025, 6, 10)
	touches := []Touch{
		{ID: "b", Index: 1, Status: TouchPending, Due: day(2025, 6, 2)},
		{ID: "a", Index: 0, Status: TouchPending, Due: day(2025, 6, 3)},
		{ID: "c", Index: 2, Status: TouchPending, Due: day(2025, 6, 1)},
	}

	first := DueBy(touches, cutoff)
	second := DueBy(touches, cutoff)

	assert.Equal(t, first, second)
	// Relative input order preserved, no re-sort by due date.
	assert.Equal(t, "b", first[0].ID)
	assert.Equal(t, "a", first[1].ID)
	assert.Equal(t, "c", first[2].ID)
}

func TestSortByIndex(t *testing.T) {
	touches := []Touch{
		{ID: "c", Index: 2},
		{ID: "a", Index: 0},
		{ID: "b", Index: 1},
	}
	SortByIndex(touches)
	assert.Equal(t, []string{"a", "b", "c"}, []string{touches[0].ID, touches[1].ID, touches[2].ID})
}

func TestStatusEnum(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusMeetingScheduled.Valid())
	assert.False(t, Status("Unknown").Valid())
	assert.Equal(t, "Meeting Scheduled", StatusMeetingScheduled.Label())
	assert.Equal(t, "Pending", StatusPending.Label())
}
