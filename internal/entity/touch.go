package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	TouchPending = "Pending"
	TouchDone    = "Done"
)

// Touch is one scheduled follow-up owned by a single prospect. Index gives
// the cadence order within that prospect and is unique per prospect.
type Touch struct {
	ID         string    `json:"id"`
	ProspectID string    `json:"prospectId"`
	Index      int       `json:"index"`
	Name       string    `json:"name"`
	Due        time.Time `json:"due"`
	Status     string    `json:"status"`
}

func NewTouch(prospectID string, index int, name string, due time.Time) Touch {
	return Touch{
		ID:         uuid.New().String(),
		ProspectID: prospectID,
		Index:      index,
		Name:       name,
		Due:        due,
		Status:     TouchPending,
	}
}

// NextPending returns the pending touch with the smallest index, or nil.
// If index uniqueness is ever violated the lowest index still wins.
func NextPending(touches []Touch) *Touch {
	var next *Touch
	for i := range touches {
		t := &touches[i]
		if t.Status != TouchPending {
			continue
		}
		if next == nil || t.Index < next.Index {
			next = t
		}
	}
	return next
}

// DueBy returns every pending touch due on or before cutoff, preserving the
// relative order of the input.
func DueBy(touches []Touch, cutoff time.Time) []Touch {
	var due []Touch
	for _, t := range touches {
		if t.Status == TouchPending && !t.Due.After(cutoff) {
			due = append(due, t)
		}
	}
	return due
}

func SortByIndex(touches []Touch) {
	sort.SliceStable(touches, func(i, j int) bool {
		return touches[i].Index < touches[j].Index
	})
}
