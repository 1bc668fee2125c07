package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending          Status = "Pending"
	StatusInterested       Status = "Interested"
	StatusMeetingScheduled Status = "MeetingScheduled"
	StatusDealClosed       Status = "DealClosed"
	StatusNotInterested    Status = "NotInterested"
)

// AllStatuses is the fixed pipeline order used for display and zero-filled counts.
var AllStatuses = []Status{
	StatusPending,
	StatusInterested,
	StatusMeetingScheduled,
	StatusDealClosed,
	StatusNotInterested,
}

func (s Status) Valid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s Status) Label() string {
	return strings.Replace(string(s), "MeetingScheduled", "Meeting Scheduled", 1)
}

type Prospect struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Company      string    `json:"company,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	FirstContact time.Time `json:"firstContact"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	Touches      []Touch   `json:"touches"`
}

func NewProspect(firstName, lastName string) *Prospect {
	return &Prospect{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
		Touches:   []Touch{},
	}
}

func (p *Prospect) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
