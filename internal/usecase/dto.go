package usecase

import "github.com/weihan-tan/touchpoint/internal/entity"

// ProspectInput is the transport shape shared by create and update. Dates
// travel as d-m-yyyy literals (or anything else the normalizer accepts).
type ProspectInput struct {
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Company      string       `json:"company"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Notes        string       `json:"notes"`
	FirstContact string       `json:"firstContact"`
	Status       string       `json:"status"`
	Touches      []TouchInput `json:"touches,omitempty"`
}

type TouchInput struct {
	Name string `json:"name"`
	Due  string `json:"due"`
}

// RawRow is one decoded spreadsheet/CSV row: header -> cell value.
type RawRow map[string]string

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportOutput is the aggregate import report. Skipped rows and defaulted
// dates are counted, not silently swallowed.
type ImportOutput struct {
	Created      int        `json:"created"`
	Skipped      int        `json:"skipped"`
	DateDefaults int        `json:"dateDefaults"`
	Errors       []RowError `json:"errors,omitempty"`
}

type DueItem struct {
	Prospect entity.Prospect `json:"prospect"`
	Touch    entity.Touch    `json:"touch"`
}

type DashboardOutput struct {
	DueToday []DueItem             `json:"dueToday"`
	Pipeline map[entity.Status]int `json:"pipeline"`
}
