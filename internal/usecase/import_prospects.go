package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/weihan-tan/touchpoint/internal/dates"
)

// Candidate header spellings per logical field, probed in order. The explicit
// first/last pair always beats the combined "Name" fallback.
var (
	firstNameKeys = []string{"First Name", "first_name"}
	lastNameKeys  = []string{"Last Name", "last_name"}
	combinedKeys  = []string{"Name", "name"}
	companyKeys   = []string{"Company", "company"}
	emailKeys     = []string{"Email", "email"}
	phoneKeys     = []string{"Phone", "phone"}
	contactKeys   = []string{"First Contact", "first_contact"}
)

type ImportProspectsUseCase struct {
	Create *CreateProspectUseCase

	// RowTimeout bounds each create; a slow row fails alone instead of
	// stalling the batch.
	RowTimeout time.Duration
}

func NewImportProspectsUseCase(create *CreateProspectUseCase) *ImportProspectsUseCase {
	return &ImportProspectsUseCase{
		Create:     create,
		RowTimeout: 10 * time.Second,
	}
}

// reconciledRow keeps the 1-based source row so batch errors point at the
// right line of the uploaded file.
type reconciledRow struct {
	Row   int
	Input ProspectInput
}

// Reconcile maps raw rows to creation requests. Rows missing both names are
// skipped; unparseable first-contact dates fall back to refDate and are
// counted so the leniency stays visible.
func (uc *ImportProspectsUseCase) Reconcile(rows []RawRow, refDate time.Time) ([]ProspectInput, ImportOutput) {
	reconciled, report := uc.reconcile(rows, refDate)
	inputs := make([]ProspectInput, len(reconciled))
	for i, r := range reconciled {
		inputs[i] = r.Input
	}
	return inputs, report
}

func (uc *ImportProspectsUseCase) reconcile(rows []RawRow, refDate time.Time) ([]reconciledRow, ImportOutput) {
	var out []reconciledRow
	var report ImportOutput

	for i, row := range rows {
		firstName := pick(row, firstNameKeys)
		lastName := pick(row, lastNameKeys)

		if firstName == "" && lastName == "" {
			if combined := pick(row, combinedKeys); combined != "" {
				parts := strings.Fields(combined)
				firstName = parts[0]
				lastName = strings.Join(parts[1:], " ")
			}
		}

		// Both names or nothing.
		if firstName == "" || lastName == "" {
			report.Skipped++
			continue
		}

		rawContact := pick(row, contactKeys)
		contact, defaulted := dates.NormalizeOrFallback(rawContact, refDate)
		if defaulted {
			report.DateDefaults++
			reason := "unparseable"
			if rawContact == "" {
				reason = "missing"
			}
			report.Errors = append(report.Errors, RowError{
				Row:     i + 1,
				Message: "first contact date " + reason + ", defaulted to " + dates.Format(refDate),
			})
		}

		out = append(out, reconciledRow{
			Row: i + 1,
			Input: ProspectInput{
				FirstName:    firstName,
				LastName:     lastName,
				Company:      pick(row, companyKeys),
				Email:        pick(row, emailKeys),
				Phone:        pick(row, phoneKeys),
				FirstContact: dates.Format(contact),
				Status:       "Pending",
				Notes:        "",
			},
		})
	}

	return out, report
}

// Execute reconciles and creates one prospect per surviving row, in file
// order. A failed row is recorded and left behind; nothing is retried and no
// row aborts the rest.
func (uc *ImportProspectsUseCase) Execute(ctx context.Context, rows []RawRow, refDate time.Time) ImportOutput {
	reconciled, report := uc.reconcile(rows, refDate)

	for _, r := range reconciled {
		rowCtx, cancel := context.WithTimeout(ctx, uc.RowTimeout)
		_, err := uc.Create.Execute(rowCtx, r.Input)
		cancel()

		if err != nil {
			log.Printf("import: row %d (%s %s) failed: %v", r.Row, r.Input.FirstName, r.Input.LastName, err)
			report.Errors = append(report.Errors, RowError{
				Row:     r.Row,
				Message: fmt.Sprintf("create failed: %v", err),
			})
			continue
		}
		report.Created++
	}

	return report
}

func pick(row RawRow, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(row[k]); v != "" {
			return v
		}
	}
	return ""
}
