package usecase

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"github.com/weihan-tan/touchpoint/internal/dates"
	"github.com/weihan-tan/touchpoint/internal/entity"
)

// E.164-like: leading +, first digit non-zero, 7-15 digits total.
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

// ValidateProspectInput checks the transport contract field by field. The
// first-contact date gets its own date-specific message so the form can
// distinguish "missing" from "malformed".
func ValidateProspectInput(input ProspectInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, ValidationError{"firstName", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, ValidationError{"lastName", "is required"})
	}

	if email := strings.TrimSpace(input.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, ValidationError{"email", "is invalid"})
		}
	}

	if phone := strings.TrimSpace(input.Phone); phone != "" {
		if !phonePattern.MatchString(phone) {
			errs = append(errs, ValidationError{"phone", "must be in international format (e.g., +60123456789)"})
		}
	}

	if _, err := dates.Normalize(input.FirstContact); err != nil {
		if errors.Is(err, dates.ErrEmpty) {
			errs = append(errs, ValidationError{"firstContact", "is required"})
		} else {
			errs = append(errs, ValidationError{"firstContact", "invalid date, use d-m-yyyy (e.g., 15-9-2025)"})
		}
	}

	if input.Status != "" && !entity.Status(input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "must be one of Pending, Interested, MeetingScheduled, DealClosed, NotInterested"})
	}

	for _, t := range input.Touches {
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, ValidationError{"touches", "touch name is required"})
			break
		}
		if _, err := dates.Normalize(t.Due); err != nil {
			errs = append(errs, ValidationError{"touches", "touch due date is invalid"})
			break
		}
	}

	return errs
}
