package types

import (
	"fmt"

	"github.com/google/uuid"
)

// ReportID names one stored report. Values are canonical UUID text and are
// only constructed through NewReportID or ParseReportID.
type ReportID string

// NewReportID generates a fresh random report identifier.
// Uniqueness is assumed, not checked against existing records.
func NewReportID() ReportID {
	return ReportID(uuid.NewString())
}

// ParseReportID validates s as canonical UUID text and returns it as a
// ReportID. Returns ErrInvalidReportID wrapped with the rejected input.
func ParseReportID(s string) (ReportID, error) {
	if err := uuid.Validate(s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidReportID, s)
	}
	return ReportID(s), nil
}

// String returns the canonical UUID text of the identifier.
func (id ReportID) String() string {
	return string(id)
}

// Report is one persisted citizen report.
type Report struct {
	ID          ReportID `json:"id"`
	Description string   `json:"description"`
}

// NewReport carries the user-supplied fields of a report before an
// identifier has been assigned.
type NewReport struct {
	Description string
}
