// Package validation holds the pure per-entity validators. They do no I/O
// and run to completion before the workflow touches the store. Enum sets are
// passed in as immutable configuration rather than read from globals.
package validation

import (
	"regexp"
	"time"

	"github.com/teg-hub/fair-chance-workforce-platform/apperr"
	"github.com/teg-hub/fair-chance-workforce-platform/models"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Set map[string]bool

func (s Set) Has(v string) bool { return s[v] }

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = true
	}
	return s
}

// Enums is the fixed vocabulary for every enum-typed field. Built once at
// process start; validators never consult mutable global state.
type Enums struct {
	IntakePaths      Set
	SourceTypes      Set
	RiskLevels       Set
	NoteTypes        Set
	MeetingLocations Set
	NoteStatuses     Set
}

func DefaultEnums() Enums {
	return Enums{
		IntakePaths:      NewSet("referral", "direct_engagement"),
		SourceTypes:      NewSet("employee_self", "manager", "coordinator", "hr", "anonymous_other"),
		RiskLevels:       NewSet("low", "medium", "high", "critical"),
		NoteTypes:        NewSet("intake", "coaching_session", "resource_referral", "crisis", "follow_up"),
		MeetingLocations: NewSet("office", "garage", "newberry", "community", "phone", "video", "text", "email"),
		NoteStatuses:     NewSet(models.NoteStatusDraft, models.NoteStatusFinal),
	}
}

// IsISODate reports whether v is a real calendar date written exactly as
// YYYY-MM-DD. The shape check comes first so "2024-1-1" fails even though it
// parses.
func IsISODate(v string) bool {
	if !isoDatePattern.MatchString(v) {
		return false
	}
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

// ParseTimestamp accepts any RFC 3339 instant.
func ParseTimestamp(v string) (time.Time, error) {
	return time.Parse(time.RFC3339, v)
}

func Referral(e Enums, in models.ReferralInput) error {
	if in.IntakePath == "" || in.SourceType == "" || in.EmployeeID == "" || in.RiskLevel == "" || in.SupportCategoryCodes == nil {
		return apperr.New(apperr.InvalidInput, "Missing required fields")
	}
	if !e.IntakePaths.Has(in.IntakePath) || !e.SourceTypes.Has(in.SourceType) || !e.RiskLevels.Has(in.RiskLevel) {
		return apperr.New(apperr.InvalidInput, "Invalid intake/source/risk enum")
	}
	if len(in.SupportCategoryCodes) == 0 {
		return apperr.New(apperr.InvalidInput, "support_category_codes must be a non-empty array")
	}
	return nil
}

func Case(in models.CaseInput) error {
	if in.EmployeeID == "" || in.AssignedCoordinatorID == "" {
		return apperr.New(apperr.InvalidInput, "Missing required fields")
	}
	return nil
}

func ProgressNote(e Enums, in models.ProgressNoteInput) error {
	if in.EmployeeID == "" || in.CaseID == "" || in.NoteType == "" || in.NoteStartDate == "" ||
		in.InteractionAt == "" || in.MeetingLocation == "" || in.AreasOfNeedCodes == nil {
		return apperr.New(apperr.InvalidInput, "Missing required fields")
	}
	if !e.NoteTypes.Has(in.NoteType) {
		return apperr.New(apperr.InvalidInput, "Invalid note_type")
	}
	if !IsISODate(in.NoteStartDate) {
		return apperr.New(apperr.InvalidInput, "note_start_date must be ISO date (YYYY-MM-DD)")
	}
	if _, err := ParseTimestamp(in.InteractionAt); err != nil {
		return apperr.New(apperr.InvalidInput, "interaction_at must be ISO datetime")
	}
	if !e.MeetingLocations.Has(in.MeetingLocation) {
		return apperr.New(apperr.InvalidInput, "Invalid meeting_location")
	}
	if in.Status != "" && !e.NoteStatuses.Has(in.Status) {
		return apperr.New(apperr.InvalidInput, "Invalid status")
	}
	return nil
}

func Employee(in models.EmployeeInput) error {
	if in.FirstName == "" || in.LastName == "" {
		return apperr.New(apperr.InvalidInput, "Missing required fields")
	}
	return nil
}
