// Package workflow owns cross-entity consistency and the referral-to-case
// transition. Every operation validates its input in full, then checks
// relational invariants against the store, then writes. A failure anywhere
// leaves no partial writes behind.
package workflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/teg-hub/fair-chance-workforce-platform/apperr"
	"github.com/teg-hub/fair-chance-workforce-platform/models"
	"github.com/teg-hub/fair-chance-workforce-platform/store"
	"github.com/teg-hub/fair-chance-workforce-platform/validation"
)

// Identity is the resolved caller: a verified tenant and user id. Produced by
// the auth middleware; every tenant-ownership check compares against it.
type Identity struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
}

// Result is the write-side response payload.
type Result struct {
	ID     string
	Status string
}

type Engine struct {
	store store.Store
	enums validation.Enums
	now   func() time.Time
}

func New(s store.Store) *Engine {
	return &Engine{
		store: s,
		enums: validation.DefaultEnums(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// findEmployee resolves an employee the caller may act on. Existence is
// checked before tenancy so a cross-tenant id comes back Forbidden, never
// NotFound.
func (e *Engine) findEmployee(id Identity, employeeID string) (*models.Employee, error) {
	emp, err := e.store.FindEmployee(employeeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "employee lookup failed", err)
	}
	if emp == nil {
		return nil, apperr.New(apperr.NotFound, "Employee not found")
	}
	if emp.TenantID != id.TenantID {
		return nil, apperr.New(apperr.Forbidden, "Cross-tenant access denied")
	}
	return emp, nil
}

// SubmitReferral validates the intake payload, confirms the employee belongs
// to the caller's tenant, and persists a new referral in "submitted" state.
func (e *Engine) SubmitReferral(id Identity, in models.ReferralInput) (Result, error) {
	if err := validation.Referral(e.enums, in); err != nil {
		return Result{}, err
	}
	if _, err := e.findEmployee(id, in.EmployeeID); err != nil {
		return Result{}, err
	}

	ref := &models.Referral{
		ID:                    uuid.NewString(),
		TenantID:              id.TenantID,
		IntakePath:            in.IntakePath,
		SourceType:            in.SourceType,
		EmployeeID:            in.EmployeeID,
		ReferralStatus:        models.ReferralStatusSubmitted,
		RiskLevel:             in.RiskLevel,
		SupportCategoryCodes:  models.StringList(in.SupportCategoryCodes),
		SubmittedByUserID:     id.UserID,
		AssignedCoordinatorID: in.AssignedCoordinatorID,
		SubmittedAt:           e.now(),
	}
	if err := e.store.InsertReferral(ref); err != nil {
		return Result{}, apperr.Wrap(apperr.Store, "Failed to submit referral", err)
	}
	return Result{ID: ref.ID, Status: ref.ReferralStatus}, nil
}

// OpenCase opens a support case for an employee. When a referral id is given
// the referral is converted in the same transaction as the case insert, so a
// concurrent reader never sees the new case without the conversion.
func (e *Engine) OpenCase(id Identity, in models.CaseInput) (Result, error) {
	if err := validation.Case(in); err != nil {
		return Result{}, err
	}
	if _, err := e.findEmployee(id, in.EmployeeID); err != nil {
		return Result{}, err
	}

	var ref *models.Referral
	if in.ReferralID != nil {
		var err error
		ref, err = e.store.FindReferral(*in.ReferralID)
		if err != nil {
			return Result{}, apperr.Wrap(apperr.Store, "referral lookup failed", err)
		}
		if ref == nil {
			return Result{}, apperr.New(apperr.NotFound, "Referral not found")
		}
		if ref.TenantID != id.TenantID {
			return Result{}, apperr.New(apperr.Forbidden, "Cross-tenant access denied")
		}
		if ref.EmployeeID != in.EmployeeID {
			return Result{}, apperr.New(apperr.InvalidInput, "Referral/employee mismatch")
		}
	}

	now := e.now()
	cs := &models.Case{
		ID:                    uuid.NewString(),
		TenantID:              id.TenantID,
		EmployeeID:            in.EmployeeID,
		ReferralID:            in.ReferralID,
		AssignedCoordinatorID: in.AssignedCoordinatorID,
		CaseStatus:            models.CaseStatusOpen,
		OpenedAt:              now,
	}

	err := e.store.InTransaction(func(tx store.Store) error {
		if ref != nil {
			patch := map[string]interface{}{"referral_status": models.ReferralStatusConverted}
			// first_response_at is set once and kept on repeat conversions.
			if ref.FirstResponseAt == nil {
				patch["first_response_at"] = now
			}
			if err := tx.UpdateReferral(ref.ID, patch); err != nil {
				return err
			}
		}
		return tx.InsertCase(cs)
	})
	if err != nil {
		return Result{}, apperr.Wrap(apperr.Store, "Failed to open case", err)
	}
	return Result{ID: cs.ID, Status: cs.CaseStatus}, nil
}

// LogProgressNote records a coordinator/employee interaction against a case
// in the caller's tenant. The acting user becomes the note's coordinator.
func (e *Engine) LogProgressNote(id Identity, in models.ProgressNoteInput) (Result, error) {
	if err := validation.ProgressNote(e.enums, in); err != nil {
		return Result{}, err
	}

	cs, err := e.store.FindCase(in.CaseID)
	if err != nil {
		return Result{}, apperr.Wrap(apperr.Store, "case lookup failed", err)
	}
	if cs == nil {
		return Result{}, apperr.New(apperr.NotFound, "Case not found")
	}
	if cs.TenantID != id.TenantID {
		return Result{}, apperr.New(apperr.Forbidden, "Cross-tenant access denied")
	}
	if cs.EmployeeID != in.EmployeeID {
		return Result{}, apperr.New(apperr.InvalidInput, "Employee/case mismatch")
	}

	interactionAt, err := validation.ParseTimestamp(in.InteractionAt)
	if err != nil {
		return Result{}, apperr.New(apperr.InvalidInput, "interaction_at must be ISO datetime")
	}
	status := in.Status
	if status == "" {
		status = models.NoteStatusDraft
	}

	note := &models.ProgressNote{
		ID:               uuid.NewString(),
		TenantID:         id.TenantID,
		EmployeeID:       in.EmployeeID,
		CaseID:           in.CaseID,
		CoordinatorID:    id.UserID,
		NoteType:         in.NoteType,
		NoteStartDate:    in.NoteStartDate,
		InteractionAt:    interactionAt,
		MeetingLocation:  in.MeetingLocation,
		AreasOfNeedCodes: models.StringList(in.AreasOfNeedCodes),
		SummaryOfMeeting: in.SummaryOfMeeting,
		Status:           status,
		CreatedAt:        e.now(),
	}
	if err := e.store.InsertProgressNote(note); err != nil {
		return Result{}, apperr.Wrap(apperr.Store, "Failed to log progress note", err)
	}
	return Result{ID: note.ID, Status: note.Status}, nil
}

// RegisterEmployee is the out-of-band import surface for the employee table.
func (e *Engine) RegisterEmployee(id Identity, in models.EmployeeInput) (Result, error) {
	if err := validation.Employee(in); err != nil {
		return Result{}, err
	}
	emp := &models.Employee{
		ID:        in.ID,
		TenantID:  id.TenantID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	if err := e.store.InsertEmployee(emp); err != nil {
		return Result{}, apperr.Wrap(apperr.Store, "Failed to import employee", err)
	}
	return Result{ID: emp.ID, Status: "imported"}, nil
}

func (e *Engine) ListEmployees(id Identity) ([]models.Employee, error) {
	out, err := e.store.ListEmployees(id.TenantID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "Failed to fetch employees", err)
	}
	return out, nil
}

func (e *Engine) ListReferrals(id Identity) ([]models.Referral, error) {
	out, err := e.store.ListReferrals(id.TenantID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "Failed to fetch referrals", err)
	}
	return out, nil
}
