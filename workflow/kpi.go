package workflow

import (
	"math"

	"github.com/teg-hub/fair-chance-workforce-platform/apperr"
	"github.com/teg-hub/fair-chance-workforce-platform/models"
	"github.com/teg-hub/fair-chance-workforce-platform/store"
)

// KPIs derives the tenant's aggregate metrics from current record counts.
// The counts are independent reads, not a shared snapshot; under concurrent
// writes the report is a point-in-time approximation.
func (e *Engine) KPIs(id Identity) (models.KPIReport, error) {
	tenant := id.TenantID

	intake, err := e.store.CountReferrals(tenant, store.ReferralFilter{})
	if err != nil {
		return models.KPIReport{}, apperr.Wrap(apperr.Store, "Failed to compute KPIs", err)
	}
	openCases, err := e.store.CountCases(tenant, []string{models.CaseStatusOpen, models.CaseStatusActiveSupport})
	if err != nil {
		return models.KPIReport{}, apperr.Wrap(apperr.Store, "Failed to compute KPIs", err)
	}
	engagement, err := e.store.CountProgressNotes(tenant, "")
	if err != nil {
		return models.KPIReport{}, apperr.Wrap(apperr.Store, "Failed to compute KPIs", err)
	}
	assigned, err := e.store.CountReferrals(tenant, store.ReferralFilter{AssignedOnly: true})
	if err != nil {
		return models.KPIReport{}, apperr.Wrap(apperr.Store, "Failed to compute KPIs", err)
	}
	responded, err := e.store.CountReferrals(tenant, store.ReferralFilter{AssignedOnly: true, RespondedOnly: true})
	if err != nil {
		return models.KPIReport{}, apperr.Wrap(apperr.Store, "Failed to compute KPIs", err)
	}
	notesFinal, err := e.store.CountProgressNotes(tenant, models.NoteStatusFinal)
	if err != nil {
		return models.KPIReport{}, apperr.Wrap(apperr.Store, "Failed to compute KPIs", err)
	}

	return models.KPIReport{
		IntakeVolume:               intake,
		CaseOpenCount:              openCases,
		EmployeeEngagementCount:    engagement,
		ReferralResponseRate:       rate(responded, assigned),
		ProgressNoteSubmissionRate: rate(notesFinal, engagement),
	}, nil
}

// rate is num/den rounded to 4 decimal places, 0 when the denominator is 0.
func rate(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return math.Round(float64(num)/float64(den)*10000) / 10000
}
