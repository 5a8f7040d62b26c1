package models

// Request payloads bound from JSON by the handlers and validated before any
// store access. Optional fields are pointers so absence survives into the
// persisted record as an explicit NULL.

type ReferralInput struct {
	IntakePath            string   `json:"intake_path"`
	SourceType            string   `json:"source_type"`
	EmployeeID            string   `json:"employee_id"`
	RiskLevel             string   `json:"risk_level"`
	SupportCategoryCodes  []string `json:"support_category_codes"`
	AssignedCoordinatorID *string  `json:"assigned_coordinator_id"`
}

type CaseInput struct {
	EmployeeID            string  `json:"employee_id"`
	AssignedCoordinatorID string  `json:"assigned_coordinator_id"`
	ReferralID            *string `json:"referral_id"`
}

type ProgressNoteInput struct {
	EmployeeID       string   `json:"employee_id"`
	CaseID           string   `json:"case_id"`
	NoteType         string   `json:"note_type"`
	NoteStartDate    string   `json:"note_start_date"`
	InteractionAt    string   `json:"interaction_at"`
	MeetingLocation  string   `json:"meeting_location"`
	AreasOfNeedCodes []string `json:"areas_of_need_codes"`
	SummaryOfMeeting *string  `json:"summary_of_meeting"`
	Status           string   `json:"status"`
}

type EmployeeInput struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// KPIReport is the read-side aggregate. Counts are fetched independently, so
// the report is a point-in-time approximation rather than a snapshot.
type KPIReport struct {
	IntakeVolume               int64   `json:"intake_volume"`
	CaseOpenCount              int64   `json:"case_open_count"`
	EmployeeEngagementCount    int64   `json:"employee_engagement_count"`
	ReferralResponseRate       float64 `json:"referral_response_rate"`
	ProgressNoteSubmissionRate float64 `json:"progress_note_submission_rate"`
}
