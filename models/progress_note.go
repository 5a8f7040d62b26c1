package models

import "time"

type ProgressNote struct {
	ID               string     `gorm:"primaryKey" json:"id"`
	TenantID         string     `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	EmployeeID       string     `gorm:"column:employee_id;not null;index" json:"employee_id"`
	CaseID           string     `gorm:"column:case_id;not null;index" json:"case_id"`
	CoordinatorID    string     `gorm:"column:coordinator_id;not null" json:"coordinator_id"`
	NoteType         string     `gorm:"column:note_type;not null" json:"note_type"`
	NoteStartDate    string     `gorm:"column:note_start_date;not null" json:"note_start_date"` // YYYY-MM-DD
	InteractionAt    time.Time  `gorm:"column:interaction_at;not null" json:"interaction_at"`
	MeetingLocation  string     `gorm:"column:meeting_location;not null" json:"meeting_location"`
	AreasOfNeedCodes StringList `gorm:"column:areas_of_need_codes;type:text;not null" json:"areas_of_need_codes"`
	SummaryOfMeeting *string    `gorm:"column:summary_of_meeting" json:"summary_of_meeting"`
	Status           string     `gorm:"column:status;not null" json:"status"` // "draft", "final"
	CreatedAt        time.Time  `gorm:"column:created_at;not null" json:"created_at"`
}

const (
	NoteStatusDraft = "draft"
	NoteStatusFinal = "final"
)
