package models

import "time"

type Referral struct {
	ID                    string     `gorm:"primaryKey" json:"id"`
	TenantID              string     `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	IntakePath            string     `gorm:"column:intake_path;not null" json:"intake_path"`
	SourceType            string     `gorm:"column:source_type;not null" json:"source_type"`
	EmployeeID            string     `gorm:"column:employee_id;not null;index" json:"employee_id"`
	ReferralStatus        string     `gorm:"column:referral_status;not null" json:"referral_status"` // "submitted", "converted_to_case"
	RiskLevel             string     `gorm:"column:risk_level;not null" json:"risk_level"`
	SupportCategoryCodes  StringList `gorm:"column:support_category_codes;type:text;not null" json:"support_category_codes"`
	SubmittedByUserID     string     `gorm:"column:submitted_by_user_id;not null" json:"submitted_by_user_id"`
	AssignedCoordinatorID *string    `gorm:"column:assigned_coordinator_id" json:"assigned_coordinator_id"`
	SubmittedAt           time.Time  `gorm:"column:submitted_at;not null" json:"submitted_at"`
	FirstResponseAt       *time.Time `gorm:"column:first_response_at" json:"first_response_at"`
}

const (
	ReferralStatusSubmitted = "submitted"
	ReferralStatusConverted = "converted_to_case"
)
