package models

import "time"

// Case is an active support engagement for an employee. ReferralID is set
// when the case was opened by converting a referral.
type Case struct {
	ID                    string    `gorm:"primaryKey" json:"id"`
	TenantID              string    `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	EmployeeID            string    `gorm:"column:employee_id;not null;index" json:"employee_id"`
	ReferralID            *string   `gorm:"column:referral_id" json:"referral_id"`
	AssignedCoordinatorID string    `gorm:"column:assigned_coordinator_id;not null" json:"assigned_coordinator_id"`
	CaseStatus            string    `gorm:"column:case_status;not null" json:"case_status"` // "open", "active_support", ...
	OpenedAt              time.Time `gorm:"column:opened_at;not null" json:"opened_at"`
}

const (
	CaseStatusOpen          = "open"
	CaseStatusActiveSupport = "active_support"
)
