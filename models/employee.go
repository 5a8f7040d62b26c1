package models

// Employee is created out-of-band (import) and referenced by referrals,
// cases and progress notes. It is never mutated by the workflow.
type Employee struct {
	ID        string `gorm:"primaryKey" json:"id"`
	TenantID  string `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	FirstName string `gorm:"column:first_name;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;not null" json:"last_name"`
	Email     string `gorm:"column:email" json:"email"`
}
