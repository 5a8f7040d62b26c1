package models

import "time"

// User is an authenticated actor (coordinator, manager, company admin)
// within a tenant. Employees are a separate table; a user acts on them.
type User struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	TenantID     string     `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"not null" json:"role"` // "company_admin", "coordinator", "manager"
	CreatedAt    time.Time  `json:"created_at"`
	LastLogoutAt *time.Time `gorm:"column:last_logout_at" json:"-"`
}
