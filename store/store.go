// Package store is the record-store boundary: point lookups, inserts,
// partial updates and filtered counts, plus an explicit multi-operation
// transaction primitive so the workflow never issues a pseudo-transaction as
// two independent calls.
package store

import (
	"github.com/teg-hub/fair-chance-workforce-platform/models"
)

// ReferralFilter narrows referral counts. Zero value matches every referral
// in the tenant.
type ReferralFilter struct {
	AssignedOnly  bool // assigned_coordinator_id IS NOT NULL
	RespondedOnly bool // first_response_at IS NOT NULL
}

// Store is the contract the workflow engine requires from persistence.
// Find methods return (nil, nil) when the record does not exist; the caller
// decides whether absence is NotFound or Forbidden.
type Store interface {
	FindEmployee(id string) (*models.Employee, error)
	FindReferral(id string) (*models.Referral, error)
	FindCase(id string) (*models.Case, error)

	InsertEmployee(e *models.Employee) error
	InsertReferral(r *models.Referral) error
	InsertCase(c *models.Case) error
	InsertProgressNote(n *models.ProgressNote) error

	// UpdateReferral applies a partial column patch by id.
	UpdateReferral(id string, patch map[string]interface{}) error

	ListEmployees(tenantID string) ([]models.Employee, error)
	ListReferrals(tenantID string) ([]models.Referral, error)

	CountReferrals(tenantID string, f ReferralFilter) (int64, error)
	CountCases(tenantID string, statuses []string) (int64, error)
	CountProgressNotes(tenantID string, status string) (int64, error)

	// InTransaction runs fn against a store whose operations commit or roll
	// back as one unit.
	InTransaction(fn func(tx Store) error) error
}
