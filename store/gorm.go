package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/teg-hub/fair-chance-workforce-platform/models"
)

// GormStore implements Store on a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindEmployee(id string) (*models.Employee, error) {
	var e models.Employee
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &e, nil
}

func (s *GormStore) FindReferral(id string) (*models.Referral, error) {
	var r models.Referral
	if err := s.db.First(&r, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &r, nil
}

func (s *GormStore) FindCase(id string) (*models.Case, error) {
	var c models.Case
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, ignoreNotFound(err)
	}
	return &c, nil
}

func (s *GormStore) InsertEmployee(e *models.Employee) error {
	return s.db.Create(e).Error
}

func (s *GormStore) InsertReferral(r *models.Referral) error {
	return s.db.Create(r).Error
}

func (s *GormStore) InsertCase(c *models.Case) error {
	return s.db.Create(c).Error
}

func (s *GormStore) InsertProgressNote(n *models.ProgressNote) error {
	return s.db.Create(n).Error
}

func (s *GormStore) UpdateReferral(id string, patch map[string]interface{}) error {
	return s.db.Model(&models.Referral{}).Where("id = ?", id).Updates(patch).Error
}

func (s *GormStore) ListEmployees(tenantID string) ([]models.Employee, error) {
	var out []models.Employee
	err := s.db.Where("tenant_id = ?", tenantID).Order("last_name, first_name").Find(&out).Error
	return out, err
}

func (s *GormStore) ListReferrals(tenantID string) ([]models.Referral, error) {
	var out []models.Referral
	err := s.db.Where("tenant_id = ?", tenantID).Order("submitted_at desc").Find(&out).Error
	return out, err
}

func (s *GormStore) CountReferrals(tenantID string, f ReferralFilter) (int64, error) {
	q := s.db.Model(&models.Referral{}).Where("tenant_id = ?", tenantID)
	if f.AssignedOnly {
		q = q.Where("assigned_coordinator_id IS NOT NULL")
	}
	if f.RespondedOnly {
		q = q.Where("first_response_at IS NOT NULL")
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (s *GormStore) CountCases(tenantID string, statuses []string) (int64, error) {
	q := s.db.Model(&models.Case{}).Where("tenant_id = ?", tenantID)
	if len(statuses) > 0 {
		q = q.Where("case_status IN ?", statuses)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (s *GormStore) CountProgressNotes(tenantID string, status string) (int64, error) {
	q := s.db.Model(&models.ProgressNote{}).Where("tenant_id = ?", tenantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (s *GormStore) InTransaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func ignoreNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
