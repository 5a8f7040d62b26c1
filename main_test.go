package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/teg-hub/fair-chance-workforce-platform/migrations"
	"github.com/teg-hub/fair-chance-workforce-platform/store"
	"github.com/teg-hub/fair-chance-workforce-platform/utils"
	"github.com/teg-hub/fair-chance-workforce-platform/workflow"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "vertical-slice-test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.Migrate(db))
	utils.DB = db

	return setupRouter(workflow.New(store.NewGormStore(db)))
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	}
	return w, out
}

func loginAs(t *testing.T, r *gin.Engine, tenantID, email string) string {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"tenant_id": tenantID,
		"email":     email,
		"password":  "hunter2-long",
		"role":      "coordinator",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, body := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email":    email,
		"password": "hunter2-long",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func importEmployee(t *testing.T, r *gin.Engine, token, id, first, last string) {
	t.Helper()
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/employees", token, gin.H{
		"id": id, "first_name": first, "last_name": last,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthAndAuthGate(t *testing.T) {
	r := newTestServer(t)

	w, body := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/kpis", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/kpis", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerticalSlice(t *testing.T) {
	r := newTestServer(t)
	token := loginAs(t, r, "tenant-acme", "coord@example.com")

	importEmployee(t, r, token, "e-1", "Ava", "Reed")
	importEmployee(t, r, token, "e-2", "Noah", "Cole")

	// Intake: referral for e-1.
	w, body := doJSON(t, r, http.MethodPost, "/api/v1/referrals", token, gin.H{
		"intake_path":             "referral",
		"source_type":             "manager",
		"employee_id":             "e-1",
		"risk_level":              "high",
		"support_category_codes":  []string{"housing"},
		"assigned_coordinator_id": "u-coord",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "submitted", body["referral_status"])
	referralID := body["id"].(string)

	// Conversion: open a case against the referral.
	w, body = doJSON(t, r, http.MethodPost, "/api/v1/cases", token, gin.H{
		"employee_id":             "e-1",
		"assigned_coordinator_id": "u-coord",
		"referral_id":             referralID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "open", body["case_status"])
	caseID := body["id"].(string)

	w, body = doJSON(t, r, http.MethodGet, "/api/v1/referrals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := body["referrals"].([]interface{})
	require.Len(t, listed, 1)
	converted := listed[0].(map[string]interface{})
	assert.Equal(t, "converted_to_case", converted["referral_status"])
	assert.NotNil(t, converted["first_response_at"])

	// Bad calendar date is rejected before any write.
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/progress-notes", token, gin.H{
		"employee_id":         "e-1",
		"case_id":             caseID,
		"note_type":           "coaching_session",
		"note_start_date":     "2024-13-01",
		"interaction_at":      "2024-06-03T14:00:00Z",
		"meeting_location":    "office",
		"areas_of_need_codes": []string{"transport"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = doJSON(t, r, http.MethodPost, "/api/v1/progress-notes", token, gin.H{
		"employee_id":         "e-1",
		"case_id":             caseID,
		"note_type":           "coaching_session",
		"note_start_date":     "2024-06-03",
		"interaction_at":      "2024-06-03T14:00:00Z",
		"meeting_location":    "office",
		"areas_of_need_codes": []string{"transport"},
		"status":              "final",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "final", body["status"])

	w, body = doJSON(t, r, http.MethodGet, "/api/v1/kpis", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["intake_volume"])
	assert.Equal(t, float64(1), body["case_open_count"])
	assert.Equal(t, float64(1), body["employee_engagement_count"])
	assert.Equal(t, float64(1), body["referral_response_rate"])
	assert.Equal(t, float64(1), body["progress_note_submission_rate"])
}

func TestReferralEmployeeMismatchCreatesNoCase(t *testing.T) {
	r := newTestServer(t)
	token := loginAs(t, r, "tenant-acme", "coord@example.com")

	importEmployee(t, r, token, "e-1", "Ava", "Reed")
	importEmployee(t, r, token, "e-2", "Noah", "Cole")

	w, body := doJSON(t, r, http.MethodPost, "/api/v1/referrals", token, gin.H{
		"intake_path":            "referral",
		"source_type":            "hr",
		"employee_id":            "e-2",
		"risk_level":             "medium",
		"support_category_codes": []string{"benefits"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	referralID := body["id"].(string)

	w, body = doJSON(t, r, http.MethodPost, "/api/v1/cases", token, gin.H{
		"employee_id":             "e-1",
		"assigned_coordinator_id": "u-coord",
		"referral_id":             referralID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, fmt.Sprint(body["detail"]), "mismatch")

	w, body = doJSON(t, r, http.MethodGet, "/api/v1/kpis", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["case_open_count"])
}

func TestCrossTenantIsolation(t *testing.T) {
	r := newTestServer(t)
	acme := loginAs(t, r, "tenant-acme", "acme@example.com")
	rival := loginAs(t, r, "tenant-rival", "rival@example.com")

	importEmployee(t, r, acme, "e-1", "Ava", "Reed")

	// The rival tenant references acme's employee by id: Forbidden, not 404.
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/referrals", rival, gin.H{
		"intake_path":            "referral",
		"source_type":            "manager",
		"employee_id":            "e-1",
		"risk_level":             "low",
		"support_category_codes": []string{"housing"},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// And acme's records never leak into the rival's KPIs.
	w, body := doJSON(t, r, http.MethodGet, "/api/v1/kpis", rival, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["intake_volume"])
}

func TestMeEchoesIdentity(t *testing.T) {
	r := newTestServer(t)
	token := loginAs(t, r, "tenant-acme", "coord@example.com")

	w, body := doJSON(t, r, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tenant-acme", body["tenant_id"])
	assert.NotEmpty(t, body["user_id"])
}
