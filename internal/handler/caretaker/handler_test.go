package caretaker

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/caregiver-api/internal/model"
	"github.com/careloop/caregiver-api/internal/repository"
	"github.com/careloop/caregiver-api/internal/service/audit"
	caretakerService "github.com/careloop/caregiver-api/internal/service/caretaker"
	"github.com/careloop/caregiver-api/pkg/logger"
)

type fakeCaretakerRepo struct {
	records map[uuid.UUID]*model.Caretaker
	order   []uuid.UUID
}

func newFakeCaretakerRepo() *fakeCaretakerRepo {
	return &fakeCaretakerRepo{records: make(map[uuid.UUID]*model.Caretaker)}
}

func (r *fakeCaretakerRepo) Create(_ context.Context, c *model.Caretaker) error {
	c.CreatedAt = time.Now().UTC()
	cp := *c
	r.records[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCaretakerRepo) Get(_ context.Context, id uuid.UUID) (*model.Caretaker, error) {
	c, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCaretakerRepo) Update(_ context.Context, c *model.Caretaker) error {
	now := time.Now().UTC()
	c.UpdatedAt = &now
	cp := *c
	r.records[c.ID] = &cp
	return nil
}

func (r *fakeCaretakerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.records, id)
	return nil
}

func (r *fakeCaretakerRepo) ListByPatient(_ context.Context, patientID string) ([]*model.Caretaker, error) {
	var out []*model.Caretaker
	for _, id := range r.order {
		if c, ok := r.records[id]; ok && c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCaretakerRepo) ListByPatients(_ context.Context, patientIDs []string) ([]*model.Caretaker, error) {
	members := make(map[string]bool, len(patientIDs))
	for _, id := range patientIDs {
		members[id] = true
	}
	var out []*model.Caretaker
	for _, id := range r.order {
		if c, ok := r.records[id]; ok && members[c.PatientID] {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	patientIDs map[string][]string
}

func (r *fakeUserRepo) Get(_ context.Context, _ string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) ListPatientIDs(_ context.Context, organizationID string) ([]string, error) {
	return r.patientIDs[organizationID], nil
}

type fakeAuditRepo struct {
	entries []*model.AuditLog
}

func (r *fakeAuditRepo) Create(_ context.Context, entry *model.AuditLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, _ map[string]interface{}) ([]*model.AuditLog, error) {
	return r.entries, nil
}

type testEnv struct {
	engine    *gin.Engine
	repo      *fakeCaretakerRepo
	users     *fakeUserRepo
	auditRepo *fakeAuditRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	repo := newFakeCaretakerRepo()
	users := &fakeUserRepo{patientIDs: make(map[string][]string)}
	auditRepo := &fakeAuditRepo{}
	auditor := audit.NewRecorder(audit.NewService(auditRepo, users), logger.NewLogger(nil), nil)
	svc := caretakerService.NewService(repo, users, auditor)

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api"))

	return &testEnv{engine: engine, repo: repo, users: users, auditRepo: auditRepo}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func addBody() map[string]string {
	return map[string]string{
		"patientId": "p1",
		"name":      "Jane",
		"relation":  "daughter",
		"email":     "j@x.com",
		"phone":     "555-1",
	}
}

func TestAddAndGetCaretaker(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/caretaker/add", addBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Caretaker added successfully", resp["message"])
	assert.NotEmpty(t, resp["id"])

	w = env.request(t, http.MethodGet, "/api/caretaker/get?patientId=p1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var caretakers []model.Caretaker
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &caretakers))
	require.Len(t, caretakers, 1)
	assert.Equal(t, resp["id"], caretakers[0].ID.String())
	assert.Equal(t, "Jane", caretakers[0].Name)
	assert.Equal(t, "daughter", caretakers[0].Relation)
	assert.Equal(t, "j@x.com", caretakers[0].Email)
	assert.Equal(t, "555-1", caretakers[0].Phone)
	assert.False(t, caretakers[0].CreatedAt.IsZero())
}

func TestAddCaretakerMissingField(t *testing.T) {
	env := newTestEnv()

	body := addBody()
	delete(body, "phone")

	w := env.request(t, http.MethodPost, "/api/caretaker/add", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No store write, no audit entry
	assert.Empty(t, env.repo.records)
	assert.Empty(t, env.auditRepo.entries)
}

func TestGetCaretakersMissingPatientID(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodGet, "/api/caretaker/get", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCaretakersUnknownPatient(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodGet, "/api/caretaker/get?patientId=ghost", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateCaretaker(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/caretaker/add", addBody())
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.request(t, http.MethodPost, "/api/caretaker/update", map[string]string{
		"id":        created["id"],
		"patientId": "p1",
		"name":      "Jane Doe",
		"relation":  "daughter",
		"phone":     "555-2",
		"email":     "jane@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	id := uuid.MustParse(created["id"])
	assert.Equal(t, "Jane Doe", env.repo.records[id].Name)
	assert.NotNil(t, env.repo.records[id].UpdatedAt)
}

func TestUpdateCaretakerWrongPatient(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/caretaker/add", addBody())
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.request(t, http.MethodPost, "/api/caretaker/update", map[string]string{
		"id":        created["id"],
		"patientId": "p2",
		"name":      "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	id := uuid.MustParse(created["id"])
	assert.Equal(t, "Jane", env.repo.records[id].Name)
}

func TestUpdateCaretakerNotFound(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/caretaker/update", map[string]string{
		"id":        uuid.New().String(),
		"patientId": "p1",
		"name":      "Nobody",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCaretakerInvalidID(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/caretaker/update", map[string]string{
		"id":        "not-a-uuid",
		"patientId": "p1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCaretaker(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodPost, "/api/caretaker/add", addBody())
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.request(t, http.MethodDelete, "/api/caretaker/delete", map[string]string{
		"id":        created["id"],
		"patientId": "p1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	id := uuid.MustParse(created["id"])
	assert.NotContains(t, env.repo.records, id)

	// CREATE then DELETE entries
	require.Len(t, env.auditRepo.entries, 2)
	assert.Equal(t, model.AuditActionDelete, env.auditRepo.entries[1].Action)
}

func TestListByOrganization(t *testing.T) {
	env := newTestEnv()
	env.users.patientIDs["org1"] = []string{"p1"}

	w := env.request(t, http.MethodPost, "/api/caretaker/add", addBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/caretakers/all?organizationId=org1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var caretakers []model.Caretaker
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &caretakers))
	require.Len(t, caretakers, 1)
	assert.Equal(t, "Jane", caretakers[0].Name)
}

func TestListByOrganizationMissingParam(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodGet, "/api/caretakers/all", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByOrganizationNoPatients(t *testing.T) {
	env := newTestEnv()

	w := env.request(t, http.MethodGet, "/api/caretakers/all?organizationId=empty", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
