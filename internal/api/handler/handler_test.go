package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"railassist/backend/internal/api/handler"
	"railassist/backend/internal/attachment"
	"railassist/backend/internal/auth"
	"railassist/backend/internal/complaint"
	"railassist/backend/internal/models"
	"railassist/backend/internal/notify"
	"railassist/backend/internal/routing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	engine          *gin.Engine
	auth            *auth.Service
	complaintStore  *MockComplaintStore
	notifyStore     *MockNotifyStore
	attachmentStore *MockAttachmentStore
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, err := routing.New()
	require.NoError(t, err)

	api := &testAPI{
		complaintStore:  new(MockComplaintStore),
		notifyStore:     new(MockNotifyStore),
		attachmentStore: new(MockAttachmentStore),
	}

	log := zap.NewNop()
	api.auth = auth.NewService(nil, "test-secret", log)
	complaints := complaint.NewService(api.complaintStore, router, new(MockEvents), log)
	pipeline := notify.NewPipeline(api.notifyStore, router, nil, log)
	attachments := attachment.NewService(api.attachmentStore, nil, log)

	h := handler.NewHandler(api.auth, complaints, attachments, pipeline, nil, nil, nil, log)
	api.engine = gin.New()
	h.RegisterRoutes(api.engine)
	return api
}

func (a *testAPI) tokenFor(t *testing.T, userID string, role models.UserRole) string {
	t.Helper()
	token, err := a.auth.GenerateToken(&models.User{ID: userID, Role: role})
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func ownedComplaint() *models.Complaint {
	return &models.Complaint{
		ID:         "complaint-1",
		UserID:     "owner-1",
		Category:   models.CategoryCleanliness,
		Location:   "Coach B4",
		Status:     models.StatusPending,
		Department: "Housekeeping",
	}
}

func TestComplaintSubRoutesRejectForeignCustomer(t *testing.T) {
	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/complaints/complaint-1/messages", `{"content":"mine now"}`},
		{http.MethodGet, "/api/complaints/complaint-1/messages", ""},
		{http.MethodPost, "/api/complaints/complaint-1/attachments", `{"kind":"image","url":"https://example.com/x.jpg","name":"x.jpg"}`},
		{http.MethodGet, "/api/complaints/complaint-1/attachments", ""},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			api := newTestAPI(t)
			api.complaintStore.On("GetComplaintByID", mock.Anything, "complaint-1").
				Return(ownedComplaint(), nil)
			token := api.tokenFor(t, "stranger-9", models.RoleCustomer)

			rec := api.do(t, route.method, route.path, token, route.body)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			api.notifyStore.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
			api.attachmentStore.AssertNotCalled(t, "CreateAttachment", mock.Anything, mock.Anything)
		})
	}
}

func TestPostMessageAllowsOwner(t *testing.T) {
	api := newTestAPI(t)
	api.complaintStore.On("GetComplaintByID", mock.Anything, "complaint-1").
		Return(ownedComplaint(), nil)
	api.notifyStore.On("GetComplaintByID", mock.Anything, "complaint-1").
		Return(ownedComplaint(), nil)
	api.notifyStore.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.SenderID == "owner-1" && m.Content == "any progress?"
	})).Return(nil)
	token := api.tokenFor(t, "owner-1", models.RoleCustomer)

	rec := api.do(t, http.MethodPost, "/api/complaints/complaint-1/messages", token, `{"content":"any progress?"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	api.notifyStore.AssertExpectations(t)
}

func TestPostMessageAllowsAdminOnForeignComplaint(t *testing.T) {
	api := newTestAPI(t)
	api.complaintStore.On("GetComplaintByID", mock.Anything, "complaint-1").
		Return(ownedComplaint(), nil)
	api.notifyStore.On("GetComplaintByID", mock.Anything, "complaint-1").
		Return(ownedComplaint(), nil)
	api.notifyStore.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
	token := api.tokenFor(t, "staff-1", models.RoleAdmin)

	rec := api.do(t, http.MethodPost, "/api/complaints/complaint-1/messages", token, `{"content":"we are on it"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListAttachmentsAllowsOwner(t *testing.T) {
	api := newTestAPI(t)
	api.complaintStore.On("GetComplaintByID", mock.Anything, "complaint-1").
		Return(ownedComplaint(), nil)
	api.attachmentStore.On("GetAttachmentsByComplaint", mock.Anything, "complaint-1").
		Return([]models.Attachment{}, nil)
	token := api.tokenFor(t, "owner-1", models.RoleCustomer)

	rec := api.do(t, http.MethodGet, "/api/complaints/complaint-1/attachments", token, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestComplaintSubRoutesUnknownComplaint(t *testing.T) {
	api := newTestAPI(t)
	api.complaintStore.On("GetComplaintByID", mock.Anything, "missing").Return(nil, nil)
	token := api.tokenFor(t, "owner-1", models.RoleCustomer)

	rec := api.do(t, http.MethodGet, "/api/complaints/missing/messages", token, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComplaintSubRoutesRequireAuth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/complaints/complaint-1/messages", "not-a-token", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
