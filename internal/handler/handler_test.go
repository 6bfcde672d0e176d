package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ibrahima697/BayySaWaarBack/internal/domain"
	"github.com/ibrahima697/BayySaWaarBack/internal/handler/dto"
	hmocks "github.com/ibrahima697/BayySaWaarBack/internal/handler/mocks"
	"github.com/ibrahima697/BayySaWaarBack/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

// stubParser resolves fixed tokens to viewers, standing in for the JWT
// service in route-level tests.
type stubParser struct {
	viewers map[string]*domain.Viewer
}

func (p *stubParser) ParseToken(token string) (*domain.Viewer, error) {
	if v, ok := p.viewers[token]; ok {
		return v, nil
	}
	return nil, domain.ErrUnauthenticated
}

type testMocks struct {
	formationSvc *hmocks.MockFormationSvc
	eventSvc     *hmocks.MockEventSvc
	authSvc      *hmocks.MockAuthSvc
	contactSvc   *hmocks.MockContactSvc
	adminSvc     *hmocks.MockAdminSvc
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()

	m := &testMocks{
		formationSvc: hmocks.NewMockFormationSvc(t),
		eventSvc:     hmocks.NewMockEventSvc(t),
		authSvc:      hmocks.NewMockAuthSvc(t),
		contactSvc:   hmocks.NewMockContactSvc(t),
		adminSvc:     hmocks.NewMockAdminSvc(t),
	}

	h := NewHandler(
		m.formationSvc,
		m.eventSvc,
		m.authSvc,
		hmocks.NewMockEnrollmentSvc(t),
		hmocks.NewMockProductSvc(t),
		hmocks.NewMockBlogSvc(t),
		m.contactSvc,
		m.adminSvc,
		hmocks.NewMockDashboardSvc(t),
	)

	parser := &stubParser{viewers: map[string]*domain.Viewer{
		"member-token": {UserID: "u1", Role: domain.RoleMember},
		"admin-token":  {UserID: "a1", Role: domain.RoleAdmin},
	}}

	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(middleware.Authenticate(parser))
	{
		api.POST("/auth/register", h.RegisterUser)
		api.POST("/auth/login", h.Login)
		api.GET("/formations", h.ListFormations)
		api.GET("/formations/:id", h.GetFormation)
		api.POST("/formations", middleware.RequireAdmin(), h.CreateFormation)
		api.POST("/formations/:id/register", middleware.RequireAuth(parser), h.RegisterToFormation)
		api.PUT("/formations/:id/registrations/:regId", middleware.RequireAdmin(), h.UpdateFormationRegistrationStatus)
		api.GET("/events/:slug", h.GetEvent)
		api.POST("/events/:slug/register", middleware.RequireAuth(parser), h.RegisterToEvent)
		api.PUT("/events/:slug/registrations/:regId/paid", middleware.RequireAdmin(), h.MarkEventRegistrationPaid)
		api.POST("/contacts", h.SubmitContact)
		api.PATCH("/contacts/:id", middleware.RequireAdmin(), h.UpdateContactStatus)
		api.GET("/admin/user-stats", middleware.RequireAdmin(), h.UserStats)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_RegisterUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), FirstName: "Awa", LastName: "Diop", Email: "awa@example.sn", Role: domain.RoleMember, CreatedAt: time.Now()}
	m.authSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", dto.RegisterUserRequest{
		FirstName: "Awa", LastName: "Diop", Email: "awa@example.sn", Password: "motdepasse",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_RegisterUser_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", ginext.H{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.authSvc.EXPECT().Login(mock.Anything, "awa@example.sn", "mauvais").
		Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{
		Email: "awa@example.sn", Password: "mauvais",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Formations ---

func TestHandler_CreateFormation_RequiresAdmin(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/formations", "member-token", dto.CreateFormationRequest{
		Title: "X", Description: "Y", Date: time.Now().Format(time.RFC3339),
		Location: "Dakar", Duration: "2 jours", Category: "formalisation", MaxSeats: 10,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateFormation_Success(t *testing.T) {
	m, r := setupRouter(t)

	formation := &domain.Formation{
		ID: uuid.New().String(), Title: "Formalisation", Date: time.Now(),
		Category: domain.CategoryFormalization, Status: domain.FormationStatusUpcoming,
		MaxSeats: 10, CreatedAt: time.Now(),
	}
	m.formationSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(formation, nil)

	w := doJSON(t, r, http.MethodPost, "/api/formations", "admin-token", dto.CreateFormationRequest{
		Title: "Formalisation", Description: "Atelier", Date: time.Now().Format(time.RFC3339),
		Location: "Dakar", Duration: "2 jours", Category: "formalisation", MaxSeats: 10,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.FormationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Formalisation", resp.Title)
}

func TestHandler_GetFormation_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/formations/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListFormations_PassesViewer(t *testing.T) {
	m, r := setupRouter(t)

	m.formationSvc.EXPECT().
		List(mock.Anything, &domain.Viewer{UserID: "u1", Role: domain.RoleMember}).
		Return([]*domain.Formation{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/formations", "member-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RegisterToFormation_Success(t *testing.T) {
	m, r := setupRouter(t)

	formationID := uuid.New().String()
	reg := &domain.Registration{
		ID: uuid.New().String(), UserID: "u1",
		Status: domain.RegistrationStatusPending, RegisteredAt: time.Now(),
	}
	m.formationSvc.EXPECT().Register(mock.Anything, formationID, "u1").Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/formations/"+formationID+"/register", "member-token", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_RegisterToFormation_Unauthenticated(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/formations/"+uuid.New().String()+"/register", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_RegisterToFormation_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	formationID := uuid.New().String()
	m.formationSvc.EXPECT().Register(mock.Anything, formationID, "u1").Return(nil, domain.ErrAlreadyRegistered)

	w := doJSON(t, r, http.MethodPost, "/api/formations/"+formationID+"/register", "member-token", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateRegistrationStatus_Approve(t *testing.T) {
	m, r := setupRouter(t)

	formationID := uuid.New().String()
	regID := uuid.New().String()
	m.formationSvc.EXPECT().
		UpdateRegistrationStatus(mock.Anything, formationID, regID, domain.RegistrationStatusApproved).
		Return(nil)

	w := doJSON(t, r, http.MethodPut, "/api/formations/"+formationID+"/registrations/"+regID,
		"admin-token", dto.UpdateRegistrationStatusRequest{Status: "approved"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateRegistrationStatus_NoSeats(t *testing.T) {
	m, r := setupRouter(t)

	formationID := uuid.New().String()
	regID := uuid.New().String()
	m.formationSvc.EXPECT().
		UpdateRegistrationStatus(mock.Anything, formationID, regID, domain.RegistrationStatusApproved).
		Return(domain.ErrNoSeatsAvailable)

	w := doJSON(t, r, http.MethodPut, "/api/formations/"+formationID+"/registrations/"+regID,
		"admin-token", dto.UpdateRegistrationStatusRequest{Status: "approved"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateRegistrationStatus_RejectsPaid(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut,
		"/api/formations/"+uuid.New().String()+"/registrations/"+uuid.New().String(),
		"admin-token", ginext.H{"status": "paid"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID: "e1", Title: "Forum PME", Slug: "forum-pme",
		Type: domain.EventTypeFair, DateStart: time.Now(), DateEnd: time.Now(),
		CreatedAt: time.Now(),
	}
	m.eventSvc.EXPECT().GetBySlug(mock.Anything, "forum-pme").Return(event, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/forum-pme", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.eventSvc.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/missing", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RegisterToEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	reg := &domain.EventRegistration{Registration: domain.Registration{
		ID: uuid.New().String(), UserID: "u1", Status: domain.RegistrationStatusPending,
	}}
	m.eventSvc.EXPECT().Register(mock.Anything, "forum-pme", "u1").Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/forum-pme/register", "member-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RegisterToEvent_Unauthenticated(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/forum-pme/register", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_MarkEventRegistrationPaid_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	m.eventSvc.EXPECT().MarkPaid(mock.Anything, "forum-pme", regID, "wave").Return(nil)

	w := doJSON(t, r, http.MethodPut, "/api/events/forum-pme/registrations/"+regID+"/paid",
		"admin-token", dto.MarkRegistrationPaidRequest{PaymentMethod: "wave"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MarkEventRegistrationPaid_NotPayable(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	m.eventSvc.EXPECT().MarkPaid(mock.Anything, "forum-pme", regID, "wave").
		Return(domain.ErrRegistrationNotPayable)

	w := doJSON(t, r, http.MethodPut, "/api/events/forum-pme/registrations/"+regID+"/paid",
		"admin-token", dto.MarkRegistrationPaidRequest{PaymentMethod: "wave"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Contacts ---

func TestHandler_SubmitContact_ReturnsTicket(t *testing.T) {
	m, r := setupRouter(t)

	contact := &domain.Contact{ID: "c1", TicketID: "ticket-42"}
	m.contactSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(contact, nil)

	w := doJSON(t, r, http.MethodPost, "/api/contacts", "", dto.SubmitContactRequest{
		Name: "Moussa", Email: "moussa@example.sn", Message: "Bonjour",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ContactTicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ticket-42", resp.TicketID)
}

func TestHandler_UpdateContactStatus_Success(t *testing.T) {
	m, r := setupRouter(t)

	contact := &domain.Contact{ID: "c1", Status: domain.ContactStatusResolved}
	m.contactSvc.EXPECT().
		UpdateStatus(mock.Anything, "c1", domain.ContactStatusResolved).
		Return(contact, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/contacts/c1", "admin-token",
		dto.UpdateContactStatusRequest{Status: "resolved"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateContactStatus_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.contactSvc.EXPECT().
		UpdateStatus(mock.Anything, "ghost", domain.ContactStatusInProgress).
		Return(nil, domain.ErrContactNotFound)

	w := doJSON(t, r, http.MethodPatch, "/api/contacts/ghost", "admin-token",
		dto.UpdateContactStatusRequest{Status: "in_progress"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateContactStatus_MemberForbidden(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/contacts/c1", "member-token",
		dto.UpdateContactStatusRequest{Status: "resolved"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Admin ---

func TestHandler_UserStats(t *testing.T) {
	m, r := setupRouter(t)

	m.adminSvc.EXPECT().UserStats(mock.Anything).Return(&domain.UserStats{
		TotalUsers: 4, Members: 3, Admins: 1,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/user-stats", "admin-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_users":4`)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	m, r := setupRouter(t)

	m.eventSvc.EXPECT().GetBySlug(mock.Anything, "forum-pme").Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/events/forum-pme", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
