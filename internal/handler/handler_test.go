package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"strata-be-svc/internal/auth"
	"strata-be-svc/internal/errcode"
	"strata-be-svc/internal/middleware"
	"strata-be-svc/internal/models"
	"strata-be-svc/internal/models/response"
	"strata-be-svc/internal/repository"
	"strata-be-svc/internal/service"
	"strata-be-svc/pkg/logger"
	"strata-be-svc/pkg/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	memberToken = "member-token"
	adminToken  = "admin-token"
)

// Stubs embed the service interface so only the methods a test touches need a body.

type stubAuthService struct {
	service.AuthService
	notifier *auth.Notifier
	signIn   func(email, password string) (*service.Session, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*service.Identity, error) {
	switch token {
	case memberToken:
		return &service.Identity{ID: "m1", Email: "ahmad@example.com", Role: models.RoleMember}, nil
	case adminToken:
		return &service.Identity{ID: "a1", Email: "admin@example.com", Role: models.RoleAdmin}, nil
	}
	return nil, errcode.New(errcode.AuthInvalidToken)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	return s.signIn(email, password)
}

func (s *stubAuthService) Subscribe(identityID string) (<-chan auth.Event, func()) {
	return s.notifier.Subscribe(identityID)
}

type stubRegistrationService struct {
	service.RegistrationService
	registered *service.RegistrationInput
	removal    *response.RowRemovalResponse
}

func (s *stubRegistrationService) Register(ctx context.Context, input *service.RegistrationInput) (*models.Profile, error) {
	s.registered = input
	return &models.Profile{ID: "p1", Email: input.Email, Status: models.StatusPending}, nil
}

func (s *stubRegistrationService) RemoveDraftRow(ctx context.Context, id string, kind service.RowKind, no int) (*response.RowRemovalResponse, error) {
	return s.removal, nil
}

type stubProfileService struct {
	service.ProfileService
}

func (s *stubProfileService) GetOwn(ctx context.Context, profileID string) (*response.ProfileDetailResponse, error) {
	return nil, repository.ErrNotFound
}

type stubModerationService struct {
	service.ModerationService
	approvedBy string
}

func (s *stubModerationService) Approve(ctx context.Context, id, adminID string) (*response.ModerationSnapshotResponse, error) {
	s.approvedBy = adminID
	return &response.ModerationSnapshotResponse{}, nil
}

type stubAnnouncementService struct {
	service.AnnouncementService
	deleted bool
}

func (s *stubAnnouncementService) Delete(ctx context.Context, id string) ([]models.Announcement, error) {
	s.deleted = true
	return []models.Announcement{}, nil
}

type stubLedgerService struct {
	service.LedgerService
}

func (s *stubLedgerService) ExportYear(ctx context.Context, year int, filter string) ([]byte, string, error) {
	return []byte("xlsx"), "kutipan_sekuriti_20240101_000000.xlsx", nil
}

type stubContactService struct {
	service.ContactService
}

func (s *stubContactService) List(ctx context.Context, page, limit int) ([]models.ContactMessage, int64, error) {
	return []models.ContactMessage{{Name: "Ahmad"}}, 21, nil
}

type testServer struct {
	router       *gin.Engine
	auth         *stubAuthService
	registration *stubRegistrationService
	moderation   *stubModerationService
	announcement *stubAnnouncementService
}

func newTestServer(allowedOrigins ...string) *testServer {
	ts := &testServer{
		auth:         &stubAuthService{notifier: auth.NewNotifier(4)},
		registration: &stubRegistrationService{},
		moderation:   &stubModerationService{},
		announcement: &stubAnnouncementService{},
	}

	ts.router = gin.New()
	SetupRoutes(
		ts.router,
		ts.auth,
		ts.registration,
		&stubProfileService{},
		ts.moderation,
		ts.announcement,
		&stubLedgerService{},
		&stubContactService{},
		middleware.NewRateLimiter(1000, 1000),
		allowedOrigins,
		logger.NewNopLogger(),
	)
	return ts
}

func (ts *testServer) do(method, path, token string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/v1/health", "", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminRoutesRequireAdminIdentity(t *testing.T) {
	ts := newTestServer()

	cases := []struct {
		token string
		want  int
	}{
		{"", http.StatusUnauthorized},
		{"bogus", http.StatusUnauthorized},
		{memberToken, http.StatusForbidden},
	}
	for _, tc := range cases {
		w := ts.do(http.MethodGet, "/api/v1/admin/dashboard", tc.token, nil, "")
		if w.Code != tc.want {
			t.Errorf("token %q: expected %d, got %d", tc.token, tc.want, w.Code)
		}
	}
}

func TestSignInMapsProviderErrors(t *testing.T) {
	ts := newTestServer()
	ts.auth.signIn = func(email, password string) (*service.Session, error) {
		return nil, errcode.New(errcode.AuthWrongPassword)
	}

	body := []byte(`{"email":"ahmad@example.com","password":"salah"}`)
	w := ts.do(http.MethodPost, "/api/v1/auth/sign-in", "", body, "application/json")

	resp := decode(t, w)
	if w.Code != errcode.Status(errcode.AuthWrongPassword) || resp.Code != errcode.AuthWrongPassword {
		t.Fatalf("unexpected response %d %+v", w.Code, resp)
	}
	if resp.Message != errcode.Message(errcode.AuthWrongPassword) {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestApproveRequiresConfirmation(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPost, "/api/v1/admin/members/p1/approve", adminToken, nil, "")
	if w.Code != http.StatusPreconditionRequired {
		t.Fatalf("expected 428, got %d", w.Code)
	}
	if ts.moderation.approvedBy != "" {
		t.Fatal("service must not be called without confirmation")
	}

	w = ts.do(http.MethodPost, "/api/v1/admin/members/p1/approve?confirm=true", adminToken, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ts.moderation.approvedBy != "a1" {
		t.Fatalf("expected decision by a1, got %q", ts.moderation.approvedBy)
	}
}

func TestDeleteAnnouncementRequiresConfirmation(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodDelete, "/api/v1/admin/announcements/post-1", adminToken, nil, "")
	if w.Code != http.StatusPreconditionRequired || ts.announcement.deleted {
		t.Fatalf("expected 428 without delete, got %d deleted=%v", w.Code, ts.announcement.deleted)
	}

	w = ts.do(http.MethodDelete, "/api/v1/admin/announcements/post-1?confirm=true", adminToken, nil, "")
	if w.Code != http.StatusOK || !ts.announcement.deleted {
		t.Fatalf("expected delete, got %d deleted=%v", w.Code, ts.announcement.deleted)
	}
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, file []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		if _, err := fw.Write(file); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf.Bytes(), mw.FormDataContentType()
}

func TestRegisterParsesMultipartForm(t *testing.T) {
	ts := newTestServer()

	body, contentType := multipartBody(t, map[string]string{
		"email":       "ahmad@example.com",
		"password":    "rahsia123",
		"full_name":   " Ahmad Bin Ali ",
		"national_id": "900101-01-1234",
		"phone":       "0123456789",
		"house_no":    "12",
		"street":      "Jalan Mawar",
		"household":   `[{"name":"Siti","relationship":"Isteri","phone":""}]`,
		"vehicles":    `[{"model":"Myvi","plate_number":"ABC1234","sticker_number":"S-01"}]`,
	}, "document", "ic.pdf", []byte("%PDF-1.4\n%%EOF"))

	w := ts.do(http.MethodPost, "/api/v1/registrations", "", body, contentType)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		Data response.ProfileDetailResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if created.Data.ID != "p1" || !created.Data.Household.Empty || !created.Data.Vehicles.Empty {
		t.Fatalf("expected the profile detail view with empty row markers, got %s", w.Body.String())
	}

	in := ts.registration.registered
	if in.FullName != "Ahmad Bin Ali" || in.Address.Street != "Jalan Mawar" {
		t.Fatalf("unexpected input %+v", in)
	}
	if len(in.Household) != 1 || in.Household[0].Relationship != "Isteri" {
		t.Fatalf("unexpected household %+v", in.Household)
	}
	if len(in.Vehicles) != 1 || in.Vehicles[0].PlateNumber != "ABC1234" {
		t.Fatalf("unexpected vehicles %+v", in.Vehicles)
	}
	if in.Document == nil || in.Document.FileName != "ic.pdf" {
		t.Fatalf("expected document to be passed through, got %+v", in.Document)
	}
}

func TestBlankPathIDIsRejected(t *testing.T) {
	ts := newTestServer()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{"draft", http.MethodGet, "/api/v1/registrations/drafts/%20", ""},
		{"announcement", http.MethodGet, "/api/v1/announcements/%20", ""},
		{"member", http.MethodGet, "/api/v1/admin/members/%20", adminToken},
		{"approve", http.MethodPost, "/api/v1/admin/members/%20/approve?confirm=true", adminToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(tt.method, tt.path, tt.token, nil, "")
			if resp := decode(t, w); w.Code != http.StatusBadRequest || resp.Code != errcode.ValidationFailed {
				t.Fatalf("expected validation failure, got %d %+v", w.Code, resp)
			}
		})
	}
	if ts.moderation.approvedBy != "" {
		t.Fatal("approve must not reach the service with a blank id")
	}
}

func TestRegisterRejectsMalformedRows(t *testing.T) {
	ts := newTestServer()

	body, contentType := multipartBody(t, map[string]string{
		"email":     "ahmad@example.com",
		"household": `{not json`,
	}, "", "", nil)

	w := ts.do(http.MethodPost, "/api/v1/registrations", "", body, contentType)
	if resp := decode(t, w); w.Code != http.StatusBadRequest || resp.Code != errcode.ValidationFailed {
		t.Fatalf("expected validation failure, got %d %+v", w.Code, resp)
	}
	if ts.registration.registered != nil {
		t.Fatal("service must not be called")
	}
}

func TestRemoveLastDraftRowReportsNotRemoved(t *testing.T) {
	ts := newTestServer()
	ts.registration.removal = &response.RowRemovalResponse{Removed: false}

	w := ts.do(http.MethodDelete, "/api/v1/registrations/drafts/d1/rows/household/1", "", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp := decode(t, w); resp.Message != "Sekurang-kurangnya satu baris diperlukan" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestUpdateDraftRowRejectsUnknownKind(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodPut, "/api/v1/registrations/drafts/d1/rows/pets/1", "", []byte(`{}`), "application/json")
	if resp := decode(t, w); w.Code != http.StatusBadRequest || resp.Code != errcode.DraftInvalidRowKind {
		t.Fatalf("expected invalid row kind, got %d %+v", w.Code, resp)
	}
}

func TestGetMyProfileNotFound(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/v1/me/profile", memberToken, nil, "")
	resp := decode(t, w)
	if w.Code != http.StatusNotFound || resp.Message != errcode.Message(errcode.DataNotFound) {
		t.Fatalf("expected 404 data not found, got %d %+v", w.Code, resp)
	}
}

func TestExportSecurityFeesSendsWorkbook(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/v1/admin/security-fees/export?year=2024", adminToken, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != xlsxContentType {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=kutipan_sekuriti_20240101_000000.xlsx" {
		t.Fatalf("unexpected disposition %q", got)
	}
}

func TestExportSecurityFeesRejectsBadYear(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/v1/admin/security-fees/export?year=abc", adminToken, nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListContactMessagesIsPaginated(t *testing.T) {
	ts := newTestServer()

	w := ts.do(http.MethodGet, "/api/v1/admin/contact-messages?page=2&limit=10", adminToken, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp utils.PaginatedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Pagination.Page != 2 || resp.Pagination.Total != 21 || resp.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination %+v", resp.Pagination)
	}
}
