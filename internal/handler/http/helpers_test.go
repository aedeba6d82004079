package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-job-keeper/internal/config"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/metrics"
	"github.com/MKhiriev/go-job-keeper/internal/service"
	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.AuthRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.AuthRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.AuthRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.AuthRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockApplicationService struct {
	createFn func(ctx context.Context, p models.Principal, in models.ApplicationInput) (models.Application, error)
	getFn    func(ctx context.Context, p models.Principal, id int64) (models.Application, error)
	updateFn func(ctx context.Context, p models.Principal, id int64, in models.ApplicationInput) (models.Application, error)
	deleteFn func(ctx context.Context, p models.Principal, id int64) error
	searchFn func(ctx context.Context, p models.Principal, params models.SearchParams) (models.Page[models.Application], error)
}

func (m *mockApplicationService) Create(ctx context.Context, p models.Principal, in models.ApplicationInput) (models.Application, error) {
	return m.createFn(ctx, p, in)
}

func (m *mockApplicationService) Get(ctx context.Context, p models.Principal, id int64) (models.Application, error) {
	return m.getFn(ctx, p, id)
}

func (m *mockApplicationService) Update(ctx context.Context, p models.Principal, id int64, in models.ApplicationInput) (models.Application, error) {
	return m.updateFn(ctx, p, id, in)
}

func (m *mockApplicationService) Delete(ctx context.Context, p models.Principal, id int64) error {
	return m.deleteFn(ctx, p, id)
}

func (m *mockApplicationService) Search(ctx context.Context, p models.Principal, params models.SearchParams) (models.Page[models.Application], error) {
	return m.searchFn(ctx, p, params)
}

type mockFolderService struct {
	createFn       func(ctx context.Context, p models.Principal, in models.FolderInput) (models.Folder, error)
	getFn          func(ctx context.Context, p models.Principal, id int64) (models.Folder, error)
	updateFn       func(ctx context.Context, p models.Principal, id int64, in models.FolderInput) (models.Folder, error)
	deleteFn       func(ctx context.Context, p models.Principal, id int64) error
	searchFn       func(ctx context.Context, p models.Principal, params models.SearchParams) (models.Page[models.Folder], error)
	dashboardFn    func(ctx context.Context, p models.Principal, page, perPage int) (models.Page[models.FolderSummary], error)
	applicationsFn func(ctx context.Context, p models.Principal, id int64, params models.SearchParams) (models.Page[models.Application], error)
}

func (m *mockFolderService) Create(ctx context.Context, p models.Principal, in models.FolderInput) (models.Folder, error) {
	return m.createFn(ctx, p, in)
}

func (m *mockFolderService) Get(ctx context.Context, p models.Principal, id int64) (models.Folder, error) {
	return m.getFn(ctx, p, id)
}

func (m *mockFolderService) Update(ctx context.Context, p models.Principal, id int64, in models.FolderInput) (models.Folder, error) {
	return m.updateFn(ctx, p, id, in)
}

func (m *mockFolderService) Delete(ctx context.Context, p models.Principal, id int64) error {
	return m.deleteFn(ctx, p, id)
}

func (m *mockFolderService) Search(ctx context.Context, p models.Principal, params models.SearchParams) (models.Page[models.Folder], error) {
	return m.searchFn(ctx, p, params)
}

func (m *mockFolderService) Dashboard(ctx context.Context, p models.Principal, page, perPage int) (models.Page[models.FolderSummary], error) {
	return m.dashboardFn(ctx, p, page, perPage)
}

func (m *mockFolderService) Applications(ctx context.Context, p models.Principal, id int64, params models.SearchParams) (models.Page[models.Application], error) {
	return m.applicationsFn(ctx, p, id, params)
}

type mockSelectService struct {
	createFn  func(ctx context.Context, p models.Principal, kind models.SelectKind, in models.SelectInput) (models.Select, error)
	getFn     func(ctx context.Context, p models.Principal, kind models.SelectKind, id int64) (models.Select, error)
	updateFn  func(ctx context.Context, p models.Principal, kind models.SelectKind, id int64, in models.SelectInput) (models.Select, error)
	deleteFn  func(ctx context.Context, p models.Principal, kind models.SelectKind, id int64) error
	searchFn  func(ctx context.Context, p models.Principal, kind models.SelectKind, params models.SearchParams) (models.Page[models.Select], error)
	catalogFn func(ctx context.Context, p models.Principal) (models.Catalog, error)
}

func (m *mockSelectService) Create(ctx context.Context, p models.Principal, kind models.SelectKind, in models.SelectInput) (models.Select, error) {
	return m.createFn(ctx, p, kind, in)
}

func (m *mockSelectService) Get(ctx context.Context, p models.Principal, kind models.SelectKind, id int64) (models.Select, error) {
	return m.getFn(ctx, p, kind, id)
}

func (m *mockSelectService) Update(ctx context.Context, p models.Principal, kind models.SelectKind, id int64, in models.SelectInput) (models.Select, error) {
	return m.updateFn(ctx, p, kind, id, in)
}

func (m *mockSelectService) Delete(ctx context.Context, p models.Principal, kind models.SelectKind, id int64) error {
	return m.deleteFn(ctx, p, kind, id)
}

func (m *mockSelectService) Search(ctx context.Context, p models.Principal, kind models.SelectKind, params models.SearchParams) (models.Page[models.Select], error) {
	return m.searchFn(ctx, p, kind, params)
}

func (m *mockSelectService) Catalog(ctx context.Context, p models.Principal) (models.Catalog, error) {
	return m.catalogFn(ctx, p)
}

type mockSearchService struct {
	searchFn func(ctx context.Context, p models.Principal, params models.SearchParams) (models.GlobalSearchResult, error)
}

func (m *mockSearchService) Search(ctx context.Context, p models.Principal, params models.SearchParams) (models.GlobalSearchResult, error) {
	return m.searchFn(ctx, p, params)
}

type mockAppInfoService struct {
	info models.AppInfo
}

func (m *mockAppInfoService) GetAppInfo(context.Context) models.AppInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

const validToken = "valid.jwt.token"

var (
	ownerID = uuid.MustParse("8b4f1f0e-3c55-4a4a-9b3e-1d2c3b4a5f60")
	owner   = models.Principal{ID: ownerID}
	testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func ptr[T any](v T) *T { return &v }

// tokenAuth accepts validToken for owner and rejects everything else.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			if s != validToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{SignedString: s, UserID: ownerID}, nil
		},
	}
}

// newTestHandler builds a Handler over svcs without rate limits. A nil
// AuthService is replaced with tokenAuth.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = tokenAuth()
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{info: models.AppInfo{Version: "test"}}
	}
	return NewHandler(svcs, config.Server{}, metrics.New(), logger.Nop())
}

// serve runs req through the full router as the owner.
func serve(t *testing.T, h *Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// withPrincipal returns req carrying p, the way the auth middleware leaves it.
func withPrincipal(req *http.Request, p models.Principal) *http.Request {
	return req.WithContext(utils.WithPrincipal(req.Context(), p))
}

// withURLParams attaches chi route parameters to req for direct handler calls.
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rec)
}

// serveAnonymous runs a request without credentials through the full router.
func serveAnonymous(t *testing.T, h *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}
