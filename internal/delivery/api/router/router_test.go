package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router/handler"
	"inventory/internal/delivery/api/validator"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/validation"
	mockUC "inventory/internal/mocks/usecase"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo         *echo.Echo
	authUC       *mockUC.MockAuthUsecase
	sessionUC    *mockUC.MockSessionUsecase
	productUC    *mockUC.MockProductUsecase
	dashboardUC  *mockUC.MockDashboardUsecase
	navigationUC *mockUC.MockNavigationUsecase
	alertUC      *mockUC.MockAlertUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID   string `json:"request_id"`
		Permissions *struct {
			Role      string `json:"role"`
			CanWrite  bool   `json:"canWrite"`
			CanDelete bool   `json:"canDelete"`
		} `json:"permissions"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		echo:         echo.New(),
		authUC:       mockUC.NewMockAuthUsecase(t),
		sessionUC:    mockUC.NewMockSessionUsecase(t),
		productUC:    mockUC.NewMockProductUsecase(t),
		dashboardUC:  mockUC.NewMockDashboardUsecase(t),
		navigationUC: mockUC.NewMockNavigationUsecase(t),
		alertUC:      mockUC.NewMockAlertUsecase(t),
	}
	ts.echo.Validator = validator.New()
	ts.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC:    ts.authUC,
			SessionUC: ts.sessionUC,
			Logger:    logger,
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: ts.productUC,
			Logger:    logger,
		}),
		DashboardHandler: handler.NewDashboardHandler(ts.dashboardUC, ts.navigationUC),
		AlertHandler:     handler.NewAlertHandler(ts.alertUC),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(ts.authUC),
	})
	r.RegisterRoutes(ts.echo)

	return ts
}

// signIn makes the bearer token "token-<role>" resolve to a session of that role.
func (ts *testServer) signIn(role entity.Role) *entity.Session {
	session := &entity.Session{
		ID:   uuid.New(),
		User: entity.User{ID: "u-" + string(role), Name: "Test User", Email: "test@example.com", Role: role},
	}
	ts.authUC.EXPECT().Authenticate(mock.Anything, "token-"+string(role)).Return(session, nil)

	return session
}

func (ts *testServer) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_Public(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
		assert.Nil(t, env.Meta.Permissions)
	})

	t.Run("login passes the form and client through", func(t *testing.T) {
		ts := newTestServer(t)
		user := &entity.User{ID: "u1", Name: "Ana", Role: entity.RoleAdmin}
		ts.authUC.EXPECT().
			Login(mock.Anything, mock.MatchedBy(func(in usecase.LoginInput) bool {
				return in.Draft.Email == "ana@example.com" && in.Draft.Password == "secret" && in.Client.IPAddress != ""
			})).
			Return(&usecase.AuthOutput{Token: "console-token", User: user}, nil)

		rec := ts.do(http.MethodPost, "/auth/login", "", `{"email":"ana@example.com","password":"secret"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var body handler.AuthResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &body))
		assert.Equal(t, "console-token", body.Token)
		assert.Equal(t, "Ana", body.User.Name)
	})

	t.Run("login field errors answer 400 with details", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().
			Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewFieldValidationError(map[string]string{"email": "Email is required"}))

		rec := ts.do(http.MethodPost, "/auth/login", "", `{"password":"secret"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "Email is required", env.Error.Details["email"])
	})

	t.Run("register defaults the role to staff", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().
			Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
				return in.Draft.Role == entity.RoleStaff && in.Draft.ConfirmPassword == "secret1"
			})).
			Return(&usecase.AuthOutput{Token: "t", User: &entity.User{Role: entity.RoleStaff}}, nil)

		rec := ts.do(http.MethodPost, "/auth/register", "",
			`{"name":"Budi","email":"budi@example.com","password":"secret1","confirmPassword":"secret1"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("register hands an unknown role to the form check", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().
			Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
				return in.Draft.Role == entity.Role("boss") && in.Draft.Name == "AB"
			})).
			Return(nil, domainerrors.NewFieldValidationError(map[string]string{
				"name": "Name must be at least 3 characters",
				"role": "Role must be one of staff, admin, viewer",
			}))

		rec := ts.do(http.MethodPost, "/auth/register", "",
			`{"name":"AB","email":"bad","password":"abc","confirmPassword":"x","role":"boss"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		details := decode(t, rec).Error.Details
		assert.Contains(t, details, "role")
		assert.Contains(t, details, "name")
	})
}

func TestRouter_Authentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/v1/dashboard", "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("non bearer header", func(t *testing.T) {
		ts := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrSessionExpired)

		rec := ts.do(http.MethodGet, "/navigation", "stale", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, domainerrors.ErrSessionExpired.ErrorCode(), decode(t, rec).Error.Code)
	})

	t.Run("navigation for the session", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleViewer)
		ts.navigationUC.EXPECT().
			Menu(session, "/products").
			Return(&usecase.Navigation{User: session.User, Items: entity.MenuFor(entity.RoleViewer, "/products")})

		rec := ts.do(http.MethodGet, "/navigation?path=/products", "token-viewer", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var nav usecase.Navigation
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &nav))
		assert.False(t, nav.CanWriteProducts)
		assert.NotEmpty(t, nav.Items)
	})

	t.Run("revoke session rejects a malformed id", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signIn(entity.RoleStaff)

		rec := ts.do(http.MethodDelete, "/auth/sessions/not-a-uuid", "token-staff", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).Error.Code)
	})

	t.Run("revoke session", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleStaff)
		target := uuid.New()
		ts.sessionUC.EXPECT().RevokeSession(mock.Anything, session, target).Return(nil)

		rec := ts.do(http.MethodDelete, "/auth/sessions/"+target.String(), "token-staff", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter_Products(t *testing.T) {
	t.Run("list caps the page size", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleViewer)
		want := entity.ProductQuery{Sort: entity.DefaultSort, Page: 1, Limit: entity.MaxLimit}
		ts.productUC.EXPECT().List(mock.Anything, session, want).Return(&entity.ProductPage{}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/products?limit=100000000", "token-viewer", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list normalizes the query", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleViewer)
		want := entity.ProductQuery{Search: "desk", Sort: entity.DefaultSort, Page: 2, Limit: entity.DefaultLimit}
		ts.productUC.EXPECT().
			List(mock.Anything, session, want).
			Return(&entity.ProductPage{Pagination: entity.Pagination{Total: 30, TotalPages: 3, CurrentPage: 2}}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/products?search=desk&sort=bogus&page=2", "token-viewer", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			HasPrevious bool `json:"hasPrevious"`
			HasNext     bool `json:"hasNext"`
		}
		env := decode(t, rec)
		require.NoError(t, json.Unmarshal(env.Data, &body))
		assert.True(t, body.HasPrevious)
		assert.True(t, body.HasNext)
		require.NotNil(t, env.Meta.Permissions)
		assert.Equal(t, "viewer", env.Meta.Permissions.Role)
		assert.False(t, env.Meta.Permissions.CanWrite)
		assert.False(t, env.Meta.Permissions.CanDelete)
		assert.NotEmpty(t, env.Meta.RequestID)
	})

	t.Run("viewer cannot create", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signIn(entity.RoleViewer)

		rec := ts.do(http.MethodPost, "/api/v1/products", "token-viewer", `{"name":"Desk"}`)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("create accepts numbers and strings for numeric fields", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleStaff)
		want := entity.ProductDraft{
			Name:     "Widget",
			SKU:      "W-1",
			Category: "Electronics",
			Price:    "10.5",
			Cost:     "7",
			Stock:    "3",
			MinStock: "10",
			Unit:     "pcs",
			Supplier: entity.Supplier{Name: "Acme"},
		}
		ts.productUC.EXPECT().Create(mock.Anything, session, want).Return(&entity.Product{ID: "p1", Name: "Widget"}, nil)

		rec := ts.do(http.MethodPost, "/api/v1/products", "token-staff",
			`{"name":"Widget","sku":"W-1","category":"Electronics","price":10.5,"cost":"7","stock":3,"minStock":"10","unit":"pcs","supplier":{"name":"Acme"}}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("create reports a bad category together with the form errors", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signIn(entity.RoleAdmin)

		rec := ts.do(http.MethodPost, "/api/v1/products", "token-admin",
			`{"name":"AB","sku":"S","category":"Bogus","price":"-1","cost":"1","stock":"1","minStock":"1","unit":"crate"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details["category"], "Category must be one of")
		assert.Contains(t, env.Error.Details["unit"], "Unit must be one of")
		assert.Equal(t, "Product name must be at least 3 characters", env.Error.Details["name"])
		assert.Equal(t, "SKU must be at least 3 characters", env.Error.Details["sku"])
		assert.Equal(t, "Price must be a positive number", env.Error.Details["price"])
		assert.Len(t, env.Error.Details, 5)
	})

	t.Run("update reports every failing field", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signIn(entity.RoleStaff)

		rec := ts.do(http.MethodPut, "/api/v1/products/p1", "token-staff", `{"name":"Widget","category":"Toys"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		details := decode(t, rec).Error.Details
		assert.Contains(t, details, "category")
		assert.Contains(t, details, "sku")
		assert.Contains(t, details, "unit")
		assert.NotContains(t, details, "name")
	})

	t.Run("update not found", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleStaff)
		ts.productUC.EXPECT().
			Update(mock.Anything, session, "missing", mock.Anything).
			Return(nil, domainerrors.ErrProductNotFound)

		rec := ts.do(http.MethodPut, "/api/v1/products/missing", "token-staff", `{"name":"Widget"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("staff cannot delete", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signIn(entity.RoleStaff)

		rec := ts.do(http.MethodDelete, "/api/v1/products/p1", "token-staff", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin deletes", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleAdmin)
		ts.productUC.EXPECT().Delete(mock.Anything, session, "p1").Return(nil)

		rec := ts.do(http.MethodDelete, "/api/v1/products/p1", "token-admin", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stock adjustment", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleStaff)
		ts.productUC.EXPECT().
			AdjustStock(mock.Anything, session, "p1", entity.StockAdjustment{Quantity: 5, Type: entity.StockSubtract, Reason: "sold"}).
			Return(&entity.Product{ID: "p1", Stock: 3}, nil)

		rec := ts.do(http.MethodPatch, "/api/v1/products/p1/stock", "token-staff", `{"quantity":5,"type":"subtract","reason":"sold"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stock adjustment rejects an unknown type", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signIn(entity.RoleStaff)

		rec := ts.do(http.MethodPatch, "/api/v1/products/p1/stock", "token-staff", `{"quantity":5,"type":"double"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "type")
	})

	t.Run("low stock is routed before the id", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleViewer)
		ts.productUC.EXPECT().
			LowStock(mock.Anything, session).
			Return(entity.NewLowStockReport([]*entity.Product{{ID: "p1"}, {ID: "p2"}}), nil)

		rec := ts.do(http.MethodGet, "/api/v1/products/low-stock", "token-viewer", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), "2 Products Need Restocking")
	})

	t.Run("by category", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleViewer)
		ts.productUC.EXPECT().
			ByCategory(mock.Anything, session, entity.CategoryFoodBeverage).
			Return([]*entity.Product{{ID: "p1"}}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/products/category/Food%20&%20Beverage", "token-viewer", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preview", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signIn(entity.RoleViewer)
		ts.productUC.EXPECT().
			Preview("150000", "100000").
			Return(validation.ProfitPreview{Computable: true, MarginDefined: true, ProfitMargin: "50.00"})

		rec := ts.do(http.MethodPost, "/api/v1/products/preview", "token-viewer", `{"price":150000,"cost":"100000"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"profitMargin":"50.00"`)
	})

	t.Run("label is served as png", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleViewer)
		png := []byte{0x89, 'P', 'N', 'G'}
		ts.productUC.EXPECT().Label(mock.Anything, session, "p1").Return(png, nil)

		rec := ts.do(http.MethodGet, "/api/v1/products/p1/label", "token-viewer", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("dashboard upstream failure", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleViewer)
		ts.dashboardUC.EXPECT().Overview(mock.Anything, session).Return(nil, domainerrors.ErrUpstreamUnavailable)

		rec := ts.do(http.MethodGet, "/api/v1/dashboard", "token-viewer", "")

		assert.Equal(t, domainerrors.ErrUpstreamUnavailable.HTTPCode(), rec.Code)
	})

	t.Run("recent alerts", func(t *testing.T) {
		ts := newTestServer(t)
		session := ts.signIn(entity.RoleViewer)
		ts.alertUC.EXPECT().
			Recent(mock.Anything, session, 5).
			Return([]*entity.LowStockAlert{{ProductID: "p1", Stock: 1, MinStock: 10}}, nil)

		rec := ts.do(http.MethodGet, "/api/v1/alerts?limit=5", "token-viewer", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"productId":"p1"`)
	})

	t.Run("recent alerts rejects a malformed limit", func(t *testing.T) {
		ts := newTestServer(t)
		ts.signIn(entity.RoleViewer)

		rec := ts.do(http.MethodGet, "/api/v1/alerts?limit=ten", "token-viewer", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
