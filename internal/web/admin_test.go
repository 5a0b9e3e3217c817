package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/altindan/internal/catalog"
	"github.com/shashiranjanraj/altindan/internal/order"
	"github.com/shashiranjanraj/altindan/internal/settings"
)

func newAdminServer(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()

	cat := catalog.NewProvider(dir)
	store := order.NewStore(dir)
	st := settings.NewStore(dir)
	require.NoError(t, st.SeedAdmins([]settings.Admin{{Username: "admin", Password: "12345"}}))

	return NewServer(cat, store, order.NewIntake(cat, store, nil), st).Routes().Handler()
}

func apiLogin(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAPILoginIssuesToken(t *testing.T) {
	h := newAdminServer(t)

	rec := apiLogin(t, h, `{"username":"admin","password":"12345"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	// The token opens the guarded API.
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	guarded := httptest.NewRecorder()
	h.ServeHTTP(guarded, req)
	require.Equal(t, http.StatusOK, guarded.Code)
}

func TestAPILoginRejectsBadPassword(t *testing.T) {
	h := newAdminServer(t)

	rec := apiLogin(t, h, `{"username":"admin","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPILoginValidation(t *testing.T) {
	h := newAdminServer(t)

	rec := apiLogin(t, h, `{"username":"admin"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAPIOrdersRequiresAuth(t *testing.T) {
	h := newAdminServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIProductsIsPublic(t *testing.T) {
	h := newAdminServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIProductCreate(t *testing.T) {
	h := newAdminServer(t)

	login := apiLogin(t, h, `{"username":"admin","password":"12345"}`)
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	body := `{"name":{"ru":"Самса"},"price":25000}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	list := httptest.NewRecorder()
	h.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Contains(t, list.Body.String(), "Самса")
}

func TestAdminPanelSessionFlow(t *testing.T) {
	h := newAdminServer(t)

	form := url.Values{"username": {"admin"}, "password": {"12345"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	login := httptest.NewRecorder()
	h.ServeHTTP(login, req)

	require.Equal(t, http.StatusFound, login.Code)
	require.Equal(t, "/admin", login.Header().Get("Location"))
	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	panel := httptest.NewRecorder()
	panelReq := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		panelReq.AddCookie(c)
	}
	h.ServeHTTP(panel, panelReq)

	require.Equal(t, http.StatusOK, panel.Code)
	require.Contains(t, panel.Body.String(), "Сводка")
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	h := newAdminServer(t)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Неверный логин или пароль")
}

func TestAdminLoginPage(t *testing.T) {
	h := newAdminServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Панель управления")
}
