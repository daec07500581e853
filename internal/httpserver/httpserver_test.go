package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jcancelado/fiapp/internal/models"
	"github.com/jcancelado/fiapp/internal/repo"
	"github.com/jcancelado/fiapp/internal/service"
	"github.com/jcancelado/fiapp/internal/session"
	"github.com/jcancelado/fiapp/internal/viewmodel"
)

var testSecret = []byte("test-session-secret")

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Store{},
		&models.Product{},
		&models.Customer{},
		&models.Debt{},
	))

	gormRepo := &repo.GormRepo{DB: db}
	vm := viewmodel.New(
		&service.AuthService{Repo: gormRepo},
		&service.StoreService{Repo: gormRepo},
	)

	e := echo.New()
	Register(e, &Deps{
		Auth:    &AuthHTTP{VM: vm, Secret: testSecret},
		Tendero: &TenderoHTTP{VM: vm},
		Cliente: &ClienteHTTP{VM: vm},
		Secret:  testSecret,
	})
	return e
}

func doForm(e *echo.Echo, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doJSON(e *echo.Echo, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func registerForm(email, password, userID string) url.Values {
	return url.Values{
		"email":            {email},
		"password":         {password},
		"password_confirm": {password},
		"user_id":          {userID},
	}
}

// registerWithRole walks a browser through register and select-type and
// returns the final session cookie.
func registerWithRole(t *testing.T, e *echo.Echo, email, userID, role string) *http.Cookie {
	t.Helper()

	rec := doForm(e, http.MethodPost, "/register", registerForm(email, "secret1", userID))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = doForm(e, http.MethodPost, "/select-type", url.Values{"tipo_usuario": {role}}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))
	return sessionCookie(t, rec)
}
