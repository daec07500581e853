package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jcancelado/fiapp/internal/logging"
	"github.com/jcancelado/fiapp/internal/middleware"
	"github.com/jcancelado/fiapp/internal/models"
	"github.com/jcancelado/fiapp/internal/session"
	"github.com/jcancelado/fiapp/internal/transport"
	"github.com/jcancelado/fiapp/internal/viewmodel"
)

type AuthHTTP struct {
	VM     *viewmodel.ViewModel
	Secret []byte
}

const minPasswordLen = 6

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	switch {
	case req.Email == "":
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	case req.Password == "":
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	case req.PasswordConfirm == "":
		return echo.NewHTTPError(http.StatusBadRequest, "password confirmation is required")
	case req.UserID == "":
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	case req.Password != req.PasswordConfirm:
		return echo.NewHTTPError(http.StatusBadRequest, "passwords do not match")
	case len(req.Password) < minPasswordLen:
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}

	userID, err := h.VM.CrearUsuario(ctx, req.Email, req.Password, req.UserID)
	if err != nil {
		l.Warn("register_failed", "error", err)
		return mapError(err)
	}

	token, exp, err := session.Sign(h.Secret, userID, req.Email, models.RoleUnset)
	if err != nil {
		l.Error("register_session_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	c.SetCookie(session.NewCookie(token, exp))

	l.Info("register_ok", "user_id", userID)
	return c.Redirect(http.StatusSeeOther, "/select-type")
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}

	identity, err := h.VM.Autenticar(ctx, req.Email, req.Password)
	if err != nil {
		l.Warn("login_failed", "error", err)
		return mapError(err)
	}

	token, exp, err := session.Sign(h.Secret, identity.UserID, req.Email, identity.Role)
	if err != nil {
		l.Error("login_session_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	c.SetCookie(session.NewCookie(token, exp))

	l.Info("login_ok", "user_id", identity.UserID, "role", identity.Role)
	if identity.Role == models.RoleUnset {
		return c.Redirect(http.StatusSeeOther, "/select-type")
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(session.DeleteCookie())
	return c.Redirect(http.StatusSeeOther, "/")
}

// SelectType records the role chosen after registration and refreshes the
// session cookie so the new role is visible immediately.
func (h *AuthHTTP) SelectType(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_select_type")

	var req transport.SelectTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.TipoUsuario != models.RoleTendero && req.TipoUsuario != models.RoleCliente {
		return echo.NewHTTPError(http.StatusBadRequest, "select a valid user type")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	user, err := h.VM.AsignarTipoUsuario(ctx, email, req.TipoUsuario)
	if err != nil {
		l.Warn("select_type_failed", "error", err)
		return mapError(err)
	}

	token, exp, err := session.Sign(h.Secret, user.UserID, user.Email, user.Role)
	if err != nil {
		l.Error("select_type_session_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	c.SetCookie(session.NewCookie(token, exp))

	l.Info("select_type_ok", "user_id", user.UserID, "role", user.Role)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHTTP) Dashboard(c echo.Context) error {
	role, _ := c.Get(middleware.CtxRole).(string)
	if role == models.RoleUnset {
		return c.Redirect(http.StatusSeeOther, "/select-type")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user_id":      c.Get(middleware.CtxUserID),
		"email":        c.Get(middleware.CtxEmail),
		"tipo_usuario": role,
	})
}
