package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jcancelado/fiapp/internal/session"
)

// Context keys under which the session middleware stores the caller's
// identity.
const (
	CtxUserID = "userID"
	CtxEmail  = "email"
	CtxRole   = "role"
)

type Session struct {
	Secret []byte
}

// Require parses the session cookie and loads the identity into the echo
// context. Browsers without a valid session are bounced to the login page.
func (m *Session) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}

		claims, err := session.Parse(m.Secret, cookie.Value)
		if err != nil {
			c.SetCookie(session.DeleteCookie())
			return c.Redirect(http.StatusSeeOther, "/login")
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		return next(c)
	}
}

// RequireRole gates a route group on the role stored in the session.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r, _ := c.Get(CtxRole).(string); r != role {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}
