package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jcancelado/fiapp/internal/middleware"
	"github.com/jcancelado/fiapp/internal/models"
)

type Deps struct {
	Auth    *AuthHTTP
	Tendero *TenderoHTTP
	Cliente *ClienteHTTP
	Secret  []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"app": "fiapp"})
	})

	e.POST("/register", d.Auth.Register)
	e.POST("/login", d.Auth.Login)
	e.GET("/logout", d.Auth.Logout)

	sess := &middleware.Session{Secret: d.Secret}
	private := e.Group("", sess.Require)

	private.POST("/select-type", d.Auth.SelectType)
	private.GET("/dashboard", d.Auth.Dashboard)

	tendero := private.Group("/tendero", middleware.RequireRole(models.RoleTendero))
	tendero.GET("/locales", d.Tendero.ListStores)
	tendero.POST("/locales/create", d.Tendero.CreateStore)
	tendero.GET("/locales/:id/inventario", d.Tendero.ListProducts)
	tendero.POST("/locales/:id/inventario", d.Tendero.CreateProduct)
	tendero.GET("/locales/:id/inventario/search", d.Tendero.SearchProducts)
	tendero.PATCH("/locales/:id/inventario/:productoID", d.Tendero.PatchProduct)
	tendero.DELETE("/locales/:id/inventario/:productoID", d.Tendero.DeleteProduct)
	tendero.GET("/locales/:id/clientes", d.Tendero.ListCustomers)
	tendero.POST("/locales/:id/clientes", d.Tendero.RegisterCustomer)
	tendero.GET("/locales/:id/clientes/:clienteID/deudas", d.Tendero.DebtHistory)
	tendero.POST("/locales/:id/clientes/:clienteID/deudas", d.Tendero.RecordDebt)

	cliente := private.Group("/cliente", middleware.RequireRole(models.RoleCliente))
	cliente.GET("/deudas", d.Cliente.Debts)
}
