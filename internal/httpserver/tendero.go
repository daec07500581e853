package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jcancelado/fiapp/internal/logging"
	"github.com/jcancelado/fiapp/internal/middleware"
	"github.com/jcancelado/fiapp/internal/transport"
	"github.com/jcancelado/fiapp/internal/util"
	"github.com/jcancelado/fiapp/internal/viewmodel"
)

// TenderoHTTP serves the shopkeeper surface: stores, inventory, customers
// and debt recording.
type TenderoHTTP struct {
	VM *viewmodel.ViewModel
}

func (h *TenderoHTTP) ListStores(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID, _ := c.Get(middleware.CtxUserID).(string)

	stores, err := h.VM.ListarLocalesPorPropietario(ctx, ownerID)
	if err != nil {
		logging.FromContext(ctx).Error("list_stores_failed", "error", err)
		return mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"locales": stores})
}

func (h *TenderoHTTP) CreateStore(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tendero_create_local")

	var req transport.CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Nombre == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	ownerID, _ := c.Get(middleware.CtxUserID).(string)
	// Owner plus creation timestamp keeps ids unique without a central
	// sequence.
	storeID := fmt.Sprintf("local_%s_%d", ownerID, time.Now().Unix())

	if _, err := h.VM.CrearLocal(ctx, req.Nombre, ownerID, storeID); err != nil {
		l.Warn("create_local_failed", "error", err)
		return mapError(err)
	}

	l.Info("local_created", "store_id", storeID)
	return c.Redirect(http.StatusSeeOther, "/tendero/locales")
}

func (h *TenderoHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	storeID := c.Param("id")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.VM.ListarProductos(ctx, storeID, offset, limit)
	if err != nil {
		logging.FromContext(ctx).Error("list_products_failed", "error", err)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"local_id":  storeID,
		"productos": items,
		"meta": echo.Map{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func (h *TenderoHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tendero_create_producto")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.VM.CrearProducto(ctx, c.Param("id"), req)
	if err != nil {
		l.Warn("create_producto_failed", "error", err)
		return mapError(err)
	}

	l.Info("producto_created", "producto_id", product.ProductID)
	return c.JSON(http.StatusCreated, product)
}

func (h *TenderoHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tendero_patch_producto")

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.VM.ActualizarProducto(ctx, c.Param("id"), c.Param("productoID"), req)
	if err != nil {
		l.Warn("patch_producto_failed", "error", err)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *TenderoHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tendero_delete_producto")

	if err := h.VM.EliminarProducto(ctx, c.Param("id"), c.Param("productoID")); err != nil {
		l.Warn("delete_producto_failed", "error", err)
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *TenderoHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, items, err := h.VM.BuscarProductos(ctx, c.Param("id"), q, from, limit)
	if err != nil {
		logging.FromContext(ctx).Error("search_productos_failed", "error", err)
		return mapError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "productos": items})
}

func (h *TenderoHTTP) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()
	storeID := c.Param("id")

	customers, err := h.VM.ListarClientes(ctx, storeID)
	if err != nil {
		logging.FromContext(ctx).Error("list_clientes_failed", "error", err)
		return mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"local_id": storeID, "clientes": customers})
}

func (h *TenderoHTTP) RegisterCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tendero_registrar_cliente")

	var req transport.RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.VM.RegistrarCliente(ctx, c.Param("id"), req)
	if err != nil {
		l.Warn("registrar_cliente_failed", "error", err)
		return mapError(err)
	}

	l.Info("cliente_registered", "cliente_id", customer.CustomerID)
	return c.JSON(http.StatusCreated, customer)
}

func (h *TenderoHTTP) RecordDebt(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "tendero_registrar_deuda")

	var req transport.RecordDebtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	debt, err := h.VM.RegistrarDeuda(ctx, c.Param("id"), c.Param("clienteID"), req.Monto, req.PlazoDias)
	if err != nil {
		l.Warn("registrar_deuda_failed", "error", err)
		return mapError(err)
	}

	l.Info("deuda_recorded", "cliente_id", debt.CustomerID, "monto", debt.Amount)
	return c.JSON(http.StatusCreated, debt)
}

func (h *TenderoHTTP) DebtHistory(c echo.Context) error {
	ctx := c.Request().Context()

	debts, err := h.VM.ObtenerHistorialDeudas(ctx, c.Param("id"), c.Param("clienteID"))
	if err != nil {
		logging.FromContext(ctx).Error("historial_deudas_failed", "error", err)
		return mapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deudas": debts})
}
