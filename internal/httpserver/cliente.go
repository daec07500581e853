package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jcancelado/fiapp/internal/logging"
	"github.com/jcancelado/fiapp/internal/middleware"
	"github.com/jcancelado/fiapp/internal/viewmodel"
)

// ClienteHTTP serves the customer surface: the aggregated debt view.
type ClienteHTTP struct {
	VM *viewmodel.ViewModel
}

// Debts returns everything the session customer owes, across all stores
// where a shopkeeper has registered them.
func (h *ClienteHTTP) Debts(c echo.Context) error {
	ctx := c.Request().Context()
	customerID, _ := c.Get(middleware.CtxUserID).(string)

	debts, err := h.VM.GetDeudasCliente(ctx, customerID)
	if err != nil {
		logging.FromContext(ctx).Error("deudas_cliente_failed", "error", err)
		return mapError(err)
	}

	var total float64
	for _, d := range debts {
		total += d.Amount
	}

	return c.JSON(http.StatusOK, echo.Map{
		"cliente_id": customerID,
		"deudas":     debts,
		"total":      total,
	})
}
