package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// StockHandler consulta de disponibilidad neta.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Available godoc
// @Summary      Disponibilidad neta de un producto en una bodega
// @Description  Devuelve la foto puntual del índice de disponibilidad. Un par
// @Description  (producto, bodega) sin registro es cero, no error.
// @Tags         stock
// @Produce      json
// @Param        product_id   query  string  true  "ID de producto"
// @Param        location_id  query  string  true  "ID de bodega"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Available(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	locationID := c.Query("location_id")
	out, err := h.uc.Available(productID, locationID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
