package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// StockHandler expone el stock derivado y los ajustes de inventario.
type StockHandler struct {
	stockUC     *inventory.StockUseCase
	moveUC      *inventory.MoveUseCase
	reconcileUC *inventory.ReconcileUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stockUC *inventory.StockUseCase, moveUC *inventory.MoveUseCase, reconcileUC *inventory.ReconcileUseCase) *StockHandler {
	return &StockHandler{stockUC: stockUC, moveUC: moveUC, reconcileUC: reconcileUC}
}

// List godoc
// @Summary      Stock derivado de todos los productos
// @Description  Pliega el libro de movimientos completo en una pasada; nada se
//
//	lee de contadores materializados.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.StockSnapshotResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.stockUC.ComputeAllStock(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Stock derivado de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockSnapshotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{productId} [get]
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	out, err := h.stockUC.ComputeStock(c.Context(), c.Params("productId"))
	if err != nil {
		return mapCRUDError(c, err, "producto")
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar stock
// @Description  Crea un documento ADJUSTMENT de una línea directamente en DONE y
//
//	dispara el barrido de entregas en espera.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Producto, ubicación, cantidad y bodega"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.moveUC.CreateMove(c.Context(), entity.MoveTypeADJUSTMENT, userID, dto.CreateMoveRequest{
		WarehouseShortCode: in.WarehouseShortCode,
		MoveLines: []dto.MoveLineRequest{{
			ProductID:    in.ProductID,
			Quantity:     in.Quantity,
			ToLocationID: in.LocationID,
		}},
	})
	if err != nil {
		return mapMoveError(c, err)
	}
	// El ajuste ya mutó el libro: entregas en espera pueden haberse desbloqueado.
	_, _ = h.reconcileUC.ReconcileWaitingDeliveries(c.Context())
	return c.Status(fiber.StatusCreated).JSON(out)
}
