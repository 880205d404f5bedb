package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// HistoryHandler expone el historial de líneas de movimiento.
type HistoryHandler struct {
	moveUC *inventory.MoveUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(moveUC *inventory.MoveUseCase) *HistoryHandler {
	return &HistoryHandler{moveUC: moveUC}
}

// List godoc
// @Summary      Historial de movimientos
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca en referencia, contacto y producto"
// @Param        from    query  string  false  "Fecha desde (RFC 3339)"
// @Param        to      query  string  false  "Fecha hasta (RFC 3339)"
// @Success      200  {array}   dto.HistoryLineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	filter := repository.HistoryFilter{Search: c.Query("search")}
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
		}
		filter.From = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
		}
		filter.To = &t
	}
	out, err := h.moveUC.ListHistory(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
