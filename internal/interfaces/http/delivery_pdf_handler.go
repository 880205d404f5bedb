package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// DeliverySlipGenerator genera el PDF del albarán de una entrega.
type DeliverySlipGenerator interface {
	GenerateDeliverySlip(ctx context.Context, move *dto.MoveResponse) ([]byte, error)
}

// DeliveryPDFHandler expone el albarán de entrega en PDF.
type DeliveryPDFHandler struct {
	moveUC    *inventory.MoveUseCase
	generator DeliverySlipGenerator
}

// NewDeliveryPDFHandler construye el handler.
func NewDeliveryPDFHandler(moveUC *inventory.MoveUseCase, generator DeliverySlipGenerator) *DeliveryPDFHandler {
	return &DeliveryPDFHandler{moveUC: moveUC, generator: generator}
}

// GetPDF godoc
// @Summary      Albarán de entrega en PDF
// @Tags         moves
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la entrega"
// @Success      200  {file}    byte
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/pdf [get]
func (h *DeliveryPDFHandler) GetPDF(c *fiber.Ctx) error {
	move, err := h.moveUC.GetByID(c.Context(), entity.MoveTypeDELIVERY, c.Params("id"))
	if err != nil {
		return mapMoveError(c, err)
	}
	pdfBytes, err := h.generator.GenerateDeliverySlip(c.Context(), move)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+move.Reference+`.pdf"`)
	return c.Send(pdfBytes)
}
