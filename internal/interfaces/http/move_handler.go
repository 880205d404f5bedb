package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// MoveHandler maneja documentos de movimiento de un tipo fijo: el mismo
// handler sirve /api/receipts (RECEIPT) y /api/deliveries (DELIVERY).
type MoveHandler struct {
	moveType     string
	moveUC       *inventory.MoveUseCase
	transitionUC *inventory.TransitionUseCase
	reconcileUC  *inventory.ReconcileUseCase
}

// NewMoveHandler construye el handler para un tipo de documento.
func NewMoveHandler(moveType string, moveUC *inventory.MoveUseCase, transitionUC *inventory.TransitionUseCase, reconcileUC *inventory.ReconcileUseCase) *MoveHandler {
	return &MoveHandler{moveType: moveType, moveUC: moveUC, transitionUC: transitionUC, reconcileUC: reconcileUC}
}

// Create godoc
// @Summary      Crear documento de movimiento
// @Description  Las recepciones nacen en DRAFT; las entregas en READY o WAITING según stock.
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMoveRequest  true  "Cabecera y líneas del documento"
// @Success      201   {object}  dto.MoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *MoveHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.moveUC.CreateMove(c.Context(), h.moveType, userID, in)
	if err != nil {
		return mapMoveError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar documentos del tipo
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (DRAFT/WAITING/READY/DONE, vacío = todos)"
// @Param        search  query  string  false  "Busca en referencia y contacto"
// @Success      200     {object}  dto.MoveListResponse
// @Router       /api/receipts [get]
func (h *MoveHandler) List(c *fiber.Ctx) error {
	filter := repository.MoveFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	out, err := h.moveUC.List(c.Context(), h.moveType, filter)
	if err != nil {
		return mapMoveError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener documento por ID
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del documento"
// @Success      200  {object}  dto.MoveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *MoveHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.moveUC.GetByID(c.Context(), h.moveType, c.Params("id"))
	if err != nil {
		return mapMoveError(c, err)
	}
	return c.JSON(out)
}

// Edit godoc
// @Summary      Editar documento en DRAFT
// @Description  Reemplazo completo de las líneas; solo permitido en DRAFT.
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.EditMoveRequest  true  "Cabecera y juego nuevo de líneas"
// @Success      200   {object}  dto.MoveResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [put]
func (h *MoveHandler) Edit(c *fiber.Ctx) error {
	var in dto.EditMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.moveUC.ReplaceLines(c.Context(), h.moveType, c.Params("id"), in)
	if err != nil {
		return mapMoveError(c, err)
	}
	return c.JSON(out)
}

// TransitionStatus godoc
// @Summary      Cambiar estado del documento
// @Description  Aplica la máquina de estados. La promoción de una entrega a READY
//
//	re-evalúa el stock línea a línea; un rechazo devuelve 409 con el
//	detalle de faltantes. Completar un documento dispara el barrido de
//	entregas en espera.
//
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.TransitionRequest  true  "Estado destino"
// @Success      200   {object}  dto.MoveResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.TransitionErrorResponse
// @Router       /api/receipts/{id}/status [post]
func (h *MoveHandler) TransitionStatus(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.transitionUC.TransitionStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return mapMoveError(c, err)
	}
	// Completar un documento muta el libro: otras entregas en espera pueden
	// haberse desbloqueado.
	if out.Status == entity.MoveStatusDONE {
		_, _ = h.reconcileUC.ReconcileWaitingDeliveries(c.Context())
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Barrido de entregas en espera
// @Description  Re-evalúa todas las entregas WAITING y promueve a READY las que
//
//	ya tienen stock. Devuelve el reporte del barrido.
//
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReconciliationReport
// @Router       /api/deliveries/reconcile [post]
func (h *MoveHandler) Reconcile(c *fiber.Ctx) error {
	report, err := h.reconcileUC.ReconcileWaitingDeliveries(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(report)
}

// mapMoveError mapea errores del motor de movimientos a HTTP. Un rechazo de
// transición viaja como 409 con su reporte completo.
func mapMoveError(c *fiber.Ctx, err error) error {
	var transErr *movement.TransitionError
	if errors.As(err, &transErr) {
		code := "INVALID_TRANSITION"
		if transErr.HasShortfall() {
			code = "INSUFFICIENT_STOCK"
		}
		return c.Status(fiber.StatusConflict).JSON(dto.TransitionErrorResponse{
			Code:           code,
			Message:        transErr.Error(),
			CurrentStatus:  transErr.CurrentStatus,
			AllowedTargets: transErr.AllowedTargets,
			StockChecks:    transErr.StockChecks,
		})
	}
	if errors.Is(err, domain.ErrImmutableState) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IMMUTABLE", Message: "el documento ya no es editable"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento, producto o ubicación no encontrado"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrReferenceConflict) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "REFERENCE_CONFLICT", Message: "conflicto de referencia, reintente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
