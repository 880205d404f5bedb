package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// DashboardUseCase contadores de documentos abiertos para el tablero.
type DashboardUseCase struct {
	movRepo repository.InventoryMoveRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(movRepo repository.InventoryMoveRepository) *DashboardUseCase {
	return &DashboardUseCase{movRepo: movRepo}
}

// GetStats cuenta recepciones y entregas pendientes. Un documento es "late"
// si sigue abierto y su fecha programada ya pasó.
func (uc *DashboardUseCase) GetStats() (*dto.DashboardStats, error) {
	now := time.Now()

	receipts, err := uc.movRepo.ListOpenByType(entity.MoveTypeRECEIPT)
	if err != nil {
		return nil, err
	}
	deliveries, err := uc.movRepo.ListOpenByType(entity.MoveTypeDELIVERY)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{}
	for _, m := range receipts {
		if m.Status == entity.MoveStatusREADY {
			stats.Receipts.ToReceive++
		}
		if isLate(m, now) {
			stats.Receipts.Late++
		}
	}
	for _, m := range deliveries {
		switch m.Status {
		case entity.MoveStatusREADY:
			stats.Deliveries.ToDeliver++
		case entity.MoveStatusWAITING:
			stats.Deliveries.Waiting++
		}
		if isLate(m, now) {
			stats.Deliveries.Late++
		}
	}
	return stats, nil
}

func isLate(m *entity.InventoryMove, now time.Time) bool {
	return m.ScheduleDate != nil && m.ScheduleDate.Before(now)
}
