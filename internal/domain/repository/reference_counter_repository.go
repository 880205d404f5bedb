package repository

// ReferenceCounterRepository puerto del contador de referencias por
// (bodega, tipo de documento).
type ReferenceCounterRepository interface {
	// NextNumber crea perezosamente el contador si no existe e incrementa y
	// devuelve la secuencia en una sola operación atómica de lectura-escritura
	// (sin hueco entre leer y escribir: un read-then-write separado emitiría
	// referencias duplicadas bajo creación concurrente).
	NextNumber(warehouseID, moveType string) (int64, error)
}
