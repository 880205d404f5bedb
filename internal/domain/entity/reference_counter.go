package entity

import "fmt"

// ReferenceCounter última secuencia emitida por (bodega, tipo de documento).
// Se crea perezosamente en la primera referencia y solo se incrementa.
type ReferenceCounter struct {
	WarehouseID string
	MoveType    string
	LastNumber  int64
}

// TypeCode devuelve el código corto del tipo para la referencia: IN, OUT o ADJ.
func TypeCode(moveType string) string {
	switch moveType {
	case MoveTypeRECEIPT:
		return "IN"
	case MoveTypeDELIVERY:
		return "OUT"
	case MoveTypeADJUSTMENT:
		return "ADJ"
	}
	return ""
}

// FormatReference formatea una referencia: "{shortCode}/{IN|OUT|ADJ}/{secuencia a 5 dígitos}".
// Ejemplo: WH/IN/00001
func FormatReference(warehouseShortCode, moveType string, number int64) string {
	return fmt.Sprintf("%s/%s/%05d", warehouseShortCode, TypeCode(moveType), number)
}
