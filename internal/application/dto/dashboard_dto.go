package dto

// DashboardStats contadores de documentos abiertos para el tablero.
type DashboardStats struct {
	Receipts   ReceiptStats  `json:"receipts"`
	Deliveries DeliveryStats `json:"deliveries"`
}

// ReceiptStats recepciones pendientes.
type ReceiptStats struct {
	ToReceive int `json:"to_receive"` // en READY
	Late      int `json:"late"`      // scheduleDate anterior a hoy
}

// DeliveryStats entregas pendientes.
type DeliveryStats struct {
	ToDeliver int `json:"to_deliver"` // en READY
	Waiting   int `json:"waiting"`    // en WAITING (bloqueadas por stock)
	Late      int `json:"late"`
}
