package entity

import "time"

// User usuario responsable de los documentos de movimiento.
type User struct {
	ID           string
	LoginID      string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
