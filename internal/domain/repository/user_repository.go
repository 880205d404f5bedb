package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByLoginID(loginID string) (*entity.User, error)
}
