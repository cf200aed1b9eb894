package repository

import (
	"time"

	"github.com/lilis-erp/gestion-api/internal/domain/entity"
)

// AccountFilter filtros de listado de cuentas.
type AccountFilter struct {
	Search string // handle, nombre, apellido o email
	Role   string
	Status string
}

// AccountRepository define el puerto de persistencia para Account (DIP).
// RegisterAccess debe ser un único UPDATE atómico: incrementos perdidos entre
// logins concurrentes se toleran, escrituras parciales no.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByHandle(handle string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	Update(account *entity.Account) error
	UpdatePassword(id, passwordHash string) error
	RegisterAccess(id string, at time.Time) error
	List(filter AccountFilter, limit, offset int) ([]*entity.Account, error)
	Delete(id string) error
}
