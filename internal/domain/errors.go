package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son locales y recuperables: se reportan al usuario como mensaje,
// ninguno debe tumbar el proceso.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountBlocked     = errors.New("la cuenta está bloqueada")
	ErrAccountInactive    = errors.New("la cuenta está inactiva")
	ErrRoleUndetermined   = errors.New("cargo de usuario indeterminado")
	ErrDuplicateIdentity  = errors.New("el usuario o email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidTransition  = errors.New("transición de estado de pedido no permitida")
	ErrNotStaff           = errors.New("la cuenta no pertenece al personal interno")
)
