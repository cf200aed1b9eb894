package dto

import "time"

// RegisterRequest entrada para el registro público. El cargo no se acepta
// desde fuera: toda cuenta pública nace como CLIENTE.
type RegisterRequest struct {
	Handle    string `json:"handle" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// CreateAccountRequest entrada para el CRUD de cuentas (solo ADMIN):
// a diferencia del registro público, permite asignar cargo y estado.
type CreateAccountRequest struct {
	Handle    string `json:"handle" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Role      string `json:"role" validate:"required,oneof=ADMIN SUPERVISOR OPERADOR CLIENTE"`
	Status    string `json:"status" validate:"omitempty,oneof=ACTIVO INACTIVO BLOQUEADO"`
}

// UpdateAccountRequest entrada para actualizar una cuenta (solo ADMIN).
// LastAccess y SessionCount no son editables: los muta solo el login.
type UpdateAccountRequest struct {
	Email      *string `json:"email" validate:"omitempty,email"`
	FirstName  *string `json:"first_name" validate:"omitempty,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Role       *string `json:"role" validate:"omitempty,oneof=ADMIN SUPERVISOR OPERADOR CLIENTE"`
	Status     *string `json:"status" validate:"omitempty,oneof=ACTIVO INACTIVO BLOQUEADO"`
	MFAEnabled *bool   `json:"mfa_enabled"`
}

// AccountResponse salida de una cuenta (sin hash de contraseña).
type AccountResponse struct {
	ID           string     `json:"id"`
	Handle       string     `json:"handle"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	MFAEnabled   bool       `json:"mfa_enabled"`
	LastAccess   *time.Time `json:"last_access"`
	SessionCount int64      `json:"session_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AccountListResponse lista paginada de cuentas.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LoginRequest entrada para login. Identifier acepta handle o email.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y la ruta de dashboard resuelta por cargo.
type LoginResponse struct {
	Token   string          `json:"token"`
	Landing string          `json:"landing"`
	Account AccountResponse `json:"account"`
}

// PasswordResetRequest entrada para solicitar recuperación de contraseña.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm entrada para fijar la nueva contraseña con el token.
type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
