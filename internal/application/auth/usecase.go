package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/access"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
	"github.com/lilis-erp/gestion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret          string
	ExpMinutes      int
	ResetExpMinutes int
	Issuer          string
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación
// de contraseña. El login implementa la máquina Anónimo → Autenticando →
// {Autenticado, Rechazado}; cada rechazo tiene su propio error de dominio.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	mailer      Mailer
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, mailer Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, mailer: mailer, jwtCfg: jwtCfg}
}

// Register crea una cuenta pública: hashea la contraseña con bcrypt y
// persiste con cargo CLIENTE y estado ACTIVO. La unicidad de handle y email
// la garantiza la constraint de la DB; un duplicado devuelve
// ErrDuplicateIdentity y no afecta la cuenta existente.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if existing, _ := uc.accountRepo.GetByHandle(in.Handle); existing != nil {
		return nil, domain.ErrDuplicateIdentity
	}
	if existing, _ := uc.accountRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrDuplicateIdentity
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Handle:       in.Handle,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         entity.RoleCliente,
		Status:       entity.StatusActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Login ejecuta la máquina de estados de autenticación:
//
//   - cuenta BLOQUEADA  → ErrAccountBlocked, antes de verificar la
//     contraseña: el bloqueo manda sin importar si la credencial es correcta
//   - handle/email desconocido o bcrypt no coincide → ErrInvalidCredentials
//   - cuenta INACTIVA   → ErrAccountInactive
//   - cargo irresoluble → ErrRoleUndetermined, nunca un dashboard por defecto
//
// Ningún rechazo toca los contadores de sesión. Solo al autenticar se
// ejecuta el UPDATE atómico de last_access y session_count y se emite el JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.findByIdentifier(in.Identifier)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if account.Status == entity.StatusBloqueado {
		return nil, domain.ErrAccountBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if account.Status != entity.StatusActivo {
		return nil, domain.ErrAccountInactive
	}

	landing, err := access.ResolveLanding(account)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.accountRepo.RegisterAccess(account.ID, now); err != nil {
		return nil, err
	}
	account.LastAccess = &now
	account.SessionCount++

	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Handle, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Landing: string(landing),
		Account: *toAccountResponse(account),
	}, nil
}

// RequestPasswordReset genera un token de recuperación de corta vida y lo
// entrega vía Mailer. Para no revelar qué emails existen, un email
// desconocido no es error.
func (uc *AuthUseCase) RequestPasswordReset(in dto.PasswordResetRequest) error {
	account, err := uc.accountRepo.GetByEmail(strings.ToLower(in.Email))
	if err != nil {
		return err
	}
	if account == nil {
		return nil
	}
	token, err := jwt.GenerateReset(uc.jwtCfg.Secret, account.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ResetExpMinutes)
	if err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(account.Email, token)
}

// ResetPassword valida el token de recuperación y fija la nueva contraseña.
func (uc *AuthUseCase) ResetPassword(in dto.PasswordResetConfirm) error {
	accountID, err := jwt.ParseReset(uc.jwtCfg.Secret, in.Token)
	if err != nil {
		return domain.ErrInvalidCredentials
	}
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.accountRepo.UpdatePassword(account.ID, string(hash))
}

// findByIdentifier busca por handle y si no, por email.
func (uc *AuthUseCase) findByIdentifier(identifier string) (*entity.Account, error) {
	account, err := uc.accountRepo.GetByHandle(identifier)
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}
	return uc.accountRepo.GetByEmail(strings.ToLower(identifier))
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:           a.ID,
		Handle:       a.Handle,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Phone:        a.Phone,
		Role:         a.Role,
		Status:       a.Status,
		MFAEnabled:   a.MFAEnabled,
		LastAccess:   a.LastAccess,
		SessionCount: a.SessionCount,
		CreatedAt:    a.CreatedAt,
	}
}
