package usecase

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
)

// AccountUseCase CRUD administrativo de cuentas. A diferencia del registro
// público, aquí el ADMIN asigna cargo y estado libremente.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create crea una cuenta con cargo y estado explícitos.
func (uc *AccountUseCase) Create(in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if !access.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByHandle(in.Handle); existing != nil {
		return nil, domain.ErrDuplicateIdentity
	}
	if existing, _ := uc.repo.GetByEmail(strings.ToLower(in.Email)); existing != nil {
		return nil, domain.ErrDuplicateIdentity
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActivo
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
		Role:         in.Role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *AccountUseCase) GetByID(id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return toAccountResponse(account), nil
}

// Update actualiza los campos editables de una cuenta. LastAccess y
// SessionCount quedan fuera: solo el login los muta.
func (uc *AccountUseCase) Update(id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	if in.Email != nil {
		account.Email = strings.ToLower(*in.Email)
	}
	if in.FirstName != nil {
		account.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		account.LastName = *in.LastName
	}
	if in.Phone != nil {
		account.Phone = *in.Phone
	}
	if in.Role != nil {
		if !access.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		account.Role = *in.Role
	}
	if in.Status != nil {
		if !access.ValidStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		account.Status = *in.Status
	}
	if in.MFAEnabled != nil {
		account.MFAEnabled = *in.MFAEnabled
	}
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// List lista cuentas con filtros de búsqueda, cargo y estado.
func (uc *AccountUseCase) List(filter repository.AccountFilter, page dto.PageRequest) (*dto.AccountListResponse, error) {
	page.DefaultPage()
	accounts, err := uc.repo.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, *toAccountResponse(a))
	}
	return &dto.AccountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una cuenta por ID.
func (uc *AccountUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
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
