package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

// ShiftUseCase turnos del personal interno. Solo cuentas con cargo distinto
// de CLIENTE pueden tener turnos.
type ShiftUseCase struct {
	repo        repository.ShiftRepository
	accountRepo repository.AccountRepository
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(repo repository.ShiftRepository, accountRepo repository.AccountRepository) *ShiftUseCase {
	return &ShiftUseCase{repo: repo, accountRepo: accountRepo}
}

// Create agenda un turno para una cuenta del personal.
func (uc *ShiftUseCase) Create(in dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	account, err := uc.accountRepo.GetByID(in.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if account.Role == entity.RoleCliente {
		return nil, domain.ErrNotStaff
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.EndTime <= in.StartTime {
		return nil, domain.ErrInvalidInput
	}
	shift := &entity.Shift{
		ID:        uuid.New().String(),
		AccountID: in.AccountID,
		Date:      date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(shift); err != nil {
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// GetByID obtiene un turno por ID.
func (uc *ShiftUseCase) GetByID(id string) (*dto.ShiftResponse, error) {
	shift, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, nil
	}
	return toShiftResponse(shift), nil
}

// List lista todos los turnos.
func (uc *ShiftUseCase) List(page dto.PageRequest) ([]dto.ShiftResponse, error) {
	page.DefaultPage()
	shifts, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		items = append(items, *toShiftResponse(s))
	}
	return items, nil
}

// ListByAccount lista los turnos de una cuenta.
func (uc *ShiftUseCase) ListByAccount(accountID string, page dto.PageRequest) ([]dto.ShiftResponse, error) {
	page.DefaultPage()
	shifts, err := uc.repo.ListByAccount(accountID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		items = append(items, *toShiftResponse(s))
	}
	return items, nil
}

// Delete elimina un turno.
func (uc *ShiftUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toShiftResponse(s *entity.Shift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:        s.ID,
		AccountID: s.AccountID,
		Date:      s.Date.Format("2006-01-02"),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}
