package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

const shiftColumns = `id, account_id, date, start_time, end_time, created_at`

// ShiftRepo implementación del puerto ShiftRepository sobre PostgreSQL.
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador de persistencia para turnos.
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

func (r *ShiftRepo) Create(s *entity.Shift) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO shifts (`+shiftColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.AccountID, s.Date, s.StartTime, s.EndTime, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	var s entity.Shift
	err := r.q.QueryRow(context.Background(),
		`SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id).Scan(
		&s.ID, &s.AccountID, &s.Date, &s.StartTime, &s.EndTime, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return &s, nil
}

// ListByAccount lista los turnos de una cuenta, del más reciente al más antiguo.
func (r *ShiftRepo) ListByAccount(accountID string, limit, offset int) ([]*entity.Shift, error) {
	return r.list(`SELECT `+shiftColumns+` FROM shifts WHERE account_id = $1
		ORDER BY date DESC, start_time DESC LIMIT $2 OFFSET $3`, accountID, limit, offset)
}

// List lista todos los turnos.
func (r *ShiftRepo) List(limit, offset int) ([]*entity.Shift, error) {
	return r.list(`SELECT `+shiftColumns+` FROM shifts
		ORDER BY date DESC, start_time DESC LIMIT $1 OFFSET $2`, limit, offset)
}

func (r *ShiftRepo) list(query string, args ...any) ([]*entity.Shift, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.AccountID, &s.Date, &s.StartTime, &s.EndTime, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *ShiftRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}
