package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, handle, email, password_hash, first_name, last_name, phone, role, status, mfa_enabled, last_access, session_count, created_at, updated_at`

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una cuenta nueva. La unicidad de handle y email la
// garantizan las constraints; una violación se traduce a
// ErrDuplicateIdentity.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Handle, account.Email, account.PasswordHash,
		account.FirstName, account.LastName, account.Phone,
		account.Role, account.Status, account.MFAEnabled,
		account.LastAccess, account.SessionCount, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateIdentity
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.getOne(`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

// GetByHandle obtiene una cuenta por handle.
func (r *AccountRepo) GetByHandle(handle string) (*entity.Account, error) {
	return r.getOne(`SELECT `+accountColumns+` FROM accounts WHERE handle = $1`, handle)
}

// GetByEmail obtiene una cuenta por email.
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	return r.getOne(`SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
}

func (r *AccountRepo) getOne(query string, arg any) (*entity.Account, error) {
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Handle, &a.Email, &a.PasswordHash,
		&a.FirstName, &a.LastName, &a.Phone,
		&a.Role, &a.Status, &a.MFAEnabled,
		&a.LastAccess, &a.SessionCount, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// Update actualiza los campos editables de una cuenta. No toca
// password_hash ni los contadores de sesión.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts
		SET email = $2, first_name = $3, last_name = $4, phone = $5,
		    role = $6, status = $7, mfa_enabled = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Email, account.FirstName, account.LastName, account.Phone,
		account.Role, account.Status, account.MFAEnabled, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateIdentity
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// UpdatePassword reemplaza el hash de contraseña.
func (r *AccountRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET password_hash = $2, updated_at = now() WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// RegisterAccess incrementa session_count y fija last_access en un único
// UPDATE atómico. Dos logins concurrentes serializan en la fila: el contador
// nunca queda a medio escribir.
func (r *AccountRepo) RegisterAccess(id string, at time.Time) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET session_count = session_count + 1, last_access = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("register access: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista cuentas con filtros de búsqueda, cargo y estado.
func (r *AccountRepo) List(filter repository.AccountFilter, limit, offset int) ([]*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (handle ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", pos, pos, pos, pos)
		args = append(args, searchPattern(filter.Search))
		pos++
	}
	if filter.Role != "" {
		query += fmt.Sprintf(" AND role = $%d", pos)
		args = append(args, filter.Role)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Handle, &a.Email, &a.PasswordHash,
			&a.FirstName, &a.LastName, &a.Phone,
			&a.Role, &a.Status, &a.MFAEnabled,
			&a.LastAccess, &a.SessionCount, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina una cuenta por ID.
func (r *AccountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
