package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lilis-erp/gestion-api/internal/application/auth"
	"github.com/lilis-erp/gestion-api/internal/application/dto"
	"github.com/lilis-erp/gestion-api/internal/domain"
	"github.com/lilis-erp/gestion-api/internal/domain/access"
	"github.com/lilis-erp/gestion-api/internal/domain/entity"
	"github.com/lilis-erp/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	byID map[string]*entity.Account
}

var _ repository.AccountRepository = (*fakeAccountRepo)(nil)

func newFakeAccountRepo(accounts ...*entity.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{byID: map[string]*entity.Account{}}
	for _, a := range accounts {
		r.byID[a.ID] = a
	}
	return r
}

func (r *fakeAccountRepo) Create(a *entity.Account) error {
	for _, existing := range r.byID {
		if existing.Handle == a.Handle || existing.Email == a.Email {
			return domain.ErrDuplicateIdentity
		}
	}
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.byID[id], nil
}

func (r *fakeAccountRepo) GetByHandle(handle string) (*entity.Account, error) {
	for _, a := range r.byID {
		if a.Handle == handle {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(a *entity.Account) error { r.byID[a.ID] = a; return nil }

func (r *fakeAccountRepo) UpdatePassword(id, hash string) error {
	if a := r.byID[id]; a != nil {
		a.PasswordHash = hash
	}
	return nil
}

// RegisterAccess emula el UPDATE atómico del repositorio real.
func (r *fakeAccountRepo) RegisterAccess(id string, at time.Time) error {
	a := r.byID[id]
	if a == nil {
		return domain.ErrNotFound
	}
	t := at
	a.LastAccess = &t
	a.SessionCount++
	return nil
}

func (r *fakeAccountRepo) List(repository.AccountFilter, int, int) ([]*entity.Account, error) {
	return nil, nil
}

func (r *fakeAccountRepo) Delete(id string) error { delete(r.byID, id); return nil }

type fakeMailer struct {
	sentTo    []string
	lastToken string
}

func (m *fakeMailer) SendPasswordReset(email, token string) error {
	m.sentTo = append(m.sentTo, email)
	m.lastToken = token
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "secreto-123"

func cuenta(t *testing.T, handle, role, status string) *entity.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Account{
		ID:           "id-" + handle,
		Handle:       handle,
		Email:        handle + "@lilis.cl",
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		CreatedAt:    time.Now(),
	}
}

func usecaseConCuentas(t *testing.T, accounts ...*entity.Account) (*auth.AuthUseCase, *fakeAccountRepo, *fakeMailer) {
	t.Helper()
	repo := newFakeAccountRepo(accounts...)
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(repo, mailer, auth.JWTConfig{
		Secret:          "test-secret",
		ExpMinutes:      60,
		ResetExpMinutes: 30,
		Issuer:          "gestion-api-test",
	})
	return uc, repo, mailer
}

// ──────────────────────────────────────────────────────────────────────────────
// Login — máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_ResuelveDashboardYEmiteToken(t *testing.T) {
	uc, _, _ := usecaseConCuentas(t, cuenta(t, "operador1", entity.RoleOperador, entity.StatusActivo))

	out, err := uc.Login(dto.LoginRequest{Identifier: "operador1", Password: testPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, string(access.RouteOperador), out.Landing)
	assert.Equal(t, entity.RoleOperador, out.Account.Role)
	assert.Equal(t, int64(1), out.Account.SessionCount)
	assert.NotNil(t, out.Account.LastAccess)
}

func TestLogin_PorEmailTambienFunciona(t *testing.T) {
	uc, _, _ := usecaseConCuentas(t, cuenta(t, "cliente1", entity.RoleCliente, entity.StatusActivo))

	out, err := uc.Login(dto.LoginRequest{Identifier: "cliente1@lilis.cl", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, string(access.RouteCliente), out.Landing)
}

func TestLogin_BloqueadaManda_AunConPasswordCorrecta(t *testing.T) {
	uc, repo, _ := usecaseConCuentas(t, cuenta(t, "bloqueado1", entity.RoleAdmin, entity.StatusBloqueado))

	// Password correcta: el bloqueo igual rechaza.
	_, err := uc.Login(dto.LoginRequest{Identifier: "bloqueado1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrAccountBlocked)

	// Password incorrecta: mismo error, el bloqueo se evalúa primero.
	_, err = uc.Login(dto.LoginRequest{Identifier: "bloqueado1", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrAccountBlocked)

	a, _ := repo.GetByHandle("bloqueado1")
	assert.Equal(t, int64(0), a.SessionCount, "un rechazo nunca toca los contadores")
	assert.Nil(t, a.LastAccess)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := usecaseConCuentas(t, cuenta(t, "operador1", entity.RoleOperador, entity.StatusActivo))

	_, err := uc.Login(dto.LoginRequest{Identifier: "operador1", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(dto.LoginRequest{Identifier: "no-existe", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, _, _ := usecaseConCuentas(t, cuenta(t, "inactivo1", entity.RoleOperador, entity.StatusInactivo))

	_, err := uc.Login(dto.LoginRequest{Identifier: "inactivo1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestLogin_CargoIndeterminado_NoCuentaSesion(t *testing.T) {
	uc, repo, _ := usecaseConCuentas(t, cuenta(t, "raro1", "GERENTE", entity.StatusActivo))

	_, err := uc.Login(dto.LoginRequest{Identifier: "raro1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrRoleUndetermined,
		"cargo desconocido rechaza el login, nunca un dashboard por defecto")

	a, _ := repo.GetByHandle("raro1")
	assert.Equal(t, int64(0), a.SessionCount)
}

func TestLogin_SessionCountMonotonico(t *testing.T) {
	uc, repo, _ := usecaseConCuentas(t, cuenta(t, "admin1", entity.RoleAdmin, entity.StatusActivo))

	var previo int64
	for i := 0; i < 5; i++ {
		out, err := uc.Login(dto.LoginRequest{Identifier: "admin1", Password: testPassword})
		require.NoError(t, err)
		assert.Greater(t, out.Account.SessionCount, previo,
			"session_count debe crecer estrictamente en cada login exitoso")
		previo = out.Account.SessionCount
	}

	// Un login fallido intercalado no retrocede el contador.
	_, err := uc.Login(dto.LoginRequest{Identifier: "admin1", Password: "mala"})
	require.Error(t, err)
	a, _ := repo.GetByHandle("admin1")
	assert.Equal(t, int64(5), a.SessionCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaClienteActivo(t *testing.T) {
	uc, _, _ := usecaseConCuentas(t)

	out, err := uc.Register(dto.RegisterRequest{
		Handle:   "nuevo1",
		Email:    "Nuevo1@Lilis.cl",
		Password: "una-clave-larga",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.Role, "el registro público siempre crea CLIENTE")
	assert.Equal(t, entity.StatusActivo, out.Status)
	assert.Equal(t, "nuevo1@lilis.cl", out.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, int64(0), out.SessionCount)
}

func TestRegister_EmailDuplicado_NoAfectaLaPrimeraCuenta(t *testing.T) {
	primera := cuenta(t, "original", entity.RoleCliente, entity.StatusActivo)
	uc, repo, _ := usecaseConCuentas(t, primera)

	_, err := uc.Register(dto.RegisterRequest{
		Handle:   "imitador",
		Email:    primera.Email,
		Password: "otra-clave-123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)

	intacta, _ := repo.GetByHandle("original")
	require.NotNil(t, intacta)
	assert.Equal(t, primera.PasswordHash, intacta.PasswordHash, "la cuenta original queda intacta")
}

func TestRegister_HandleDuplicado(t *testing.T) {
	uc, _, _ := usecaseConCuentas(t, cuenta(t, "tomado", entity.RoleCliente, entity.StatusActivo))

	_, err := uc.Register(dto.RegisterRequest{
		Handle:   "tomado",
		Email:    "distinto@lilis.cl",
		Password: "otra-clave-123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recuperación de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestPasswordReset_CicloCompleto(t *testing.T) {
	acc := cuenta(t, "olvidadizo", entity.RoleOperador, entity.StatusActivo)
	uc, repo, mailer := usecaseConCuentas(t, acc)

	require.NoError(t, uc.RequestPasswordReset(dto.PasswordResetRequest{Email: acc.Email}))
	require.Len(t, mailer.sentTo, 1)
	require.NotEmpty(t, mailer.lastToken)

	err := uc.ResetPassword(dto.PasswordResetConfirm{
		Token:       mailer.lastToken,
		NewPassword: "clave-nueva-456",
	})
	require.NoError(t, err)

	actualizada, _ := repo.GetByID(acc.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(actualizada.PasswordHash), []byte("clave-nueva-456")))

	// Y el login funciona con la nueva contraseña.
	_, err = uc.Login(dto.LoginRequest{Identifier: "olvidadizo", Password: "clave-nueva-456"})
	assert.NoError(t, err)
}

func TestPasswordReset_EmailDesconocidoNoRevelaNada(t *testing.T) {
	uc, _, mailer := usecaseConCuentas(t)

	err := uc.RequestPasswordReset(dto.PasswordResetRequest{Email: "fantasma@lilis.cl"})
	assert.NoError(t, err, "no se distingue si el email existe")
	assert.Empty(t, mailer.sentTo)
}

func TestPasswordReset_TokenDeSesionNoSirve(t *testing.T) {
	acc := cuenta(t, "victima", entity.RoleOperador, entity.StatusActivo)
	uc, _, _ := usecaseConCuentas(t, acc)

	out, err := uc.Login(dto.LoginRequest{Identifier: "victima", Password: testPassword})
	require.NoError(t, err)

	err = uc.ResetPassword(dto.PasswordResetConfirm{Token: out.Token, NewPassword: "robada-789"})
	assert.Error(t, err, "un token de sesión no debe aceptarse como token de recuperación")
}
