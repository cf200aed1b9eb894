package mail

import (
	"github.com/rs/zerolog"

	"github.com/lilis-erp/gestion-api/internal/application/auth"
)

var _ auth.Mailer = (*LogMailer)(nil)

// LogMailer implementación de Mailer que escribe el correo al log en vez de
// enviarlo. Suficiente para desarrollo y staging; producción enchufa un
// proveedor SMTP real detrás del mismo puerto.
type LogMailer struct {
	log zerolog.Logger
}

// NewLogMailer construye un mailer respaldado por el logger.
func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendPasswordReset registra el token de recuperación destinado al email.
func (m *LogMailer) SendPasswordReset(email, token string) error {
	m.log.Info().
		Str("email", email).
		Str("token", token).
		Msg("correo de recuperación de contraseña")
	return nil
}
