package auth

// Mailer es el puerto de notificación para el flujo de recuperación de
// contraseña. La entrega real (SMTP, proveedor) queda fuera del núcleo;
// en desarrollo se usa una implementación que solo registra en el log.
type Mailer interface {
	SendPasswordReset(email, token string) error
}
