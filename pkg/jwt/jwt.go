package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PurposePasswordReset marca tokens de un solo propósito para el flujo de
// recuperación de contraseña; nunca sirven como sesión.
const PurposePasswordReset = "password_reset"

// Claims incluye los claims estándar JWT más los campos propios de la
// aplicación. Se añade Role para que el middleware RBAC pueda decidir sin
// consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	Handle    string `json:"handle"`
	Role      string `json:"role"` // "ADMIN" | "SUPERVISOR" | "OPERADOR" | "CLIENTE"
	Purpose   string `json:"purpose,omitempty"`
}

// Generate genera un token de sesión firmado con accountID, handle y role.
func Generate(secret, accountID, handle, role, issuer string, expMinutes int) (string, error) {
	return sign(secret, accountID, handle, role, "", issuer, expMinutes)
}

// GenerateReset genera un token de recuperación de contraseña de corta vida.
func GenerateReset(secret, accountID, issuer string, expMinutes int) (string, error) {
	return sign(secret, accountID, "", "", PurposePasswordReset, issuer, expMinutes)
}

func sign(secret, accountID, handle, role, purpose, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		AccountID: accountID,
		Handle:    handle,
		Role:      role,
		Purpose:   purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida un token de sesión y devuelve accountID, handle y role.
// Rechaza tokens de propósito especial (reset) además de los inválidos,
// expirados o con firma incorrecta.
func Parse(secret, tokenString string) (accountID, handle, role string, err error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", "", "", err
	}
	if claims.Purpose != "" {
		return "", "", "", fmt.Errorf("el token no es de sesión")
	}
	return claims.AccountID, claims.Handle, claims.Role, nil
}

// ParseReset valida un token de recuperación y devuelve el accountID.
func ParseReset(secret, tokenString string) (string, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if claims.Purpose != PurposePasswordReset {
		return "", fmt.Errorf("el token no es de recuperación de contraseña")
	}
	return claims.AccountID, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
