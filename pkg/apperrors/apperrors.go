package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel failure kinds raised by the application layer. Handlers map each
// kind to an HTTP status with StatusFor; everything unknown is a 500.
var (
	ErrValidation         = errors.New("datos inválidos")
	ErrEmailTaken         = errors.New("El usuario ya existe con este email")
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	ErrUserNotFound       = errors.New("Usuario no encontrado")
	ErrMissingToken       = errors.New("Token de autenticación requerido")
	ErrInvalidToken       = errors.New("Token inválido o expirado")
	ErrStorage            = errors.New("Error interno del servidor")
)

// Validation returns a validation failure carrying a caller-facing reason.
// errors.Is(err, ErrValidation) holds for the result.
func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// Storage wraps a storage-layer error. The underlying detail stays available
// for logging via errors.Unwrap but is never shown to callers.
func Storage(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// Message returns the text safe to put in an API response for err.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		// strip the internal prefix, callers only see the reason
		return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
	case errors.Is(err, ErrStorage):
		return ErrStorage.Error()
	default:
		return err.Error()
	}
}

// StatusFor maps a failure kind to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
