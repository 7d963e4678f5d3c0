package application

import (
	"regexp"
	"strings"

	"github.com/davidmtz/usuarios-api/pkg/apperrors"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRegistration runs the ordered validation chain. The first violation
// wins; the order and the messages are part of the API contract.
func validateRegistration(in RegisterInput) error {
	if len([]rune(strings.TrimSpace(in.Nombre))) < 2 {
		return apperrors.Validation("El nombre debe tener al menos 2 caracteres")
	}
	if in.Email == "" || !emailRe.MatchString(in.Email) {
		return apperrors.Validation("El email no es válido")
	}
	if len(in.Password) < 6 {
		return apperrors.Validation("La contraseña debe tener al menos 6 caracteres")
	}
	if len(strings.TrimSpace(in.Telefono)) < 8 {
		return apperrors.Validation("El teléfono debe tener al menos 8 dígitos")
	}
	if in.Edad < 1 || in.Edad > 120 {
		return apperrors.Validation("La edad debe estar entre 1 y 120 años")
	}
	return nil
}
