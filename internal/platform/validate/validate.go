package validate

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"animal-shelter-api/internal/platform/apperr"
)

// Required falla si v está vacío (después de TrimSpace).
func Required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return apperr.Invalid(field, "This field is required.")
	}
	return nil
}

// OneOf valida choices. Vacío se trata como requerido.
func OneOf[T ~string](field string, v T, allowed ...T) error {
	if v == "" {
		return apperr.Invalid(field, "This field is required.")
	}
	if !slices.Contains(allowed, v) {
		return apperr.Invalid(field, fmt.Sprintf("%q is not a valid choice.", string(v)))
	}
	return nil
}

// MaxLen cuenta runas, no bytes.
func MaxLen(field, v string, n int) error {
	if utf8.RuneCountInString(v) > n {
		return apperr.Invalid(field, fmt.Sprintf("Ensure this field has no more than %d characters.", n))
	}
	return nil
}

// First devuelve el primer error no nil.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
