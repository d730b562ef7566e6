package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"animal-shelter-api/internal/platform/apperr"
	"animal-shelter-api/internal/platform/logger"
)

// maxBody limita el cuerpo de los requests JSON (1MB).
const maxBody = 1 << 20

// Write es el writeJSON que antes estaba duplicado en cada handler.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode lee el body JSON en dst. Body vacío o inválido => ValidationError sobre "non_field_errors".
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("non_field_errors", "request body is required")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.Invalid(typeErr.Field, "invalid type, expected "+typeErr.Type.String())
		}
		return apperr.Invalid("non_field_errors", "invalid json")
	}
	return nil
}

// Detail es la forma de error genérica {"detail": "..."}.
type Detail struct {
	Detail string `json:"detail"`
}

// WriteError traduce errores de dominio a status + body.
// log puede ser nil.
func WriteError(w http.ResponseWriter, log logger.Logger, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		field := ve.Field
		if field == "" {
			field = "non_field_errors"
		}
		Write(w, http.StatusBadRequest, map[string][]string{field: {ve.Message}})
		return
	}

	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		Write(w, http.StatusUnauthorized, Detail{Detail: "Authentication credentials were not provided or are invalid."})
	case errors.Is(err, apperr.ErrForbidden):
		Write(w, http.StatusForbidden, Detail{Detail: "You do not have permission to perform this action."})
	case errors.Is(err, apperr.ErrNotFound):
		Write(w, http.StatusNotFound, Detail{Detail: "Not found."})
	case errors.Is(err, apperr.ErrConflict):
		Write(w, http.StatusConflict, Detail{Detail: err.Error()})
	default:
		if log != nil {
			log.Error("unhandled error", map[string]any{"error": err})
		}
		Write(w, http.StatusInternalServerError, Detail{Detail: "internal error"})
	}
}
