package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationMessages maps a failed field/tag pair to the Portuguese message
// shown to clients.
var validationMessages = map[string]string{
	"Name.required":     "Nome é obrigatório",
	"Name.min":          "Nome deve ter no mínimo 2 caracteres",
	"Email.required":    "E-mail é obrigatório",
	"Email.email":       "Formato de e-mail inválido",
	"Password.required": "Senha é obrigatória",
	"Password.min":      "Senha deve ter no mínimo 6 caracteres",
	"City.required":     "Cidade é obrigatória",
	"City.min":          "Cidade é obrigatória",
}

// ValidationMessage flattens a struct validation error into one comma-joined
// Portuguese string, one message per failed field.
func ValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Dados inválidos"
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, "Campo "+strings.ToLower(fe.Field())+" inválido")
	}
	return strings.Join(msgs, ", ")
}
