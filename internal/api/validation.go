package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Issues converts a gin binding error into per-field issues using the
// provided message table. Keys are looked up as "Field.tag" first and then
// "Field", so a dto can override the message for a single failing rule.
// A non-validator error (malformed JSON, wrong types) yields a single
// generic issue.
func Issues(err error, messages map[string]string) []FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{Field: "body", Message: "Entrada no válida"}}
	}

	out := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[fe.Field()]
		}
		if !ok {
			msg = "Entrada no válida"
		}
		out = append(out, FieldIssue{Field: fe.Field(), Message: msg})
	}
	return out
}
