package validation

import "strings"

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field errors, keeping only the first failure per field.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records message for field unless the field already failed.
func (e *Errors) Add(field, message string) {
	for _, existing := range *e {
		if existing.Field == field {
			return
		}
	}
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Merge appends other under the given field prefix ("personal" turns
// "firstName" into "personal.firstName").
func (e *Errors) Merge(prefix string, other Errors) {
	for _, fe := range other {
		field := fe.Field
		if prefix != "" {
			field = prefix + "." + field
		}
		e.Add(field, fe.Message)
	}
}

// Message returns the message recorded for field, or "".
func (e Errors) Message(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Err returns e as an error, or nil when nothing failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
