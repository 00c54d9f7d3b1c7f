// Package validation checks request bodies before they reach a service.
package validation

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Required returns one "is required" error per field name.
func Required(fields []string) []FieldError {
	errs := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		errs = append(errs, FieldError{Field: f, Message: f + " is required"})
	}
	return errs
}
