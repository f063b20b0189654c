package validation

import "fmt"

// ErrorValidateResponse is one structured validation failure; a request can
// carry several, aggregated through multierror, so a UI shows all problems at
// once.
type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	return fmt.Sprintf("field: %s, code: %s, message: %s", e.Field, e.Code, e.Message)
}
