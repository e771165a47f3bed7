// Package handlers contains one HTTP handler per API operation. Each file
// declares the request/response contracts of its route and the minimal
// service interface it consumes.
package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks request payloads against their struct tags.
var validate = validator.New()

// validationMessage renders the first violation of a payload validation as a
// client-facing message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		if e.Param() != "" {
			return fmt.Sprintf("field %q fails constraint %q=%s", e.Field(), e.Tag(), e.Param())
		}
		return fmt.Sprintf("field %q fails constraint %q", e.Field(), e.Tag())
	}
	return "invalid request body"
}
