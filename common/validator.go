package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the payload against its validate tags and returns the
// accumulated validation errors, if any.
func ValidateStruct(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return err.(validator.ValidationErrors)
	}
	return nil
}
