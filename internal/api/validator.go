// File: internal/api/validator.go
package api

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator for Echo
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate calls the underlying validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
