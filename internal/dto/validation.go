package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var visitTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// RegisterValidations installs custom binding rules on gin's validator
// engine. Call once at startup before the router handles traffic.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("visittime", func(fl validator.FieldLevel) bool {
		return visitTimePattern.MatchString(fl.Field().String())
	})
}
