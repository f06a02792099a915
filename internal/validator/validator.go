// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"rentbook/internal/models"
)

// PINs are short alphanumeric codes; case is normalized to uppercase before
// storage and lookup, so both cases validate here.
var pinRegex = regexp.MustCompile(`^[a-zA-Z0-9]{4,50}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bill_status", validateBillStatus)
		_ = v.RegisterValidation("renter_pin", validateRenterPIN)
	}
}

func validateBillStatus(fl validator.FieldLevel) bool {
	return models.ValidBillStatus(models.BillStatus(fl.Field().String()))
}

func validateRenterPIN(fl validator.FieldLevel) bool {
	return pinRegex.MatchString(fl.Field().String())
}
