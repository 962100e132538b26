package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "github.com/prato-inc/prato/internal/domain/billing/valueobjects"
)

// Custom binding validators shared by the handler request structs. Registered
// once against gin's binding engine.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("rulescope", func(fl validator.FieldLevel) bool {
		_, err := vo.NewRuleScope(fl.Field().String())
		return err == nil
	})
}
