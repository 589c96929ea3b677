package handlers

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TurnosService/pkg/types"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate проверяет DTO по тегам validate
func Validate(v interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// hhmm: "HH:MM", допускается "24:00" как конец дня
		_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := types.NewTimeStringFromString(fl.Field().String())
			return err == nil
		})
	})
	return validate.Struct(v)
}
