package api

import (
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"geoweather.app/pkg/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator engine.
// Field errors report the query parameter name instead of the struct field name.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Warn("Unexpected binding validator engine, custom validators not registered")
			return
		}

		if err := v.RegisterValidation("isodate", validateISODate); err != nil {
			slog.Warn("Failed to register isodate validator", "error", err)
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
}

func validateISODate(fl validator.FieldLevel) bool {
	return validation.IsISODate(fl.Field().String())
}
