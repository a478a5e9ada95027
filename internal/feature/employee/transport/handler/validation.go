package handler

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// registerValidators adds the notblank rule to gin's validator engine.
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Warn("gin validator engine is not go-playground/validator; notblank rule unavailable")
			return
		}
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			slog.Error("failed to register notblank validator", "error", err)
		}
	})
}
