package handlers

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// loginIDPattern: a letter followed by 3 to 19 letters, digits or underscores.
var loginIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{3,19}$`)

var registerValidatorsOnce sync.Once

// RegisterCustomValidators adds the project's binding rules to gin's validator.
func RegisterCustomValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("loginid", validateLoginID)
		}
	})
}

func validateLoginID(fl validator.FieldLevel) bool {
	return loginIDPattern.MatchString(fl.Field().String())
}
