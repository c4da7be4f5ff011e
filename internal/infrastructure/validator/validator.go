package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ramentaro/ramen-taro-api/internal/tagging"
)

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("slugfmt", slugFormatFL)
	}
}

// slugFormatFL accepts a value that is already in canonical slug form,
// i.e. re-slugifying it is a no-op.
func slugFormatFL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return tagging.Slugify(s) == s
}
