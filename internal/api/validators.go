package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"year-planner/model"
)

// The "month" rule backs the binding tags on month columns: only the twelve
// full month names pass.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
			return model.IsMonthName(fl.Field().String())
		})
	}
}
