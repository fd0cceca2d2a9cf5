package handlers

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// RegisterCustomValidators installs binding rules used by the DTOs. Must be
// called once before routes are registered.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// ratingmonth: a performance month in YYYY-MM form.
	_ = v.RegisterValidation("ratingmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.RatingMonthLayout, fl.Field().String())
		return err == nil
	})
}
