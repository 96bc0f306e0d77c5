package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/passportpals/passportpals-backend/internal/usecase/trip"
)

// registerValidations hooks custom rules into gin's binding validator.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterStructValidation(validateTripDates, trip.CreateTripRequest{})
}

// validateTripDates rejects stay requests that end on or before their start.
func validateTripDates(sl validator.StructLevel) {
	req := sl.Current().Interface().(trip.CreateTripRequest)
	if !req.EndDate.After(req.StartDate) {
		sl.ReportError(req.EndDate, "EndDate", "end_date", "gtfield", "StartDate")
	}
}
