package validator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	CalendarDateLayout = "2006-01-02"
	TimeOfDayLayout    = "15:04"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("calendar_date", validateCalendarDate)
	validator.RegisterValidation("time_of_day", validateTimeOfDay)
	validator.RegisterValidation("positive_amount", validatePositiveAmount)

	return validator
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(CalendarDateLayout, fl.Field().String())
	return err == nil
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	_, err := time.Parse(TimeOfDayLayout, fl.Field().String())
	return err == nil
}

func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return amount.IsPositive()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s item(s)", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid id"
	case "calendar_date":
		return "must be a calendar date in YYYY-MM-DD format"
	case "time_of_day":
		return "must be a time of day in HH:MM format"
	case "positive_amount":
		return "must be a positive amount"
	default:
		return "is invalid"
	}
}
