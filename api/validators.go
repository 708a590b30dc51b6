package api

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	flightNumberRe  = regexp.MustCompile(`^(DF|IF)[0-9]{1,4}$`)
	passengerNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z' -]{1,49}$`)
)

// Custom binding validators used by the request DTO tags. Registered once on
// gin's shared validator engine.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("flightnumber", func(fl validator.FieldLevel) bool {
		return flightNumberRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("passengername", func(fl validator.FieldLevel) bool {
		return passengerNameRe.MatchString(fl.Field().String())
	})
}
