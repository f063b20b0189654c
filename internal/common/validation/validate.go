package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerDate()
	registerDecimalAmount()
	registerNoStartEndSpaces()
}

// ValidateStruct validates the request struct and aggregates every failure
// into a *multierror.Error of ErrorValidateResponse entries.
func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, ErrorValidateResponse{
					Code:    strings.ToUpper(valErr.Tag()),
					Field:   valErr.Field(),
					Message: strings.TrimSpace(fmt.Sprintf("failed on %s %s", valErr.Tag(), valErr.Param())),
				})
			}
		}
	}

	return errs.ErrorOrNil()
}

func registerDate() {
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		input := fl.Field().String()
		pattern := `^\d{4}-\d{2}-\d{2}$`
		return regexp.MustCompile(pattern).MatchString(input)
	})
}

// decimalAmount accepts any string decimal.NewFromString can parse. Split
// amounts travel as strings so no float precision is lost on the wire.
func registerDecimalAmount() {
	validate.RegisterValidation("decimalAmount", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(fl.Field().String())
		return err == nil
	})
}

func registerNoStartEndSpaces() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}
