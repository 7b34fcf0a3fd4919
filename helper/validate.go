package helper

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})

	return v
}

// IsEmail applies the same address check used by the emailaddr tag.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks s against its validate tags. Any missing required field
// yields requiredMsg; otherwise the first failing field decides the message.
func Validate(s any, requiredMsg string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Internal(err)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return Validation(requiredMsg)
		}
	}

	return Validation(fieldMessage(fieldErrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "emailaddr", "email":
		return "Invalid email format"
	case "min":
		if field == "password" {
			return fmt.Sprintf("Password must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Invalid %s value", field)
	case "objectid":
		return fmt.Sprintf("Invalid %s", field)
	default:
		return fmt.Sprintf("Invalid %s", field)
	}
}
