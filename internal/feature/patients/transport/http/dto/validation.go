package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// personNameRe matches display names: letters, spaces and periods only.
var personNameRe = regexp.MustCompile(`^[a-zA-Z.\s]+$`)

// RegisterValidations installs the custom binding rules on Gin's validator
// engine. It must be called once at startup before any request is served:
//   - "personname" enforces the display-name character set
//   - struct field names in validation errors become their json tag names
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})
}

// FieldErrors converts a binding error into the field→messages map of the
// 422 response envelope. The second return value is false when err is not a
// validation error (e.g. malformed JSON), in which case the caller should
// treat the request as unparseable instead.
func FieldErrors(err error) (map[string][]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		out[field] = append(out[field], messageFor(field, fe))
	}
	return out, true
}

// IDNoTakenErrors is the field error map for a duplicate identity-document
// number, detected against the datastore rather than the request body alone.
func IDNoTakenErrors() map[string][]string {
	return map[string][]string{"id_no": {"The id no has already been taken."}}
}

// messageFor renders a human-readable message for a single rule violation.
func messageFor(field string, fe validator.FieldError) string {
	label := strings.ReplaceAll(field, "_", " ")
	switch fe.Tag() {
	case "required", "min":
		return fmt.Sprintf("The %s field is required.", label)
	case "personname":
		return fmt.Sprintf("The %s field format is invalid.", label)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", label)
	case "datetime":
		return fmt.Sprintf("The %s field must be a valid date in YYYY-MM-DD format.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}
