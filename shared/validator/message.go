package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "%field% is required",
	"gt":       "%field% must be greater than %param%",
	"gte":      "%field% must be greater than or equal to %param%",
	"lte":      "%field% must be less than or equal to %param%",
	"oneof":    "%field% must be one of %param%",
	"uuid":     "%field% must be a valid UUID",
	"date":     "%field% must be a valid date in YYYY-MM-DD format",
	"month":    "%field% must be in YYYY-MM format between 2000-01 and 2100-12",
}

// lengthMessages apply to max and min on strings; on slices the same tags bound the item count.
var lengthMessages = map[string][2]string{
	"max": {"%field% must be at most %param% characters", "%field% must have at most %param% items"},
	"min": {"%field% must be at least %param% characters", "%field% must have at least %param% items"},
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error()
	}

	first := valErrors[0]

	template, ok := messages[first.Tag()]
	if bounds, isLength := lengthMessages[first.Tag()]; isLength {
		template, ok = bounds[0], true
		if first.Kind() == reflect.Slice {
			template = bounds[1]
		}
	}

	if !ok {
		return first.Error()
	}

	return strings.NewReplacer("%field%", fieldPath(first), "%param%", first.Param()).Replace(template)
}

// fieldPath is the JSON path of the field without the root struct, e.g. availability[0].date.
func fieldPath(fieldErr val.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, path, found := strings.Cut(namespace, "."); found {
		return path
	}

	if fieldErr.Field() != "" {
		return fieldErr.Field()
	}

	return "value"
}
