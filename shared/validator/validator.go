package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"stayhub/shared/failure"
	"stayhub/shared/period"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func validateDate(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, valid := period.ParseDate(value)

	return valid
}

func validateMonth(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, _, valid := period.ParseMonth(value)

	return valid
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	for tag, fn := range map[string]val.Func{"date": validateDate, "month": validateMonth} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and validates it. Both failures are 400s; the message
// names the first offending field by its JSON path, e.g. availability[2].isAvailable.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateID rejects ids that are not UUIDs, so they never reach storage.
func ValidateID(id string) error {
	if validate.Var(id, "required,uuid") != nil {
		return failure.InvalidID
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
