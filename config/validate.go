package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/secretsanta/output"
)

// validate is shared by every Config; validator caches struct metadata.
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their YAML keys.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("printorder", validatePrintOrder)
}

// validatePrintOrder accepts the printing orders known to package output.
func validatePrintOrder(fl validator.FieldLevel) bool {
	_, err := output.ParseOrder(fl.Field().String())
	return err == nil
}

// Validate checks the struct tags and reports every violation at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	var field = strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " needs at least " + fe.Param() + " entry"
	case "gte":
		return fmt.Sprintf("%s must be ≥ %s, got %v", field, fe.Param(), fe.Value())
	case "printorder":
		return fmt.Sprintf("%s must be one of %v, got %q", field, output.Orders, fe.Value())
	default:
		return fmt.Sprintf("%s fails %q", field, fe.Tag())
	}
}
