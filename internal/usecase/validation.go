package usecase

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/pkg/utils"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// checkable is implemented by payloads with rules struct tags cannot express
type checkable interface {
	Check() []entity.FieldError
}

// PayloadValidator validates composite save payloads and reports every failing field
type PayloadValidator struct {
	validate *validator.Validate
}

// NewPayloadValidator creates a validator with the catalog rules registered
func NewPayloadValidator() *PayloadValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// Nullable payload types validate as their database value; nil means absent.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if valuer, ok := field.Interface().(driver.Valuer); ok {
			val, err := valuer.Value()
			if err != nil {
				return nil
			}
			return val
		}
		return nil
	}, utils.NullString{}, utils.NullFloat{}, utils.NullInt{})

	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return &PayloadValidator{validate: v}
}

// Validate returns a *entity.ValidationError listing every problem, or nil
func (pv *PayloadValidator) Validate(payload interface{}) error {
	var fields []entity.FieldError
	seen := map[string]bool{}

	if c, ok := payload.(checkable); ok {
		for _, fe := range c.Check() {
			fields = append(fields, fe)
			seen[fe.Field] = true
		}
	}

	if err := pv.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("failed to validate payload: %w", err)
		}
		for _, fe := range verrs {
			field := fieldPath(fe.Namespace())
			if seen[field] {
				continue
			}
			seen[field] = true
			fields = append(fields, entity.FieldError{Field: field, Message: message(fe)})
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &entity.ValidationError{Fields: fields}
}

// fieldPath drops the struct name: "TourPayload.departures[0].start_date" -> "departures[0].start_date"
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "slug":
		return "must contain only lowercase letters, digits and dashes"
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}
