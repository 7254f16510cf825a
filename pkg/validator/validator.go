package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (fe FieldError) String() string {
	if fe.Param != "" {
		return fmt.Sprintf("%s failed on %s=%s", fe.Field, fe.Tag, fe.Param)
	}
	return fmt.Sprintf("%s failed on %s", fe.Field, fe.Tag)
}

// ValidationError reports every field of an input struct that failed its
// declared constraints.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fe.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = validator.New()

// Struct validates data against its `validate` tags. It returns nil or a
// *ValidationError.
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	verr := &ValidationError{}
	for _, fe := range err.(validator.ValidationErrors) {
		verr.Fields = append(verr.Fields, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return verr
}

// Fieldf builds a single-field ValidationError for checks that cannot be
// expressed as struct tags (cross-field rules and the like).
func Fieldf(field, tag string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Tag: tag}}}
}
