package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error

	validateOnce sync.Once
	validate     *validator.Validate
)

// FieldError is a single validation failure at a field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failure found in a document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	msgs := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeSchema))
	})
	return schema, schemaErr
}

func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		err := validate.RegisterValidation("section", func(fl validator.FieldLevel) bool {
			return Section(fl.Field().String()).Valid()
		})
		if err != nil {
			panic(fmt.Sprintf("model: register section validation: %v", err))
		}
	})
	return validate
}

// ValidateData validates typed resume data against the resume schema.
func ValidateData(d *ResumeData) error {
	return validateLoader(gojsonschema.NewGoLoader(d))
}

func validateLoader(doc gojsonschema.JSONLoader) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("load resume schema: %w", err)
	}
	res, err := s.Validate(doc)
	if err != nil {
		return fmt.Errorf("validate resume: %w", err)
	}
	if res.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, e := range res.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: e.Field(), Message: e.Description()})
	}
	return ve
}

// ValidateSettings checks presentation settings with struct tags.
func ValidateSettings(s *ResumeSettings) error {
	err := settingsValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   "settings." + strings.TrimPrefix(fe.Namespace(), "ResumeSettings."),
			Message: fmt.Sprintf("failed %q check", fe.Tag()),
		})
	}
	return ve
}

// Validate runs both the schema and the settings checks and merges their
// failures into one ValidationError.
func (doc *Document) Validate() error {
	merged := &ValidationError{}
	for _, err := range []error{ValidateData(&doc.Data), ValidateSettings(&doc.Settings)} {
		if err == nil {
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		merged.Errors = append(merged.Errors, ve.Errors...)
	}
	if len(merged.Errors) == 0 {
		return nil
	}
	return merged
}
