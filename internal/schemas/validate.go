// Package schemas validates collector payloads against the RawRecord JSON
// Schema before they enter the pipeline.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed raw_record.schema.json
var rawRecordSchema string

// ValidationError carries the field-level problems of one document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation problem at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("raw record validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateRawRecord validates one JSON document against the RawRecord
// schema. A nil return means the document is well-formed; a
// *ValidationError return lists the offending fields.
func ValidateRawRecord(document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(rawRecordSchema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("failed to validate raw record: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
