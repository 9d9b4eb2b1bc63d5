package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xeipuuv/gojsonschema"
)

// MustCompileSchema compiles a Go-literal JSON schema, panicking on a bad schema.
func MustCompileSchema(schema map[string]interface{}) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid json schema: %v", err))
	}
	return compiled
}

// ValidateJSON checks raw JSON against schema. Unparseable input is an error too.
func ValidateJSON(schema *gojsonschema.Schema, raw []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}

// ValidateRequestBody checks a JSON request body against schema.
// Failures come back as a 400 fiber.Error.
func ValidateRequestBody(body []byte, schema *gojsonschema.Schema) error {
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "request body is required")
	}

	if err := ValidateJSON(schema, body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return nil
}

// ParseAndValidate is ValidateRequestBody followed by decoding into dto.
func ParseAndValidate(body []byte, schema *gojsonschema.Schema, dto interface{}) error {
	if err := ValidateRequestBody(body, schema); err != nil {
		return err
	}

	if err := json.Unmarshal(body, dto); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
	}

	return nil
}
