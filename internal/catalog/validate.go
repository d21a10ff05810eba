package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed catalog.schema.json
var schemaJSON []byte

const schemaURL = "https://trophies.local/catalog.schema.json"

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // dotted path, e.g. records[2].name
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // false when the structural fallback was used
}

type document struct {
	Records []Record `json:"records"`
}

// Validate checks every record against the catalog schema.
func (c *Catalog) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}
	records := c.Records()

	schema, err := compileSchema()
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("catalog schema unavailable, using minimal checks: %v", err))
		validateMinimal(records, result)
	} else {
		result.UsedSchema = true
		validateWithSchema(schema, records, result)
	}

	for i, rec := range records {
		if rec.Completed > rec.Total {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("records[%d]: %s has %d completed of %d total", i, rec.Name, rec.Completed, rec.Total))
		}
	}
	return result
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

func validateWithSchema(schema *jsonschema.Schema, records []Record, result *ValidationResult) {
	data, err := json.Marshal(document{Records: records})
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{Err: fmt.Errorf("marshal catalog: %w", err)})
		return
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{Err: fmt.Errorf("unmarshal catalog: %w", err)})
		return
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			result.Errors = append(result.Errors, err)
			return
		}
		collectSchemaErrors(result, ve)
	}
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: pointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func validateMinimal(records []Record, result *ValidationResult) {
	for i, rec := range records {
		path := fmt.Sprintf("records[%d]", i)
		if strings.TrimSpace(rec.Name) == "" || strings.TrimSpace(rec.Name) != rec.Name {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{Path: path + ".name", Err: errors.New("must be a non-empty trimmed string")})
		}
		if rec.Completed < 0 {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{Path: path + ".completed", Err: fmt.Errorf("must be >= 0, got %d", rec.Completed)})
		}
		if rec.Total < 0 {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{Path: path + ".total", Err: fmt.Errorf("must be >= 0, got %d", rec.Total)})
		}
	}
}

// pointerToPath converts "/records/2/name" to "records[2].name".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	path := ""
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
