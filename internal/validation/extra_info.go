// Package validation checks participant extra info against an optional
// JSON schema supplied by the operator.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
)

// ExtraInfoSchema is a compiled schema for participant extra info
type ExtraInfoSchema struct {
	path   string
	schema *jsonschema.Schema
}

// LoadExtraInfoSchema reads and compiles the schema file at path
func LoadExtraInfoSchema(path string) (*ExtraInfoSchema, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgResolveSchema, path, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgReadSchema, path, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgParseSchema, path, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(absPath, doc); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgCompileSchema, path, err)
	}
	schema, err := compiler.Compile(absPath)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgCompileSchema, path, err)
	}

	return &ExtraInfoSchema{path: path, schema: schema}, nil
}

// Path returns the file the schema was loaded from
func (s *ExtraInfoSchema) Path() string {
	return s.path
}

// ValidateExtraInfo reports every schema violation in info as one
// domain.ErrInvalidExtraInfo error.
func (s *ExtraInfoSchema) ValidateExtraInfo(info map[string]interface{}) error {
	// The schema sees a plain JSON object, never a typed nil map.
	var value interface{} = map[string]interface{}{}
	if info != nil {
		value = info
	}

	err := s.schema.Validate(value)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidExtraInfo, err)
	}

	var problems []string
	collectErrors(verr, &problems)
	return fmt.Errorf("%w: %s", domain.ErrInvalidExtraInfo, strings.Join(problems, "; "))
}

// collectErrors walks the cause tree, keeping leaf violations only
func collectErrors(err *jsonschema.ValidationError, problems *[]string) {
	if len(err.Causes) == 0 {
		*problems = append(*problems, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, problems)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")

	keyword := "schema"
	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			keyword = strings.Join(path, ".")
		}
	}
	return fmt.Sprintf(ErrFmtViolation, location, keyword)
}
