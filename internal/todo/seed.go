package todo

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/jsonc"
)

// SeedSchema is the JSON Schema applied to seed data when no schema file is
// configured.
//
//go:embed seed.schema.json
var SeedSchema []byte

const embeddedSchemaURL = "https://github.com/nibzard/todolist-go/seed.schema.json"

// Seed is the payload returned by a data source: {"data": [...]}.
type Seed struct {
	Data []Item `json:"data" yaml:"data"`
}

// ValidationError ties a validation failure to a location in the seed,
// written as a dotted path such as "data[2].id".
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions selects the schema used by Validate.
type ValidationOptions struct {
	// SchemaPath is the path to a JSON Schema file. If empty, the embedded
	// SeedSchema is used.
	SchemaPath string
}

// ValidationResult is the outcome of Validate. UsedSchema is false when the
// structural fallback ran instead of JSON Schema.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool
}

// LoadSeed reads and parses a seed file from path.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a seed payload.
func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := json.Unmarshal(jsonc.ToJSON(data), &s); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &s, nil
}

// Save writes the seed file to path with 2-space indentation.
func (s *Seed) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seed data: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}
	return nil
}

// Validate checks the in-memory seed against the schema named in opts, or
// the embedded SeedSchema. The seed is re-encoded first, so fields a file
// omitted are present with zero values; use ValidateBytes to check a
// document as written. When no schema can be compiled it falls back to
// structural checks and says so in Warnings. Id uniqueness is checked either
// way since JSON Schema cannot express it.
func (s *Seed) Validate(opts ValidationOptions) *ValidationResult {
	doc, err := json.Marshal(s)
	if err != nil {
		result := &ValidationResult{}
		result.fail("", fmt.Errorf("encode seed for validation: %w", err))
		return result
	}
	return s.validate(doc, opts)
}

// ValidateBytes decodes a seed document and validates it as written, so
// missing fields and unknown keys are reported. A document that does not
// decode at all is returned as an error.
func ValidateBytes(data []byte, opts ValidationOptions) (*Seed, *ValidationResult, error) {
	doc := jsonc.ToJSON(data)
	s, err := ParseSeed(doc)
	if err != nil {
		return nil, nil, err
	}
	return s, s.validate(doc, opts), nil
}

// ValidateFile reads the seed file at path and validates it with ValidateBytes.
func ValidateFile(path string, opts ValidationOptions) (*Seed, *ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read seed file: %w", err)
	}
	return ValidateBytes(data, opts)
}

func (s *Seed) validate(doc []byte, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{Valid: true}

	schema, err := compileSchema(opts.SchemaPath)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error(), "falling back to minimal checks")
		s.checkStructure(result)
	} else {
		result.UsedSchema = true
		checkSchema(result, schema, doc)
	}

	s.checkUniqueIDs(result)
	return result
}

func (r *ValidationResult) fail(path string, err error) {
	r.Valid = false
	if path == "" {
		r.Errors = append(r.Errors, err)
		return
	}
	r.Errors = append(r.Errors, &ValidationError{Path: path, Err: err})
}

var errMissingField = errors.New("missing required field")

func (s *Seed) checkStructure(result *ValidationResult) {
	if s.Data == nil {
		result.fail("data", errMissingField)
		return
	}
	for i, item := range s.Data {
		if item.ID == "" {
			result.fail(fmt.Sprintf("data[%d].id", i), errMissingField)
		}
	}
}

func (s *Seed) checkUniqueIDs(result *ValidationResult) {
	seen := make(map[string]int, len(s.Data))
	for i, item := range s.Data {
		if item.ID == "" {
			continue
		}
		if j, dup := seen[item.ID]; dup {
			result.fail(fmt.Sprintf("data[%d].id", i), fmt.Errorf("duplicate id %q (first used by data[%d])", item.ID, j))
			continue
		}
		seen[item.ID] = i
	}
}

func checkSchema(result *ValidationResult, schema *jsonschema.Schema, doc []byte) {
	// The validator wants the generic decoded form, not our structs.
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		result.fail("", fmt.Errorf("decode seed for validation: %w", err))
		return
	}

	err := schema.Validate(v)
	if err == nil {
		return
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		result.fail("", err)
		return
	}
	for _, leaf := range schemaLeaves(verr, nil) {
		result.fail(jsonPointerToPath(leaf.InstanceLocation), errors.New(leaf.Message))
	}
}

// schemaLeaves flattens a validation error tree into its innermost causes,
// which carry the useful messages.
func schemaLeaves(err *jsonschema.ValidationError, out []*jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return append(out, err)
	}
	for _, cause := range err.Causes {
		out = schemaLeaves(cause, out)
	}
	return out
}

// compileSchema compiles the schema file at path, or the embedded schema
// when path is empty.
func compileSchema(path string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	url := embeddedSchemaURL
	if path == "" {
		if err := compiler.AddResource(url, bytes.NewReader(SeedSchema)); err != nil {
			return nil, fmt.Errorf("embedded schema: %w", err)
		}
	} else {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("schema path %s: %w", path, err)
		}
		if _, err := os.Stat(abs); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("schema file not found: %s", abs)
			}
			return nil, fmt.Errorf("read schema file: %w", err)
		}
		url = abs
	}

	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// jsonPointerToPath converts "/data/0/id" into "data[0].id".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
