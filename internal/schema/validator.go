// Package schema validates weight-table override files against embedded
// CUE schemas before the values are allowed anywhere near the scoring
// engine.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a single schema violation.
type ValidationError struct {
	Field    string
	Message  string
	Severity string // error, warning
}

// Validator handles CUE validation of override files.
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a Validator with all embedded schemas compiled.
func NewValidator() *Validator {
	v := &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
	v.loadSchemas()
	return v
}

// loadSchemas compiles every .cue file in the embedded schemas directory.
// Schemas that fail to compile are skipped rather than failing startup.
func (v *Validator) loadSchemas() {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			continue
		}
		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if inst.Err() != nil {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(".cue")]
		v.schemas[name] = inst.Value()
	}
}

// ValidateWeights validates a parsed weights override against the weights
// schema. A nil or empty slice means the data is acceptable.
func (v *Validator) ValidateWeights(data map[string]any) []ValidationError {
	schema, ok := v.schemas["weights"]
	if !ok {
		return nil
	}
	return v.validateAgainstSchema(schema, data, "Weights")
}

// validateAgainstSchema unifies data with the named definition inside the
// compiled schema and reports any conflicts.
func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, defName string) []ValidationError {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return []ValidationError{{
			Message:  fmt.Sprintf("cannot encode data: %v", encErr),
			Severity: "error",
		}}
	}

	def := schema.LookupPath(cue.ParsePath("#" + defName))
	if !def.Exists() {
		return nil
	}

	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return extractErrors(err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err)
	}

	return nil
}

func extractErrors(err error) []ValidationError {
	return []ValidationError{{
		Message:  fmt.Sprintf("schema validation failed: %v", err),
		Severity: "error",
	}}
}

var (
	defaultValidator *Validator
	defaultOnce      sync.Once
)

// ValidateWeights validates data using a shared process-wide validator.
func ValidateWeights(data map[string]any) []ValidationError {
	defaultOnce.Do(func() {
		defaultValidator = NewValidator()
	})
	return defaultValidator.ValidateWeights(data)
}
