// Package schema validates desired-state manifest documents against the
// capsync manifest JSON Schema before they reach the diff engine, so that
// malformed files fail with field-level messages instead of schema errors
// deep inside a reconciliation run.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/opencaptable/capsync/pkg/errors"
)

//go:embed manifest.schema.json
var manifestSchema []byte

const schemaURL = "manifest.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// manifest returns the compiled manifest schema, compiling it once.
func manifest() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(manifestSchema))
		if err != nil {
			compileErr = errors.WrapParse("json", schemaURL, err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, doc); err != nil {
			compileErr = errors.NewConfigError("schema", "adding manifest schema resource", err)
			return
		}
		compiled, compileErr = compiler.Compile(schemaURL)
	})
	return compiled, compileErr
}

// ValidateManifest validates a decoded manifest document. The document is
// round-tripped through JSON so that YAML-decoded values carry the numeric
// types the validator expects.
func ValidateManifest(doc any) error {
	sch, err := manifest()
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return errors.WrapParse("json", "", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return errors.WrapParse("json", "", err)
	}

	if err := sch.Validate(instance); err != nil {
		return errors.NewValidationError("", nil, err.Error())
	}
	return nil
}
