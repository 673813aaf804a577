// Package snapshot loads desired-state manifests and actual-state snapshot
// documents from files, standing in for the ledger query collaborator when
// capsync runs from the command line. Building the inventory index is where
// the hard-error policy for unresolvable types applies: a record this loader
// cannot index would be invisible to delete-detection, so it fails the whole
// load instead of dropping the record.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/opencaptable/capsync/pkg/captable"
	"github.com/opencaptable/capsync/pkg/constants"
	"github.com/opencaptable/capsync/pkg/errors"
)

// Manifest is the desired-state document shape.
type Manifest struct {
	Entities []captable.Entity `json:"entities" yaml:"entities"`
}

// Document is the actual-state snapshot shape produced by the ledger query
// collaborator.
type Document struct {
	ContractAnchor string   `json:"contract_anchor"`
	ParentAnchor   string   `json:"parent_anchor"`
	Records        []Record `json:"records"`
}

// Record is one recorded entity in a snapshot listing. Category and subtype
// use the ledger's own vocabulary and are resolved onto canonical entity
// types while indexing. Payload is optional; a snapshot without payloads
// still supports create/delete detection.
type Record struct {
	Category string         `json:"category"`
	Subtype  string         `json:"subtype,omitempty"`
	ID       string         `json:"id"`
	Payload  map[string]any `json:"payload,omitempty"`
}

// LoadManifest reads a desired-state manifest from a YAML or JSON file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if len(data) > constants.MaxManifestBytes {
		return nil, errors.NewValidationError("manifest", path,
			fmt.Sprintf("file exceeds the %d byte manifest limit", constants.MaxManifestBytes))
	}

	var manifest Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &manifest); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	default:
		return nil, errors.NewParseError("manifest", path, "unsupported file extension (want .yaml, .yml, or .json)", nil)
	}

	return &manifest, nil
}

// LoadInventory reads an actual-state snapshot document from a JSON file and
// builds the inventory index.
func LoadInventory(path string) (*captable.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if len(data) > constants.MaxSnapshotBytes {
		return nil, errors.NewValidationError("snapshot", path,
			fmt.Sprintf("file exceeds the %d byte snapshot limit", constants.MaxSnapshotBytes))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	return BuildInventory(&doc)
}

// BuildInventory indexes a snapshot document into an Inventory. Every record
// must resolve to a canonical entity type; unresolvable categories, subtypes,
// or payload kind discriminants are hard errors, never silent drops. The
// payload index is populated only when at least one record carries a payload,
// and secondary keys are collected from payloads of uniqueness-constrained
// types.
func BuildInventory(doc *Document) (*captable.Inventory, error) {
	inv := captable.NewInventory(doc.ContractAnchor, doc.ParentAnchor)

	for _, record := range doc.Records {
		if record.ID == "" {
			return nil, errors.NewSchemaError(record.Category, "", "id", "record id must be a non-empty string")
		}

		entityType, ok := captable.Resolve(record.Category, record.Subtype)
		if !ok {
			return nil, errors.NewUnsupportedTypeError(record.Category, record.Subtype, record.ID)
		}

		inv.AddID(entityType, record.ID)

		if record.Payload == nil {
			continue
		}
		if kind, ok := record.Payload[captable.KindField].(string); ok && kind != "" {
			if _, known := captable.ResolveKind(kind); !known {
				return nil, errors.NewUnsupportedTypeError(record.Category, kind, record.ID)
			}
		}
		inv.AddPayload(entityType, record.ID, record.Payload)

		if keyField, keyed := captable.SecondaryKeyField(entityType); keyed {
			if key, ok := record.Payload[keyField].(string); ok && key != "" {
				inv.AddSecondaryKey(entityType, key)
			}
		}
	}

	return inv, nil
}
