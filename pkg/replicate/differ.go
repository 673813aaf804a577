package replicate

import (
	"fmt"
	"sort"

	"github.com/opencaptable/capsync/pkg/captable"
	"github.com/opencaptable/capsync/pkg/constants"
	"github.com/opencaptable/capsync/pkg/errors"
	"github.com/opencaptable/capsync/pkg/semantic"
)

// Differ handles replication diffing of desired state against an
// actual-state inventory.
type Differ interface {
	// Diff computes the creates, edits, deletes, and conflicts needed to
	// reconcile the actual state with the desired items. It never mutates
	// its inputs and may be called concurrently over independent snapshots.
	Diff(desired []captable.Entity, actual *captable.Inventory) (*Diff, error)
}

// differ is the default implementation of Differ.
type differ struct {
	compareOpts        []semantic.Option
	collectDifferences bool
}

// New creates a Differ with the given options. With no options the
// comparator runs with the standard ignored/deprecated field sets.
func New(opts ...Option) Differ {
	d := &differ{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diff implements the Differ interface.
func (d *differ) Diff(desired []captable.Entity, actual *captable.Inventory) (*Diff, error) {
	diff := &Diff{
		Creates:   []Item{},
		Edits:     []Item{},
		Deletes:   []Item{},
		Conflicts: []Conflict{},
	}
	if actual == nil {
		actual = captable.NewInventory("", "")
	}

	// Desired ids already handled, keyed by canonical type. Doubles as the
	// dedup index (first occurrence wins) and the delete-detection index.
	seen := make(map[captable.EntityType]map[string]struct{})

	for _, entity := range desired {
		if err := validateEntity(entity); err != nil {
			return nil, err
		}

		canonical := captable.Normalize(entity.Type)
		ids, ok := seen[canonical]
		if !ok {
			ids = make(map[string]struct{})
			seen[canonical] = ids
		}
		if _, duplicate := ids[entity.ID]; duplicate {
			// Later duplicates are dropped silently so callers can submit
			// overlapping batches idempotently.
			continue
		}
		ids[entity.ID] = struct{}{}

		if !actual.Has(canonical, entity.ID) {
			d.appendCreate(diff, entity, canonical, actual)
			continue
		}

		if err := d.appendEditIfChanged(diff, entity, canonical, actual); err != nil {
			return nil, err
		}
	}

	appendDeletes(diff, actual, seen)

	diff.Total = len(diff.Creates) + len(diff.Edits) + len(diff.Deletes)
	return diff, nil
}

// appendCreate emits a create for an entity absent from the actual state,
// first surfacing a conflict when its secondary key is already taken. The
// emitted item keeps the original, non-normalized type.
func (d *differ) appendCreate(diff *Diff, entity captable.Entity, canonical captable.EntityType, actual *captable.Inventory) {
	if keyField, keyed := captable.SecondaryKeyField(canonical); keyed && actual.SecondaryKeysByType != nil {
		if key, ok := entity.Payload[keyField].(string); ok && key != "" {
			if actual.HasSecondaryKey(canonical, key) {
				// The id itself is absent from the actual state, so the key
				// must belong to a different entity. The create stays in the
				// result; the conflict records why the ledger will reject it.
				diff.Conflicts = append(diff.Conflicts, Conflict{
					ID:           entity.ID,
					Type:         entity.Type,
					SecondaryKey: key,
					Message:      fmt.Sprintf("%s %q already exists under a different %s", keyField, key, captable.Label(canonical, 1)),
				})
			}
		}
	}

	diff.Creates = append(diff.Creates, Item{
		ID:        entity.ID,
		Type:      entity.Type,
		Operation: OperationCreate,
		Payload:   entity.Payload,
	})
}

// appendEditIfChanged compares the desired payload with the recorded one and
// emits an edit when they are not semantically equal. Edit detection is
// skipped entirely when no payload index was supplied: existence alone is
// not evidence of drift.
func (d *differ) appendEditIfChanged(diff *Diff, entity captable.Entity, canonical captable.EntityType, actual *captable.Inventory) error {
	if !actual.HasPayloads() {
		return nil
	}

	actualPayload, ok := actual.PayloadsByType[canonical][entity.ID]
	if !ok {
		// The id inventory claims this entity exists but the payload index
		// omits it. The caller assembled inconsistent indexes; a silent skip
		// here would hide real drift, so fail fast instead.
		return errors.NewConsistencyError(canonical.String(), entity.ID,
			"id recorded in the inventory but missing from the payload index")
	}

	desiredPayload := normalizeKindField(entity.Payload)
	actualNormalized := normalizeKindField(actualPayload)

	if d.collectDifferences {
		result := semantic.Compare(desiredPayload, actualNormalized, d.compareOpts...)
		if !result.Equal {
			differences := result.Differences
			if len(differences) > constants.MaxDifferencesPerEntity {
				differences = differences[:constants.MaxDifferencesPerEntity]
			}
			diff.Edits = append(diff.Edits, Item{
				ID:          entity.ID,
				Type:        entity.Type,
				Operation:   OperationEdit,
				Payload:     entity.Payload,
				Differences: differences,
			})
		}
		return nil
	}

	if !semantic.Equal(desiredPayload, actualNormalized, d.compareOpts...) {
		diff.Edits = append(diff.Edits, Item{
			ID:        entity.ID,
			Type:      entity.Type,
			Operation: OperationEdit,
			Payload:   entity.Payload,
		})
	}
	return nil
}

// appendDeletes emits a delete for every recorded (type, id) absent from the
// desired index, sorted by (type, id) for consistent output.
func appendDeletes(diff *Diff, actual *captable.Inventory, seen map[captable.EntityType]map[string]struct{}) {
	for entityType, ids := range actual.IDsByType {
		desiredIDs := seen[entityType]
		for id := range ids {
			if _, ok := desiredIDs[id]; ok {
				continue
			}
			diff.Deletes = append(diff.Deletes, Item{
				ID:        id,
				Type:      entityType,
				Operation: OperationDelete,
			})
		}
	}

	sort.Slice(diff.Deletes, func(i, j int) bool {
		if diff.Deletes[i].Type != diff.Deletes[j].Type {
			return diff.Deletes[i].Type < diff.Deletes[j].Type
		}
		return diff.Deletes[i].ID < diff.Deletes[j].ID
	})
}

// validateEntity rejects desired items the engine cannot safely index.
func validateEntity(entity captable.Entity) error {
	if entity.ID == "" {
		return errors.NewSchemaError(entity.Type.String(), "", "id", "id must be a non-empty string")
	}
	if !entity.Type.Valid() {
		return errors.NewSchemaError(entity.Type.String(), entity.ID, "type",
			fmt.Sprintf("entity type %q is not part of the known vocabulary", entity.Type))
	}
	if entity.Payload == nil {
		return errors.NewSchemaError(entity.Type.String(), entity.ID, "payload", "payload must be an object")
	}
	return nil
}

// normalizeKindField returns the payload with its kind discriminant resolved
// to the canonical spelling. The input map is never mutated; a copy is made
// only when normalization actually changes the value.
func normalizeKindField(payload map[string]any) map[string]any {
	kind, ok := payload[captable.KindField].(string)
	if !ok {
		return payload
	}
	normalized := captable.NormalizeKind(kind)
	if normalized == kind {
		return payload
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}
	out[captable.KindField] = normalized
	return out
}
