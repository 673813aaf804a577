// Package replicate computes the minimal set of create/edit/delete
// operations needed to bring a ledger's actual state into agreement with a
// desired-state entity collection, surfacing secondary-key conflicts along
// the way.
package replicate

import (
	"fmt"
	"strings"

	"github.com/opencaptable/capsync/pkg/captable"
	"github.com/opencaptable/capsync/pkg/semantic"
)

// Operation is the kind of replication write an item represents.
type Operation string

const (
	// OperationCreate indicates the entity must be created in the ledger.
	OperationCreate Operation = "create"
	// OperationEdit indicates the recorded entity differs and must be updated.
	OperationEdit Operation = "edit"
	// OperationDelete indicates the recorded entity is absent from desired state.
	OperationDelete Operation = "delete"
)

// Item is one replication operation. Items are produced only by the diff
// engine, never supplied by callers. The Type field keeps the original,
// possibly alias, tag the caller submitted so downstream writers use the
// caller's vocabulary.
type Item struct {
	ID        string              `json:"id"`
	Type      captable.EntityType `json:"type"`
	Operation Operation           `json:"operation"`
	Payload   map[string]any      `json:"payload,omitempty"`

	// Differences carries the field-path divergence trail for edits, when
	// the differ was configured to collect it. Diagnostics only; truncated
	// to a fixed cap per entity.
	Differences []semantic.Difference `json:"differences,omitempty"`
}

// Conflict signals a proposed create whose secondary key already exists in
// the ledger under a different id. Conflicts are data, not errors: the
// corresponding create is still emitted, because it is structurally valid
// relative to its own id, and both facts are surfaced to the caller.
type Conflict struct {
	ID           string              `json:"id"`
	Type         captable.EntityType `json:"type"`
	SecondaryKey string              `json:"secondary_key"`
	Message      string              `json:"message"`
}

// Diff is the computed reconciliation result. Within creates and edits the
// relative order matches desired-item input order; deletes are sorted by
// (type, id) for consistent output. The engine imposes no execution order on
// the caller.
type Diff struct {
	Creates   []Item     `json:"creates"`
	Edits     []Item     `json:"edits"`
	Deletes   []Item     `json:"deletes"`
	Conflicts []Conflict `json:"conflicts"`

	// Total counts creates, edits, and deletes. Conflicts are counted
	// separately: a conflicted create is still counted once under creates.
	Total int `json:"total"`
}

// HasChanges returns true if the diff contains any operations.
func (d *Diff) HasChanges() bool {
	return d.Total > 0
}

// IsEmpty returns true if the diff contains no operations and no conflicts.
func (d *Diff) IsEmpty() bool {
	return d.Total == 0 && len(d.Conflicts) == 0
}

// String returns a human-readable summary of the diff.
func (d *Diff) String() string {
	if d.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	if len(d.Creates) > 0 {
		parts = append(parts, fmt.Sprintf("%d to create", len(d.Creates)))
	}
	if len(d.Edits) > 0 {
		parts = append(parts, fmt.Sprintf("%d to edit", len(d.Edits)))
	}
	if len(d.Deletes) > 0 {
		parts = append(parts, fmt.Sprintf("%d to delete", len(d.Deletes)))
	}
	summary := fmt.Sprintf("Diff: %s (total: %d)", strings.Join(parts, ", "), d.Total)
	if len(d.Conflicts) > 0 {
		summary += fmt.Sprintf("; %d conflicts", len(d.Conflicts))
	}
	return summary
}

// Print outputs a detailed, human-readable view of the diff.
func (d *Diff) Print() {
	fmt.Println(d.String())
	fmt.Println(strings.Repeat("─", 80))

	printItems("➕ To create", d.Creates)
	printItems("🔄 To edit", d.Edits)
	printItems("⚠️  To delete", d.Deletes)

	if len(d.Conflicts) > 0 {
		fmt.Printf("\n❗ Conflicts (%d):\n", len(d.Conflicts))
		for _, conflict := range d.Conflicts {
			fmt.Printf("  • %s %s: %s\n", captable.Label(conflict.Type, 1), conflict.ID, conflict.Message)
		}
	}
}

// printItems prints one operation bucket grouped per entity.
func printItems(heading string, items []Item) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s (%d):\n", heading, len(items))
	for _, item := range items {
		fmt.Printf("  • %s %s\n", captable.Label(item.Type, 1), item.ID)
		for _, diff := range item.Differences {
			fmt.Printf("      %s\n", diff)
		}
	}
}
