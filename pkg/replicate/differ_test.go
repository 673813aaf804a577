package replicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencaptable/capsync/pkg/captable"
	"github.com/opencaptable/capsync/pkg/errors"
)

func stakeholder(id, name string) captable.Entity {
	return captable.Entity{
		ID:   id,
		Type: captable.EntityTypeStakeholder,
		Payload: map[string]any{
			"object_type": "STAKEHOLDER",
			"name":        map[string]any{"legal_name": name},
		},
	}
}

func stockIssuance(id, securityID string) captable.Entity {
	return captable.Entity{
		ID:   id,
		Type: captable.EntityTypeStockIssuance,
		Payload: map[string]any{
			"object_type": "TX_STOCK_ISSUANCE",
			"security_id": securityID,
			"quantity":    "100",
		},
	}
}

func TestDiffEmptyInputs(t *testing.T) {
	diff, err := New().Diff(nil, nil)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())
	assert.False(t, diff.HasChanges())
	assert.Equal(t, 0, diff.Total)
}

func TestDiffCreatesForAbsentEntities(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")

	diff, err := New().Diff([]captable.Entity{
		stakeholder("S1", "Alice"),
		stockIssuance("I1", "SEC-1"),
	}, actual)
	require.NoError(t, err)

	require.Len(t, diff.Creates, 2)
	assert.Empty(t, diff.Edits)
	assert.Empty(t, diff.Deletes)
	assert.Empty(t, diff.Conflicts)
	assert.Equal(t, 2, diff.Total)

	assert.Equal(t, "S1", diff.Creates[0].ID)
	assert.Equal(t, OperationCreate, diff.Creates[0].Operation)
	assert.NotNil(t, diff.Creates[0].Payload)
}

func TestDiffDedupFirstWins(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")

	first := stakeholder("S1", "Alice")
	second := stakeholder("S1", "Bob")

	diff, err := New().Diff([]captable.Entity{first, second}, actual)
	require.NoError(t, err)

	require.Len(t, diff.Creates, 1)
	assert.Equal(t, first.Payload, diff.Creates[0].Payload, "first occurrence wins")
}

func TestDiffDedupSpansAliases(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")

	canonical := captable.Entity{
		ID:      "P1",
		Type:    captable.EntityTypeEquityCompensationIssuance,
		Payload: map[string]any{"object_type": "TX_EQUITY_COMPENSATION_ISSUANCE"},
	}
	alias := captable.Entity{
		ID:      "P1",
		Type:    captable.EntityTypePlanSecurityIssuance,
		Payload: map[string]any{"object_type": "TX_PLAN_SECURITY_ISSUANCE"},
	}

	diff, err := New().Diff([]captable.Entity{canonical, alias}, actual)
	require.NoError(t, err)
	require.Len(t, diff.Creates, 1, "the alias pair shares one identity")
	assert.Equal(t, captable.EntityTypeEquityCompensationIssuance, diff.Creates[0].Type)
}

func TestDiffCreateKeepsOriginalAliasType(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")

	diff, err := New().Diff([]captable.Entity{{
		ID:      "P1",
		Type:    captable.EntityTypePlanSecurityIssuance,
		Payload: map[string]any{"object_type": "TX_PLAN_SECURITY_ISSUANCE"},
	}}, actual)
	require.NoError(t, err)

	require.Len(t, diff.Creates, 1)
	assert.Equal(t, captable.EntityTypePlanSecurityIssuance, diff.Creates[0].Type,
		"emitted items keep the caller's vocabulary")
}

func TestDiffAliasMatchesRecordedCanonical(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeEquityCompensationIssuance, "P1")

	diff, err := New().Diff([]captable.Entity{{
		ID:      "P1",
		Type:    captable.EntityTypePlanSecurityIssuance,
		Payload: map[string]any{"object_type": "TX_PLAN_SECURITY_ISSUANCE"},
	}}, actual)
	require.NoError(t, err)

	assert.True(t, diff.IsEmpty(),
		"an alias-typed desired item matches its canonical recorded counterpart")
}

func TestDiffNoEditsWithoutPayloadIndex(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeStakeholder, "S1")

	diff, err := New().Diff([]captable.Entity{stakeholder("S1", "Alice")}, actual)
	require.NoError(t, err)

	assert.True(t, diff.IsEmpty(), "existence alone is not evidence of drift")
}

func TestDiffEditOnSemanticChange(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	recorded := stakeholder("S1", "Alice Original")
	actual.AddID(captable.EntityTypeStakeholder, "S1")
	actual.AddPayload(captable.EntityTypeStakeholder, "S1", recorded.Payload)

	diff, err := New().Diff([]captable.Entity{stakeholder("S1", "Alice Updated")}, actual)
	require.NoError(t, err)

	require.Len(t, diff.Edits, 1)
	assert.Equal(t, "S1", diff.Edits[0].ID)
	assert.Equal(t, OperationEdit, diff.Edits[0].Operation)
	assert.Equal(t, 1, diff.Total)
}

func TestDiffNoEditForRepresentationalNoise(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeStockIssuance, "I1")
	actual.AddPayload(captable.EntityTypeStockIssuance, "I1", map[string]any{
		"object_type": "TX_STOCK_ISSUANCE",
		"security_id": "SEC-1",
		"quantity":    "100.0000000000",
		"ledger_id":   "L-1",
		"comments":    []any{},
	})

	desired := captable.Entity{
		ID:   "I1",
		Type: captable.EntityTypeStockIssuance,
		Payload: map[string]any{
			"object_type": "TX_STOCK_ISSUANCE",
			"security_id": "SEC-1",
			"quantity":    "100",
		},
	}

	diff, err := New().Diff([]captable.Entity{desired}, actual)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())
}

func TestDiffEditComparesNormalizedKindField(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeEquityCompensationIssuance, "P1")
	actual.AddPayload(captable.EntityTypeEquityCompensationIssuance, "P1", map[string]any{
		"object_type": "TX_EQUITY_COMPENSATION_ISSUANCE",
		"quantity":    "50",
	})

	desired := captable.Entity{
		ID:   "P1",
		Type: captable.EntityTypePlanSecurityIssuance,
		Payload: map[string]any{
			"object_type": "TX_PLAN_SECURITY_ISSUANCE",
			"quantity":    "50",
		},
	}

	diff, err := New().Diff([]captable.Entity{desired}, actual)
	require.NoError(t, err)
	assert.Empty(t, diff.Edits, "kind discriminants compare after alias normalization")
}

func TestDiffKindNormalizationNeverMutatesInputs(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	recordedPayload := map[string]any{
		"object_type": "TX_PLAN_SECURITY_ISSUANCE",
		"quantity":    "50",
	}
	actual.AddID(captable.EntityTypeEquityCompensationIssuance, "P1")
	actual.AddPayload(captable.EntityTypeEquityCompensationIssuance, "P1", recordedPayload)

	desired := captable.Entity{
		ID:   "P1",
		Type: captable.EntityTypeEquityCompensationIssuance,
		Payload: map[string]any{
			"object_type": "TX_EQUITY_COMPENSATION_ISSUANCE",
			"quantity":    "50",
		},
	}

	_, err := New().Diff([]captable.Entity{desired}, actual)
	require.NoError(t, err)
	assert.Equal(t, "TX_PLAN_SECURITY_ISSUANCE", recordedPayload["object_type"])
	assert.Equal(t, "TX_EQUITY_COMPENSATION_ISSUANCE", desired.Payload["object_type"])
}

func TestDiffConsistencyError(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeStakeholder, "S1")
	actual.AddID(captable.EntityTypeStakeholder, "S2")
	// Payload index exists but omits S2.
	actual.AddPayload(captable.EntityTypeStakeholder, "S1", stakeholder("S1", "Alice").Payload)

	_, err := New().Diff([]captable.Entity{stakeholder("S2", "Bob")}, actual)
	require.Error(t, err)
	assert.True(t, errors.IsInconsistentSnapshot(err))
}

func TestDiffDeletesForUnreferencedEntities(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeStakeholder, "S2")
	actual.AddID(captable.EntityTypeStakeholder, "S1")
	actual.AddID(captable.EntityTypeIssuer, "ISS")

	diff, err := New().Diff([]captable.Entity{stakeholder("S1", "Alice")}, actual)
	require.NoError(t, err)

	require.Len(t, diff.Deletes, 2)
	assert.Equal(t, captable.EntityTypeIssuer, diff.Deletes[0].Type)
	assert.Equal(t, "ISS", diff.Deletes[0].ID)
	assert.Equal(t, captable.EntityTypeStakeholder, diff.Deletes[1].Type)
	assert.Equal(t, "S2", diff.Deletes[1].ID)
	assert.Equal(t, OperationDelete, diff.Deletes[0].Operation)
	assert.Equal(t, 2, diff.Total)
}

func TestDiffSecondaryKeyConflict(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeStockIssuance, "A")
	actual.AddSecondaryKey(captable.EntityTypeStockIssuance, "S1")

	diff, err := New().Diff([]captable.Entity{
		stockIssuance("B", "S1"),
		stakeholder("S-NEW", "Carol"),
	}, actual)
	require.NoError(t, err)

	// The create is still emitted; the conflict is surfaced alongside it.
	require.Len(t, diff.Creates, 2)
	require.Len(t, diff.Conflicts, 1)
	assert.Equal(t, "B", diff.Conflicts[0].ID)
	assert.Equal(t, "S1", diff.Conflicts[0].SecondaryKey)
	assert.Contains(t, diff.Conflicts[0].Message, "security_id")

	// Delete of "A" is still computed independently.
	require.Len(t, diff.Deletes, 1)
	assert.Equal(t, "A", diff.Deletes[0].ID)

	assert.Equal(t, 3, diff.Total, "conflicts never count toward the total")
	assert.False(t, diff.IsEmpty())
}

func TestDiffNoConflictWithoutSecondaryKeyIndex(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")

	diff, err := New().Diff([]captable.Entity{stockIssuance("B", "S1")}, actual)
	require.NoError(t, err)
	assert.Empty(t, diff.Conflicts, "no key index supplied means no conflict detection")
	require.Len(t, diff.Creates, 1)
}

func TestDiffNoConflictForUnkeyedTypes(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddSecondaryKey(captable.EntityTypeStockIssuance, "S1")

	entity := stakeholder("S-NEW", "Carol")
	entity.Payload["security_id"] = "S1"

	diff, err := New().Diff([]captable.Entity{entity}, actual)
	require.NoError(t, err)
	assert.Empty(t, diff.Conflicts)
}

func TestDiffIdempotent(t *testing.T) {
	desired := []captable.Entity{
		stakeholder("S1", "Alice"),
		stockIssuance("I1", "SEC-1"),
	}

	actual := captable.NewInventory("contract-1", "")
	for _, entity := range desired {
		actual.AddID(entity.Type, entity.ID)
		actual.AddPayload(entity.Type, entity.ID, entity.Payload)
	}

	diff, err := New().Diff(desired, actual)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty(), "a state diffed against itself yields no operations")
}

func TestDiffValidation(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")

	tests := []struct {
		name   string
		entity captable.Entity
	}{
		{"empty id", captable.Entity{
			Type:    captable.EntityTypeStakeholder,
			Payload: map[string]any{},
		}},
		{"unknown type", captable.Entity{
			ID:      "X",
			Type:    captable.EntityType("shareholder"),
			Payload: map[string]any{},
		}},
		{"nil payload", captable.Entity{
			ID:   "X",
			Type: captable.EntityTypeStakeholder,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Diff([]captable.Entity{tt.entity}, actual)
			require.Error(t, err)
			assert.True(t, errors.IsSchemaError(err))
		})
	}
}

func TestDiffWithDifferences(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeStakeholder, "S1")
	actual.AddPayload(captable.EntityTypeStakeholder, "S1", map[string]any{
		"name":     "Alice",
		"quantity": "100",
	})

	desired := captable.Entity{
		ID:      "S1",
		Type:    captable.EntityTypeStakeholder,
		Payload: map[string]any{"name": "Bob", "quantity": "200"},
	}

	diff, err := New(WithDifferences()).Diff([]captable.Entity{desired}, actual)
	require.NoError(t, err)

	require.Len(t, diff.Edits, 1)
	require.Len(t, diff.Edits[0].Differences, 2)
	paths := []string{diff.Edits[0].Differences[0].Path, diff.Edits[0].Differences[1].Path}
	assert.ElementsMatch(t, []string{"$.name", "$.quantity"}, paths)

	// Without the option no trail is attached.
	diff, err = New().Diff([]captable.Entity{desired}, actual)
	require.NoError(t, err)
	require.Len(t, diff.Edits, 1)
	assert.Empty(t, diff.Edits[0].Differences)
}

func TestDiffFieldSetOverrides(t *testing.T) {
	actual := captable.NewInventory("contract-1", "")
	actual.AddID(captable.EntityTypeStakeholder, "S1")
	actual.AddPayload(captable.EntityTypeStakeholder, "S1", map[string]any{
		"name":      "Alice",
		"ledger_id": "L-1",
	})

	desired := captable.Entity{
		ID:      "S1",
		Type:    captable.EntityTypeStakeholder,
		Payload: map[string]any{"name": "Alice", "ledger_id": "L-2"},
	}

	diff, err := New().Diff([]captable.Entity{desired}, actual)
	require.NoError(t, err)
	assert.Empty(t, diff.Edits, "ledger_id is ignored by default")

	diff, err = New(WithIgnoredFields()).Diff([]captable.Entity{desired}, actual)
	require.NoError(t, err)
	assert.Len(t, diff.Edits, 1, "disabling the ignored set makes the drift visible")
}
