package captable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDirectCategories(t *testing.T) {
	tests := []struct {
		category string
		want     EntityType
	}{
		{"issuer", EntityTypeIssuer},
		{"stakeholders", EntityTypeStakeholder},
		{"stockClasses", EntityTypeStockClass},
		{"stockLegendTemplates", EntityTypeStockLegendTemplate},
		{"stockPlans", EntityTypeStockPlan},
		{"valuations", EntityTypeValuation},
		{"vestingTerms", EntityTypeVestingTerms},
		{"financings", EntityTypeFinancing},
		{"documents", EntityTypeDocument},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got, ok := Resolve(tt.category, "")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)

			// Direct categories ignore the subtype.
			got, ok = Resolve(tt.category, "TX_STOCK_ISSUANCE")
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTransactionSubtypes(t *testing.T) {
	tests := []struct {
		subtype string
		want    EntityType
	}{
		{"TX_STOCK_ISSUANCE", EntityTypeStockIssuance},
		{"TX_CONVERTIBLE_ISSUANCE", EntityTypeConvertibleIssuance},
		{"TX_WARRANT_EXERCISE", EntityTypeWarrantExercise},
		{"TX_EQUITY_COMPENSATION_RELEASE", EntityTypeEquityCompensationRelease},
		{"TX_VESTING_START", EntityTypeVestingStart},
		{"TX_STOCK_CLASS_SPLIT", EntityTypeStockClassSplit},
		{"TX_STOCK_CONSOLIDATION", EntityTypeStockConsolidation},
	}

	for _, tt := range tests {
		t.Run(tt.subtype, func(t *testing.T) {
			got, ok := Resolve(CategoryTransaction, tt.subtype)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAliasSubtypes(t *testing.T) {
	got, ok := Resolve(CategoryTransaction, "TX_PLAN_SECURITY_ISSUANCE")
	require.True(t, ok)
	assert.Equal(t, EntityTypeEquityCompensationIssuance, got,
		"deprecated wire subtypes resolve onto the canonical family")
}

func TestResolveUnknown(t *testing.T) {
	_, ok := Resolve("warrants", "")
	assert.False(t, ok, "unknown category must not resolve")

	_, ok = Resolve(CategoryTransaction, "TX_NOT_A_THING")
	assert.False(t, ok, "unknown transaction subtype must not resolve")

	_, ok = Resolve(CategoryTransaction, "")
	assert.False(t, ok, "transaction category requires a subtype")
}

func TestResolveKind(t *testing.T) {
	got, ok := ResolveKind("TX_WARRANT_ISSUANCE")
	require.True(t, ok)
	assert.Equal(t, EntityTypeWarrantIssuance, got)

	got, ok = ResolveKind("TX_PLAN_SECURITY_EXERCISE")
	require.True(t, ok)
	assert.Equal(t, EntityTypeEquityCompensationExercise, got)

	got, ok = ResolveKind("STAKEHOLDER")
	require.True(t, ok)
	assert.Equal(t, EntityTypeStakeholder, got)

	_, ok = ResolveKind("TX_UNKNOWN")
	assert.False(t, ok)
}

func TestEveryTransactionKindRoundTrips(t *testing.T) {
	// Every canonical transaction type must be reachable through the
	// transaction listing category, or snapshot indexing would drop it.
	for subtype, entityType := range transactionKinds {
		got, ok := Resolve(CategoryTransaction, subtype)
		require.True(t, ok, "subtype %s", subtype)
		assert.Equal(t, entityType, got)
	}
}
