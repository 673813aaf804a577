// Package captable defines the canonical cap-table entity vocabulary and the
// normalization rules that map every alternative encoding (wire object types,
// ledger listing categories, deprecated alias families) onto it.
package captable

// EntityType identifies one entity family of the cap-table data standard.
// The set of tags is closed: every value handled by the rest of the system is
// either one of the canonical constants below or a registered alias of one.
type EntityType string

// Core object types.
const (
	EntityTypeIssuer             EntityType = "issuer"
	EntityTypeStakeholder        EntityType = "stakeholder"
	EntityTypeStockClass         EntityType = "stockClass"
	EntityTypeStockLegendTemplate EntityType = "stockLegendTemplate"
	EntityTypeStockPlan          EntityType = "stockPlan"
	EntityTypeValuation          EntityType = "valuation"
	EntityTypeVestingTerms       EntityType = "vestingTerms"
	EntityTypeFinancing          EntityType = "financing"
	EntityTypeDocument           EntityType = "document"
)

// Adjustment transaction types.
const (
	EntityTypeIssuerAuthorizedSharesAdjustment     EntityType = "issuerAuthorizedSharesAdjustment"
	EntityTypeStockClassAuthorizedSharesAdjustment EntityType = "stockClassAuthorizedSharesAdjustment"
	EntityTypeStockClassConversionRatioAdjustment  EntityType = "stockClassConversionRatioAdjustment"
	EntityTypeStockClassSplit                      EntityType = "stockClassSplit"
	EntityTypeStockPlanPoolAdjustment              EntityType = "stockPlanPoolAdjustment"
	EntityTypeStockPlanReturnToPool                EntityType = "stockPlanReturnToPool"
)

// Stock transaction types.
const (
	EntityTypeStockAcceptance   EntityType = "stockAcceptance"
	EntityTypeStockCancellation EntityType = "stockCancellation"
	EntityTypeStockConversion   EntityType = "stockConversion"
	EntityTypeStockIssuance     EntityType = "stockIssuance"
	EntityTypeStockReissuance   EntityType = "stockReissuance"
	EntityTypeStockRepurchase   EntityType = "stockRepurchase"
	EntityTypeStockRetraction   EntityType = "stockRetraction"
	EntityTypeStockTransfer     EntityType = "stockTransfer"
)

// Convertible transaction types.
const (
	EntityTypeConvertibleAcceptance   EntityType = "convertibleAcceptance"
	EntityTypeConvertibleCancellation EntityType = "convertibleCancellation"
	EntityTypeConvertibleConversion   EntityType = "convertibleConversion"
	EntityTypeConvertibleIssuance     EntityType = "convertibleIssuance"
	EntityTypeConvertibleRetraction   EntityType = "convertibleRetraction"
	EntityTypeConvertibleTransfer     EntityType = "convertibleTransfer"
)

// Warrant transaction types.
const (
	EntityTypeWarrantAcceptance   EntityType = "warrantAcceptance"
	EntityTypeWarrantCancellation EntityType = "warrantCancellation"
	EntityTypeWarrantExercise     EntityType = "warrantExercise"
	EntityTypeWarrantIssuance     EntityType = "warrantIssuance"
	EntityTypeWarrantRetraction   EntityType = "warrantRetraction"
	EntityTypeWarrantTransfer     EntityType = "warrantTransfer"
)

// Equity compensation transaction types.
const (
	EntityTypeEquityCompensationAcceptance   EntityType = "equityCompensationAcceptance"
	EntityTypeEquityCompensationCancellation EntityType = "equityCompensationCancellation"
	EntityTypeEquityCompensationExercise     EntityType = "equityCompensationExercise"
	EntityTypeEquityCompensationIssuance     EntityType = "equityCompensationIssuance"
	EntityTypeEquityCompensationRelease      EntityType = "equityCompensationRelease"
	EntityTypeEquityCompensationRetraction   EntityType = "equityCompensationRetraction"
	EntityTypeEquityCompensationTransfer     EntityType = "equityCompensationTransfer"
)

// Plan security transaction types. These are the deprecated alias family for
// the equity compensation transactions: the ledger stores both identically,
// so each tag resolves onto its equity compensation counterpart.
const (
	EntityTypePlanSecurityAcceptance   EntityType = "planSecurityAcceptance"
	EntityTypePlanSecurityCancellation EntityType = "planSecurityCancellation"
	EntityTypePlanSecurityExercise     EntityType = "planSecurityExercise"
	EntityTypePlanSecurityIssuance     EntityType = "planSecurityIssuance"
	EntityTypePlanSecurityRelease      EntityType = "planSecurityRelease"
	EntityTypePlanSecurityRetraction   EntityType = "planSecurityRetraction"
	EntityTypePlanSecurityTransfer     EntityType = "planSecurityTransfer"
)

// Vesting lifecycle event types.
const (
	EntityTypeVestingAcceleration EntityType = "vestingAcceleration"
	EntityTypeVestingEvent        EntityType = "vestingEvent"
	EntityTypeVestingStart        EntityType = "vestingStart"
)

// Other lifecycle-change events.
const (
	EntityTypeStockConsolidation EntityType = "stockConsolidation"
)

// canonicalTypes is the closed set of canonical tags, in stable listing order.
var canonicalTypes = []EntityType{
	EntityTypeIssuer,
	EntityTypeStakeholder,
	EntityTypeStockClass,
	EntityTypeStockLegendTemplate,
	EntityTypeStockPlan,
	EntityTypeValuation,
	EntityTypeVestingTerms,
	EntityTypeFinancing,
	EntityTypeDocument,
	EntityTypeIssuerAuthorizedSharesAdjustment,
	EntityTypeStockClassAuthorizedSharesAdjustment,
	EntityTypeStockClassConversionRatioAdjustment,
	EntityTypeStockClassSplit,
	EntityTypeStockPlanPoolAdjustment,
	EntityTypeStockPlanReturnToPool,
	EntityTypeStockAcceptance,
	EntityTypeStockCancellation,
	EntityTypeStockConversion,
	EntityTypeStockIssuance,
	EntityTypeStockReissuance,
	EntityTypeStockRepurchase,
	EntityTypeStockRetraction,
	EntityTypeStockTransfer,
	EntityTypeConvertibleAcceptance,
	EntityTypeConvertibleCancellation,
	EntityTypeConvertibleConversion,
	EntityTypeConvertibleIssuance,
	EntityTypeConvertibleRetraction,
	EntityTypeConvertibleTransfer,
	EntityTypeWarrantAcceptance,
	EntityTypeWarrantCancellation,
	EntityTypeWarrantExercise,
	EntityTypeWarrantIssuance,
	EntityTypeWarrantRetraction,
	EntityTypeWarrantTransfer,
	EntityTypeEquityCompensationAcceptance,
	EntityTypeEquityCompensationCancellation,
	EntityTypeEquityCompensationExercise,
	EntityTypeEquityCompensationIssuance,
	EntityTypeEquityCompensationRelease,
	EntityTypeEquityCompensationRetraction,
	EntityTypeEquityCompensationTransfer,
	EntityTypeVestingAcceleration,
	EntityTypeVestingEvent,
	EntityTypeVestingStart,
	EntityTypeStockConsolidation,
}

// canonicalSet is the membership index over canonicalTypes.
var canonicalSet = func() map[EntityType]bool {
	set := make(map[EntityType]bool, len(canonicalTypes))
	for _, t := range canonicalTypes {
		set[t] = true
	}
	return set
}()

// String returns the string representation of the entity type tag.
func (t EntityType) String() string {
	return string(t)
}

// IsCanonical reports whether t is one of the canonical tags.
func (t EntityType) IsCanonical() bool {
	return canonicalSet[t]
}

// IsAlias reports whether t is a registered alias of a canonical tag.
func (t EntityType) IsAlias() bool {
	_, ok := aliasTypes[t]
	return ok
}

// Valid reports whether t is part of the vocabulary at all, canonical or alias.
func (t EntityType) Valid() bool {
	return t.IsCanonical() || t.IsAlias()
}

// Types returns the canonical tags in stable listing order.
// The returned slice is a copy and safe to mutate.
func Types() []EntityType {
	out := make([]EntityType, len(canonicalTypes))
	copy(out, canonicalTypes)
	return out
}
