package captable

// CategoryTransaction is the generic ledger listing category that wraps all
// transaction records. It carries no type information of its own; the record
// subtype (a wire-format object_type value) selects the entity family.
const CategoryTransaction = "transaction"

// directCategories maps ledger listing categories that directly encode an
// entity type, with no subtype needed.
var directCategories = map[string]EntityType{
	"issuer":                EntityTypeIssuer,
	"stakeholders":          EntityTypeStakeholder,
	"stockClasses":          EntityTypeStockClass,
	"stockLegendTemplates":  EntityTypeStockLegendTemplate,
	"stockPlans":            EntityTypeStockPlan,
	"valuations":            EntityTypeValuation,
	"vestingTerms":          EntityTypeVestingTerms,
	"financings":            EntityTypeFinancing,
	"documents":             EntityTypeDocument,
}

// transactionKinds maps canonical wire-format object_type values onto entity
// types. Alias kinds are normalized through NormalizeKind before lookup, so
// the table only carries canonical spellings.
var transactionKinds = map[string]EntityType{
	"TX_ISSUER_AUTHORIZED_SHARES_ADJUSTMENT":      EntityTypeIssuerAuthorizedSharesAdjustment,
	"TX_STOCK_CLASS_AUTHORIZED_SHARES_ADJUSTMENT": EntityTypeStockClassAuthorizedSharesAdjustment,
	"TX_STOCK_CLASS_CONVERSION_RATIO_ADJUSTMENT":  EntityTypeStockClassConversionRatioAdjustment,
	"TX_STOCK_CLASS_SPLIT":                        EntityTypeStockClassSplit,
	"TX_STOCK_PLAN_POOL_ADJUSTMENT":               EntityTypeStockPlanPoolAdjustment,
	"TX_STOCK_PLAN_RETURN_TO_POOL":                EntityTypeStockPlanReturnToPool,
	"TX_STOCK_ACCEPTANCE":                         EntityTypeStockAcceptance,
	"TX_STOCK_CANCELLATION":                       EntityTypeStockCancellation,
	"TX_STOCK_CONVERSION":                         EntityTypeStockConversion,
	"TX_STOCK_ISSUANCE":                           EntityTypeStockIssuance,
	"TX_STOCK_REISSUANCE":                         EntityTypeStockReissuance,
	"TX_STOCK_REPURCHASE":                         EntityTypeStockRepurchase,
	"TX_STOCK_RETRACTION":                         EntityTypeStockRetraction,
	"TX_STOCK_TRANSFER":                           EntityTypeStockTransfer,
	"TX_CONVERTIBLE_ACCEPTANCE":                   EntityTypeConvertibleAcceptance,
	"TX_CONVERTIBLE_CANCELLATION":                 EntityTypeConvertibleCancellation,
	"TX_CONVERTIBLE_CONVERSION":                   EntityTypeConvertibleConversion,
	"TX_CONVERTIBLE_ISSUANCE":                     EntityTypeConvertibleIssuance,
	"TX_CONVERTIBLE_RETRACTION":                   EntityTypeConvertibleRetraction,
	"TX_CONVERTIBLE_TRANSFER":                     EntityTypeConvertibleTransfer,
	"TX_WARRANT_ACCEPTANCE":                       EntityTypeWarrantAcceptance,
	"TX_WARRANT_CANCELLATION":                     EntityTypeWarrantCancellation,
	"TX_WARRANT_EXERCISE":                         EntityTypeWarrantExercise,
	"TX_WARRANT_ISSUANCE":                         EntityTypeWarrantIssuance,
	"TX_WARRANT_RETRACTION":                       EntityTypeWarrantRetraction,
	"TX_WARRANT_TRANSFER":                         EntityTypeWarrantTransfer,
	"TX_EQUITY_COMPENSATION_ACCEPTANCE":           EntityTypeEquityCompensationAcceptance,
	"TX_EQUITY_COMPENSATION_CANCELLATION":         EntityTypeEquityCompensationCancellation,
	"TX_EQUITY_COMPENSATION_EXERCISE":             EntityTypeEquityCompensationExercise,
	"TX_EQUITY_COMPENSATION_ISSUANCE":             EntityTypeEquityCompensationIssuance,
	"TX_EQUITY_COMPENSATION_RELEASE":              EntityTypeEquityCompensationRelease,
	"TX_EQUITY_COMPENSATION_RETRACTION":           EntityTypeEquityCompensationRetraction,
	"TX_EQUITY_COMPENSATION_TRANSFER":             EntityTypeEquityCompensationTransfer,
	"TX_VESTING_ACCELERATION":                     EntityTypeVestingAcceleration,
	"TX_VESTING_EVENT":                            EntityTypeVestingEvent,
	"TX_VESTING_START":                            EntityTypeVestingStart,
	"TX_STOCK_CONSOLIDATION":                      EntityTypeStockConsolidation,
}

// objectKinds maps wire-format object_type values for core objects. Core
// object payloads carry these instead of the TX_ discriminants.
var objectKinds = map[string]EntityType{
	"ISSUER":                EntityTypeIssuer,
	"STAKEHOLDER":           EntityTypeStakeholder,
	"STOCK_CLASS":           EntityTypeStockClass,
	"STOCK_LEGEND_TEMPLATE": EntityTypeStockLegendTemplate,
	"STOCK_PLAN":            EntityTypeStockPlan,
	"VALUATION":             EntityTypeValuation,
	"VESTING_TERMS":         EntityTypeVestingTerms,
	"FINANCING":             EntityTypeFinancing,
	"DOCUMENT":              EntityTypeDocument,
}

// Resolve maps a ledger listing (category, subtype) pair onto a canonical
// entity type. Direct categories ignore the subtype; the transaction category
// requires a wire-format object_type subtype, which is alias-normalized
// before lookup. Unknown combinations return ok=false so callers decide how
// to handle unrecognized upstream data; Resolve itself never fails hard.
func Resolve(category, subtype string) (EntityType, bool) {
	if t, ok := directCategories[category]; ok {
		return t, true
	}
	if category == CategoryTransaction {
		t, ok := transactionKinds[NormalizeKind(subtype)]
		return t, ok
	}
	return "", false
}

// ResolveKind maps a wire-format object_type value directly onto a canonical
// entity type, alias-normalizing first. Used when indexing payloads that
// carry their own discriminant but no listing category.
func ResolveKind(kind string) (EntityType, bool) {
	normalized := NormalizeKind(kind)
	if t, ok := transactionKinds[normalized]; ok {
		return t, true
	}
	t, ok := objectKinds[normalized]
	return t, ok
}
