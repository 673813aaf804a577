package captable

// aliasTypes maps every alias tag to its canonical counterpart. Resolution is
// one-directional and total: aliases always map to a canonical tag, and
// canonical tags never appear as keys.
var aliasTypes = map[EntityType]EntityType{
	EntityTypePlanSecurityAcceptance:   EntityTypeEquityCompensationAcceptance,
	EntityTypePlanSecurityCancellation: EntityTypeEquityCompensationCancellation,
	EntityTypePlanSecurityExercise:     EntityTypeEquityCompensationExercise,
	EntityTypePlanSecurityIssuance:     EntityTypeEquityCompensationIssuance,
	EntityTypePlanSecurityRelease:      EntityTypeEquityCompensationRelease,
	EntityTypePlanSecurityRetraction:   EntityTypeEquityCompensationRetraction,
	EntityTypePlanSecurityTransfer:     EntityTypeEquityCompensationTransfer,
}

// kindAliases maps deprecated wire-format object_type values to their
// canonical spelling. Applied to the kind discriminant carried inside
// payloads, independently of the type tag on the entity itself.
var kindAliases = map[string]string{
	"TX_PLAN_SECURITY_ACCEPTANCE":   "TX_EQUITY_COMPENSATION_ACCEPTANCE",
	"TX_PLAN_SECURITY_CANCELLATION": "TX_EQUITY_COMPENSATION_CANCELLATION",
	"TX_PLAN_SECURITY_EXERCISE":     "TX_EQUITY_COMPENSATION_EXERCISE",
	"TX_PLAN_SECURITY_ISSUANCE":     "TX_EQUITY_COMPENSATION_ISSUANCE",
	"TX_PLAN_SECURITY_RELEASE":      "TX_EQUITY_COMPENSATION_RELEASE",
	"TX_PLAN_SECURITY_RETRACTION":   "TX_EQUITY_COMPENSATION_RETRACTION",
	"TX_PLAN_SECURITY_TRANSFER":     "TX_EQUITY_COMPENSATION_TRANSFER",
}

// Normalize resolves t to its canonical tag. Canonical tags are returned
// unchanged; unknown tags are also returned unchanged so that callers can
// surface them in their own error reporting.
func Normalize(t EntityType) EntityType {
	if canonical, ok := aliasTypes[t]; ok {
		return canonical
	}
	return t
}

// Normalize resolves the tag to its canonical form. See the package-level
// Normalize function.
func (t EntityType) Normalize() EntityType {
	return Normalize(t)
}

// NormalizeKind resolves a wire-format kind discriminant value (the
// object_type field inside payloads) to its canonical spelling. Values
// outside the alias family pass through unchanged.
func NormalizeKind(v string) string {
	if canonical, ok := kindAliases[v]; ok {
		return canonical
	}
	return v
}

// Aliases returns the alias resolution table as a fresh map, keyed by alias
// tag. Intended for exhaustive iteration in diagnostics and tests.
func Aliases() map[EntityType]EntityType {
	out := make(map[EntityType]EntityType, len(aliasTypes))
	for alias, canonical := range aliasTypes {
		out[alias] = canonical
	}
	return out
}
