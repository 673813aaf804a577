package captable

// KindField is the payload field carrying the wire-format kind discriminant.
// Its value is alias-normalized independently of the entity's type tag.
const KindField = "object_type"

// SecurityIDField is the uniqueness-constrained secondary key field enforced
// by the ledger for issuance transactions, in addition to the entity id.
const SecurityIDField = "security_id"

// Entity is one record of the cap-table data standard: a party, an
// instrument class, or a transaction event.
type Entity struct {
	// ID is the entity identifier, unique within its canonical type.
	ID string `json:"id" yaml:"id"`

	// Type is the entity type tag as submitted by the caller. It may be an
	// alias; normalization happens inside the diff engine, and emitted
	// replication items keep this original tag.
	Type EntityType `json:"type" yaml:"type"`

	// Payload is the structured value of the record. The diff engine treats
	// it as opaque except for the id and kind discriminant fields.
	Payload map[string]any `json:"payload" yaml:"payload"`
}

// secondaryKeyed registers the entity types the ledger additionally keys by
// a security identifier.
var secondaryKeyed = map[EntityType]bool{
	EntityTypeStockIssuance:              true,
	EntityTypeConvertibleIssuance:        true,
	EntityTypeWarrantIssuance:            true,
	EntityTypeEquityCompensationIssuance: true,
}

// SecondaryKeyField returns the uniqueness-constrained field name for the
// given type, after alias normalization, and whether the type has one.
func SecondaryKeyField(t EntityType) (string, bool) {
	if secondaryKeyed[Normalize(t)] {
		return SecurityIDField, true
	}
	return "", false
}
