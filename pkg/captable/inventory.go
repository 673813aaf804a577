package captable

// Inventory is a snapshot of the actual state recorded by the ledger for one
// tenant, as reported by the external query collaborator. All indexes are
// keyed by canonical entity type; building an inventory is where alias and
// category resolution must already have happened.
//
// PayloadsByType and SecondaryKeysByType are optional. Without payloads the
// diff engine can detect creates and deletes but not edits; without secondary
// keys it cannot detect uniqueness conflicts.
type Inventory struct {
	// ContractAnchor identifies the ledger contract the snapshot came from.
	ContractAnchor string

	// ParentAnchor identifies the enclosing ledger scope, when present.
	ParentAnchor string

	// IDsByType holds every recorded entity id, grouped by canonical type.
	IDsByType map[EntityType]map[string]struct{}

	// PayloadsByType optionally holds full entity payloads. When present it
	// must be built from exactly the same snapshot as IDsByType.
	PayloadsByType map[EntityType]map[string]map[string]any

	// SecondaryKeysByType optionally holds the uniqueness-constrained
	// secondary keys currently recorded, for types that enforce one.
	SecondaryKeysByType map[EntityType]map[string]struct{}
}

// NewInventory returns an empty inventory with the id index allocated.
func NewInventory(contractAnchor, parentAnchor string) *Inventory {
	return &Inventory{
		ContractAnchor: contractAnchor,
		ParentAnchor:   parentAnchor,
		IDsByType:      make(map[EntityType]map[string]struct{}),
	}
}

// AddID records an entity id under the given canonical type.
func (inv *Inventory) AddID(t EntityType, id string) {
	if inv.IDsByType == nil {
		inv.IDsByType = make(map[EntityType]map[string]struct{})
	}
	ids, ok := inv.IDsByType[t]
	if !ok {
		ids = make(map[string]struct{})
		inv.IDsByType[t] = ids
	}
	ids[id] = struct{}{}
}

// AddPayload records a full payload under the given canonical type and id.
func (inv *Inventory) AddPayload(t EntityType, id string, payload map[string]any) {
	if inv.PayloadsByType == nil {
		inv.PayloadsByType = make(map[EntityType]map[string]map[string]any)
	}
	payloads, ok := inv.PayloadsByType[t]
	if !ok {
		payloads = make(map[string]map[string]any)
		inv.PayloadsByType[t] = payloads
	}
	payloads[id] = payload
}

// AddSecondaryKey records a secondary key under the given canonical type.
func (inv *Inventory) AddSecondaryKey(t EntityType, key string) {
	if inv.SecondaryKeysByType == nil {
		inv.SecondaryKeysByType = make(map[EntityType]map[string]struct{})
	}
	keys, ok := inv.SecondaryKeysByType[t]
	if !ok {
		keys = make(map[string]struct{})
		inv.SecondaryKeysByType[t] = keys
	}
	keys[key] = struct{}{}
}

// Has reports whether an id is recorded under the given canonical type.
func (inv *Inventory) Has(t EntityType, id string) bool {
	ids, ok := inv.IDsByType[t]
	if !ok {
		return false
	}
	_, ok = ids[id]
	return ok
}

// Payload returns the recorded payload for a canonical type and id, and
// whether a payload index was populated for that type at all. A nil map with
// ok=true means the index exists for the type but omits the id.
func (inv *Inventory) Payload(t EntityType, id string) (map[string]any, bool) {
	if inv.PayloadsByType == nil {
		return nil, false
	}
	payloads, ok := inv.PayloadsByType[t]
	if !ok {
		return nil, false
	}
	payload, ok := payloads[id]
	return payload, ok
}

// HasPayloads reports whether the optional payload index was supplied.
func (inv *Inventory) HasPayloads() bool {
	return inv.PayloadsByType != nil
}

// HasSecondaryKey reports whether a secondary key is recorded for the type.
func (inv *Inventory) HasSecondaryKey(t EntityType, key string) bool {
	keys, ok := inv.SecondaryKeysByType[t]
	if !ok {
		return false
	}
	_, ok = keys[key]
	return ok
}

// Len returns the total number of recorded entity ids across all types.
func (inv *Inventory) Len() int {
	n := 0
	for _, ids := range inv.IDsByType {
		n += len(ids)
	}
	return n
}
