package semantic

// DefaultIgnoredFields are ledger bookkeeping fields that are not part of
// the cap-table data standard. Their presence or absence on either side
// never produces a difference.
var DefaultIgnoredFields = []string{
	"ledger_id",
	"tx_hash",
	"created_at",
	"updated_at",
}

// DefaultDeprecatedFields are data-standard fields known to differ
// legitimately between two snapshots of the same logical entity.
var DefaultDeprecatedFields = []string{
	"current_relationship",
	"stock_class_id",
}

// options holds the comparison policy.
type options struct {
	ignoredFields    map[string]bool
	deprecatedFields map[string]bool
}

// Option is a functional option for configuring a comparison.
type Option func(*options)

// WithIgnoredFields replaces the default ignored field set. Passing no
// fields disables ignored-field exclusion entirely.
func WithIgnoredFields(fields ...string) Option {
	return func(o *options) {
		o.ignoredFields = toSet(fields)
	}
}

// WithDeprecatedFields replaces the default deprecated field set. Passing no
// fields disables deprecated-field exclusion entirely.
func WithDeprecatedFields(fields ...string) Option {
	return func(o *options) {
		o.deprecatedFields = toSet(fields)
	}
}

// newOptions builds the comparison policy from defaults plus overrides.
func newOptions(opts ...Option) *options {
	o := &options{
		ignoredFields:    toSet(DefaultIgnoredFields),
		deprecatedFields: toSet(DefaultDeprecatedFields),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// excluded reports whether a key is skipped entirely during comparison.
func (o *options) excluded(key string) bool {
	return o.ignoredFields[key] || o.deprecatedFields[key]
}

func toSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
