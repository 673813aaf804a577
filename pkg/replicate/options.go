package replicate

import "github.com/opencaptable/capsync/pkg/semantic"

// Option is a functional option for configuring a Differ.
type Option func(*differ)

// WithIgnoredFields replaces the comparator's default ignored field set for
// edit detection.
func WithIgnoredFields(fields ...string) Option {
	return func(d *differ) {
		d.compareOpts = append(d.compareOpts, semantic.WithIgnoredFields(fields...))
	}
}

// WithDeprecatedFields replaces the comparator's default deprecated field
// set for edit detection.
func WithDeprecatedFields(fields ...string) Option {
	return func(d *differ) {
		d.compareOpts = append(d.compareOpts, semantic.WithDeprecatedFields(fields...))
	}
}

// WithCompareOptions appends raw comparator options, for callers that need
// policies beyond the field-set overrides above.
func WithCompareOptions(opts ...semantic.Option) Option {
	return func(d *differ) {
		d.compareOpts = append(d.compareOpts, opts...)
	}
}

// WithDifferences makes the differ attach the field-path divergence trail to
// every emitted edit, for operator diagnostics. Costs a full comparison walk
// per changed entity instead of a short-circuiting one.
func WithDifferences() Option {
	return func(d *differ) {
		d.collectDifferences = true
	}
}
