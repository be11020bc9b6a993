package dedupe

import "strings"

// Option applies a configuration option to the set deduper.
type Option func(*setDeduper)

// WithNormalizer sets the function mapping a key to its identity.
// The default only trims surrounding whitespace.
func WithNormalizer(fn func(string) string) Option {
	return func(d *setDeduper) {
		if fn != nil {
			d.normalize = fn
		}
	}
}

// WithCaseFold makes keys that differ only in letter case equal.
func WithCaseFold() Option {
	return WithNormalizer(func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
}
