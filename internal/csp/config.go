package csp

// Config holds the six recognized encoder options. It is built with
// functional options, the same pattern the surrounding ecosystem uses for
// its solver's entry point.
type Config struct {
	// UseDirectEncoding enables candidate direct-encoding selection for
	// yet-unencoded integer variables.
	UseDirectEncoding bool
	// DirectEncodingForBinaryVars allows Binary-represented integers to be
	// direct-encoded; without it they are always order-encoded.
	DirectEncodingForBinaryVars bool
	// ForceUseLogEncoding forces log encoding for every integer variable,
	// overriding direct-encoding candidacy.
	ForceUseLogEncoding bool
	// DomainProductThreshold caps the cumulative domain-size product the
	// mixed linear decomposer will accumulate before splitting off an
	// auxiliary variable.
	DomainProductThreshold int
	// NativeLinearEncodingTerms caps the term count passed to the SAT
	// engine's native order-encoding-linear primitive.
	NativeLinearEncodingTerms int
	// NativeLinearEncodingDomainProductThreshold is the minimum domain-size
	// product at which the native primitive is preferred over clausal
	// branch-and-bound encoding.
	NativeLinearEncodingDomainProductThreshold int
}

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config)

// WithDirectEncoding enables candidate direct-encoding selection.
func WithDirectEncoding() ConfigOption {
	return func(c *Config) { c.UseDirectEncoding = true }
}

// WithDirectEncodingForBinaryVars allows Binary-represented integers to be
// direct-encoded.
func WithDirectEncodingForBinaryVars() ConfigOption {
	return func(c *Config) { c.DirectEncodingForBinaryVars = true }
}

// WithLogEncodingForced forces log encoding for every integer variable.
func WithLogEncodingForced() ConfigOption {
	return func(c *Config) { c.ForceUseLogEncoding = true }
}

// WithDomainProductThreshold overrides the mixed decomposer's threshold.
func WithDomainProductThreshold(n int) ConfigOption {
	return func(c *Config) { c.DomainProductThreshold = n }
}

// WithNativeLinearEncodingTerms overrides the native primitive's term cap.
func WithNativeLinearEncodingTerms(n int) ConfigOption {
	return func(c *Config) { c.NativeLinearEncodingTerms = n }
}

// WithNativeLinearEncodingDomainProductThreshold overrides the native
// primitive's domain-size-product threshold.
func WithNativeLinearEncodingDomainProductThreshold(n int) ConfigOption {
	return func(c *Config) { c.NativeLinearEncodingDomainProductThreshold = n }
}

// defaultConfig mirrors the defaults a hand-tuned solver ships with: direct
// encoding on for plain-domain variables, off for Binary ones, log encoding
// never forced, and thresholds generous enough that small problems always
// take the cheap path.
func defaultConfig() Config {
	return Config{
		UseDirectEncoding:           true,
		DirectEncodingForBinaryVars: false,
		ForceUseLogEncoding:         false,
		DomainProductThreshold:      1000,
		NativeLinearEncodingTerms:   4,
		NativeLinearEncodingDomainProductThreshold: 1000,
	}
}

// NewConfig builds a Config from defaults, applying opts in order.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}
