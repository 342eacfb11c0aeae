package rules

// Params carries the rule-specific configuration a profile declares for
// one rule binding. Each strategy reads the fields it needs and rejects
// configurations missing its required ones.
type Params struct {
	// Presence checks.
	Headers    []string `mapstructure:"headers"`
	MatchExact bool     `mapstructure:"match_exact"`

	// Styled presence checks.
	Literal string `mapstructure:"literal"`
	Style   string `mapstructure:"style"`
	Message string `mapstructure:"message"`

	// Exactly-once checks.
	Items        []string `mapstructure:"items"`
	FamilyPrefix string   `mapstructure:"family_prefix"`

	// Sub-element conditions.
	Markers   []string `mapstructure:"markers"`
	RequireIn []string `mapstructure:"require_in"`
	ForbidIn  []string `mapstructure:"forbid_in"`

	// Sequence checks.
	Pattern string `mapstructure:"pattern"`

	// Conditional-fields checks.
	YesBlock       string   `mapstructure:"yes_block"`
	NoBlock        string   `mapstructure:"no_block"`
	ValueStart     string   `mapstructure:"value_start"`
	ValueEnd       string   `mapstructure:"value_end"`
	Placeholders   []string `mapstructure:"placeholders"`
	ForbiddenBlock string   `mapstructure:"forbidden_block"`
	Label          string   `mapstructure:"label"`

	// Threshold checks.
	Mode          string   `mapstructure:"mode"`
	Min           int      `mapstructure:"min"`
	Max           int      `mapstructure:"max"`
	StartMarker   string   `mapstructure:"start_marker"`
	EndMarker     string   `mapstructure:"end_marker"`
	StripPrefixes []string `mapstructure:"strip_prefixes"`
	StripLiterals []string `mapstructure:"strip_literals"`

	// Format and cross-reference checks.
	Anchor string `mapstructure:"anchor"`
	Format string `mapstructure:"format"`
	Suffix string `mapstructure:"suffix"`
}
