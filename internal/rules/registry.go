package rules

import (
	"fmt"
	"sort"
)

// Config names a rule strategy and its parameters as declared in a
// validation profile.
type Config struct {
	Rule   string `mapstructure:"rule"`
	Params Params `mapstructure:"params"`
}

// Factory builds a rule from profile parameters, rejecting incomplete
// configurations.
type Factory func(Params) (Rule, error)

var factories = map[string]Factory{
	RulePresence:       newPresenceRule,
	RuleStyledPresence: newStyledPresenceRule,
	RuleExactlyOnce:    newExactlyOnceRule,
	RuleSubElements:    newSubElementRule,
	RuleSequence:       newSequenceRule,
	RuleConditional:    newConditionalRule,
	RuleThreshold:      newThresholdRule,
	RuleFormat:         newFormatRule,
	RuleCrossReference: newCrossReferenceRule,
}

// New builds the rule named by cfg.Rule from its parameters.
func New(cfg Config) (Rule, error) {
	factory, ok := factories[cfg.Rule]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q (known rules: %v)", cfg.Rule, Names())
	}
	return factory(cfg.Params)
}

// Names returns the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
