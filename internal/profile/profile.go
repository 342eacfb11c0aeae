// Package profile defines declarative validation profiles: named,
// ordered bindings of section titles to the rules evaluated against
// them, loadable from YAML or provided built in.
package profile

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/grantlint/grantlint/internal/rules"
)

// Binding ties one section to the rules evaluated against it. Section is
// the outline title to resolve; an empty Section means the rules scan
// the whole document. Name is the display name used in findings and
// defaults to Section.
type Binding struct {
	Section string         `mapstructure:"section"`
	Name    string         `mapstructure:"name"`
	Rules   []rules.Config `mapstructure:"rules"`
}

// DisplayName returns the name findings should cite for this binding.
func (b Binding) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	if b.Section != "" {
		return b.Section
	}
	return "document"
}

// Profile is a named, ordered set of section bindings. Binding order is
// the order findings are reported in.
type Profile struct {
	Name     string    `mapstructure:"name"`
	Bindings []Binding `mapstructure:"bindings"`
}

// Validate checks the profile for structural problems before a run.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if len(p.Bindings) == 0 {
		return fmt.Errorf("profile %q has no bindings", p.Name)
	}
	for i, binding := range p.Bindings {
		if len(binding.Rules) == 0 {
			return fmt.Errorf("profile %q: binding %d (%s) has no rules",
				p.Name, i, binding.DisplayName())
		}
		for _, cfg := range binding.Rules {
			if _, err := rules.New(cfg); err != nil {
				return fmt.Errorf("profile %q: binding %s: %w", p.Name, binding.DisplayName(), err)
			}
		}
	}
	return nil
}

// Load reads a YAML profile from path.
func Load(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Resolve returns the built-in profile of that name when one exists,
// otherwise treats nameOrPath as a YAML profile file path.
func Resolve(nameOrPath string) (*Profile, error) {
	if p, ok := Builtin(nameOrPath); ok {
		return p, nil
	}
	return Load(nameOrPath)
}
