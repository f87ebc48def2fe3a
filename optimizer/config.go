package optimizer

import (
	"bytes"
	"flag"
	"io"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"mit.edu/dsg/planopt/common"
)

const (
	// DefaultRuleSet enables the rules that are safe for every plan.
	DefaultRuleSet = "default"
	// AllRuleSet enables every registered rule.
	AllRuleSet = "all"
)

// Config contains the configuration to create an Optimizer.
type Config struct {
	Rules         string `yaml:"rules"`
	ValidatePlans bool   `yaml:"validate_plans"`
	LogPlans      bool   `yaml:"log_plans"`
}

// RegisterFlags adds the flags required to config this to the given FlagSet.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&cfg.Rules, "optimizer.rules", DefaultRuleSet, "Plan optimizer rules to run, in order. Multiple rules can be provided as a comma-separated list. Supported values: "+DefaultRuleSet+", "+AllRuleSet+", "+strings.Join(RegisteredRules(), ", "))
	f.BoolVar(&cfg.ValidatePlans, "optimizer.validate-plans", false, "Check that every plan is a well-formed tree before optimizing it.")
	f.BoolVar(&cfg.LogPlans, "optimizer.log-plans", false, "Log plans before and after every rewrite at debug level.")
}

// Validate checks that the configured rules exist and that the special rule
// sets are not combined with anything else.
func (cfg *Config) Validate() error {
	_, err := cfg.ruleNames()
	return err
}

func (cfg *Config) ruleNames() ([]string, error) {
	var names []string
	for _, name := range strings.Split(cfg.Rules, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}

	var resolved []string
	for _, name := range names {
		switch name {
		case DefaultRuleSet, AllRuleSet:
			if len(names) > 1 {
				return nil, common.NewError(common.InvalidConfigError, "special rule set %s cannot be combined with other rules", name)
			}
			if name == DefaultRuleSet {
				return slices.Clone(defaultRules), nil
			}
			return RegisteredRules(), nil
		}
		if _, ok := lookupRule(name); !ok {
			return nil, common.NewError(common.UnknownRuleError, "unknown optimizer rule %s", name)
		}
		resolved = append(resolved, name)
	}
	return resolved, nil
}

// LoadConfig returns the flag defaults overridden by the YAML document in data.
// Unknown YAML fields are rejected.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("optimizer", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parsing optimizer config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid optimizer config")
	}
	return cfg, nil
}
