package optimizer

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mit.edu/dsg/planopt/common"
)

func TestConfigFlags(t *testing.T) {
	var cfg Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)

	assert.Equal(t, Config{Rules: DefaultRuleSet}, cfg)

	require.NoError(t, fs.Parse([]string{"-optimizer.rules=all", "-optimizer.validate-plans", "-optimizer.log-plans=true"}))
	assert.Equal(t, Config{Rules: AllRuleSet, ValidatePlans: true, LogPlans: true}, cfg)
	require.NoError(t, cfg.Validate())

	assert.Contains(t, fs.Lookup("optimizer.rules").Usage, RemoveRedundantSortRuleName)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		rules string
		code  *common.GoDBErrorCode
	}{
		{rules: "default"},
		{rules: "all"},
		{rules: ""},
		{rules: " remove-redundant-sort , "},
		{rules: "all,default", code: codePtr(common.InvalidConfigError)},
		{rules: "remove-redundant-sort,all", code: codePtr(common.InvalidConfigError)},
		{rules: "remove-redundant-sorts", code: codePtr(common.UnknownRuleError)},
	}

	for _, tt := range tests {
		t.Run(tt.rules, func(t *testing.T) {
			cfg := Config{Rules: tt.rules}
			err := cfg.Validate()
			if tt.code == nil {
				require.NoError(t, err)
				return
			}
			assertErrorCode(t, err, *tt.code)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, Config{Rules: DefaultRuleSet}, cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := LoadConfig([]byte("rules: remove-redundant-sort\nvalidate_plans: true\n"))
		require.NoError(t, err)
		assert.Equal(t, Config{Rules: RemoveRedundantSortRuleName, ValidatePlans: true}, cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadConfig([]byte("rulez: all\n"))
		require.Error(t, err)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := LoadConfig([]byte("rules: push-down-everything\n"))
		assertErrorCode(t, err, common.UnknownRuleError)
	})
}

func codePtr(c common.GoDBErrorCode) *common.GoDBErrorCode {
	return &c
}
