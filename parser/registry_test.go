package parser

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqlanhadi/smstx/parser/common"
)

func TestDefaultRegistryValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateDetectsShadowing(t *testing.T) {
	wide := &common.RuleSet{
		Name:    "Wide",
		Senders: common.SenderRule{Patterns: []*regexp.Regexp{regexp.MustCompile(`^ACME.*$`)}},
	}
	narrow := &common.RuleSet{
		Name:    "Narrow",
		Senders: common.SenderRule{Exact: []string{"ACMEBANK"}},
	}

	require.NoError(t, NewRegistry(narrow, wide).Validate())

	err := NewRegistry(wide, narrow).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shadowed")
}

func TestValidateDetectsShadowedSubstring(t *testing.T) {
	broad := &common.RuleSet{
		Name:    "Broad",
		Senders: common.SenderRule{Contains: []string{"BANK"}},
	}
	specific := &common.RuleSet{
		Name:    "Specific",
		Senders: common.SenderRule{Contains: []string{"ACMEBANK"}},
	}

	// A substring literal is itself a resolvable sender string; the broad
	// rule captures it and the specific rule can never win it.
	err := NewRegistry(broad, specific).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ACMEBANK"`)

	require.NoError(t, NewRegistry(specific, broad).Validate())
}

func TestResolveAndSupports(t *testing.T) {
	r := Default()
	assert.True(t, r.Supports("AD-HDFCBK-S"))
	assert.False(t, r.Supports("FRIENDLY-NEIGHBOR"))
	assert.Nil(t, r.Resolve("FRIENDLY-NEIGHBOR"))

	rs := r.Resolve("ADCBALERT")
	require.NotNil(t, rs)
	assert.Equal(t, "ADCB", rs.Name)
}

func TestRegisterAppendsAtLowestPriority(t *testing.T) {
	r := Default()
	custom := &common.RuleSet{
		Name:    "Custom",
		Senders: common.SenderRule{Exact: []string{"HDFCBK"}},
	}
	r.Register(custom)

	// The built-in keeps winning its own shortcode.
	rs := r.Resolve("HDFCBK")
	require.NotNil(t, rs)
	assert.Equal(t, "HDFC Bank", rs.Name)
	assert.Equal(t, len(Default().Names())+1, len(r.Names()))
}
