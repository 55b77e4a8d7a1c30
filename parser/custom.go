package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/aqlanhadi/smstx/parser/common"
)

// LoadCustom reads user-defined institutions from the "institutions" config
// list and appends them to the registry at the lowest priority. Each entry
// names its senders and extraction patterns; capture group 1 is the value.
func (r *Registry) LoadCustom() error {
	raw := viper.Get("institutions")
	if raw == nil {
		return nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return fmt.Errorf("institutions: expected a list, got %T", raw)
	}
	for i, entry := range list {
		m, ok := entry.(map[string]interface{})
		if !ok {
			return fmt.Errorf("institutions[%d]: expected a mapping, got %T", i, entry)
		}
		rs, err := customRuleSet(m)
		if err != nil {
			return fmt.Errorf("institutions[%d]: %w", i, err)
		}
		r.Register(rs)
	}
	return nil
}

func customRuleSet(m map[string]interface{}) (*common.RuleSet, error) {
	name, _ := m["name"].(string)
	if name == "" {
		return nil, fmt.Errorf("missing name")
	}
	currency, _ := m["currency"].(string)
	if currency == "" {
		currency = "INR"
	}

	rs := &common.RuleSet{Name: name, Currency: currency}

	if senders, ok := m["senders"].(map[string]interface{}); ok {
		rs.Senders.Exact = upperStrings(senders["exact"])
		rs.Senders.Contains = upperStrings(senders["contains"])
		pats, err := compileList(senders["patterns"])
		if err != nil {
			return nil, fmt.Errorf("senders: %w", err)
		}
		rs.Senders.Patterns = pats
	}
	if len(rs.Senders.Exact)+len(rs.Senders.Contains)+len(rs.Senders.Patterns) == 0 {
		return nil, fmt.Errorf("no senders configured")
	}

	if kws := lowerStrings(m["skip_keywords"]); len(kws) > 0 {
		rs.Reject = []common.RejectFunc{skipKeywords(kws)}
	}

	if pats, err := compileList(m["amount_patterns"]); err != nil {
		return nil, fmt.Errorf("amount_patterns: %w", err)
	} else if len(pats) > 0 {
		rs.Amount = []common.AmountFunc{common.AmountPatterns(pats...)}
	}
	if pats, err := compileList(m["merchant_patterns"]); err != nil {
		return nil, fmt.Errorf("merchant_patterns: %w", err)
	} else if len(pats) > 0 {
		rs.Merchant = []common.MerchantFunc{common.MerchantPatterns(pats...)}
	}
	if pats, err := compileList(m["reference_patterns"]); err != nil {
		return nil, fmt.Errorf("reference_patterns: %w", err)
	} else if len(pats) > 0 {
		rs.Reference = []common.TextFunc{common.TextPatterns(pats...)}
	}
	if pats, err := compileList(m["account_patterns"]); err != nil {
		return nil, fmt.Errorf("account_patterns: %w", err)
	} else if len(pats) > 0 {
		rs.Account = []common.TextFunc{common.TextPatterns(pats...)}
	}
	if pats, err := compileList(m["balance_patterns"]); err != nil {
		return nil, fmt.Errorf("balance_patterns: %w", err)
	} else if len(pats) > 0 {
		rs.Balance = []common.AmountFunc{common.AmountPatterns(pats...)}
	}

	if t, _ := m["type"].(string); t != "" {
		switch common.TransactionType(strings.ToUpper(t)) {
		case common.Expense, common.Income, common.Credit, common.Transfer, common.Investment:
			rs.Type = []common.TypeFunc{common.FixedType(common.TransactionType(strings.ToUpper(t)))}
		default:
			return nil, fmt.Errorf("unknown type %q", t)
		}
	}

	return rs, nil
}

// skipKeywords drops messages containing any configured phrase. The shared
// reject filter still runs afterwards for everything else.
func skipKeywords(kws []string) common.RejectFunc {
	return func(lower string) common.Verdict {
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				return common.Reject
			}
		}
		return common.Continue
	}
}

func lowerStrings(raw interface{}) []string {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, v := range list {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}

func upperStrings(raw interface{}) []string {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, v := range list {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, strings.ToUpper(s))
		}
	}
	return out
}

func compileList(raw interface{}) ([]*regexp.Regexp, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, nil
	}
	var out []*regexp.Regexp
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected a pattern string, got %T", v)
		}
		p, err := regexp.Compile(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
