package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reJioPayPlan  = regexp.MustCompile(`(?i)Plan\s+(?:Name|Amount)?\s*:\s*(?:Rs\.?)?\s*([0-9,]+(?:\.\d{2})?)`)
	reJioPayRs    = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reJioPayTo    = regexp.MustCompile(`(?i)payment\s+successful\s+to\s+([^.\n]+)`)
	reJioPayNum   = regexp.MustCompile(`(?i)Jio\s+Number\s*:\s*(\d{10})`)
	reJioPayTxn   = regexp.MustCompile(`(?i)(?:Txn|Transaction)\s+(?:ID|No\.?)[:\s]*([A-Za-z0-9]+)`)
)

// JioPay handles recharge receipts; the Jio number doubles as the merchant
// label when no payee is named.
var JioPay = &common.RuleSet{
	Name:     "JioPay",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"JIOPAY"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reJioPayPlan, reJioPayRs),
	},
	Type:     []common.TypeFunc{common.FixedType(common.Expense)},
	Merchant: []common.MerchantFunc{jioPayMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reJioPayTxn),
	},
}

func jioPayMerchant(msg, sender string) (string, bool) {
	if m := reJioPayTo.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if reJioPayNum.MatchString(msg) {
		return "Jio Recharge", true
	}
	return "", false
}
