package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reBancoVerb  = regexp.MustCompile(`(?i)(Transferiste|Compraste|Pagaste|Recibiste)\s+\$?([0-9.,]+)`)
	reBancoA     = regexp.MustCompile(`(?i)(?:en|a)\s+([^.\n]+?)(?:\s+desde|\s+el\s|\.|$)`)
	reBancoDesde = regexp.MustCompile(`(?i)desde\s+(?:tu\s+)?(?:cuenta|producto)\s+\*?(\d{4})`)
)

// Bancolombia writes Spanish verbs and Latin numerals: dots for thousands,
// comma for decimals.
var Bancolombia = &common.RuleSet{
	Name:     "Bancolombia",
	Currency: "COP",
	Senders: common.SenderRule{
		Exact: []string{"87400", "85540"},
	},
	Reject:   []common.RejectFunc{bancolombiaReject},
	Amount:   []common.AmountFunc{bancolombiaAmount},
	Type:     []common.TypeFunc{bancolombiaType},
	Merchant: []common.MerchantFunc{bancolombiaMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reBancoDesde),
	},
}

func bancolombiaReject(lower string) common.Verdict {
	for _, kw := range []string{"transferiste", "compraste", "pagaste", "recibiste"} {
		if strings.Contains(lower, kw) {
			return common.Accept
		}
	}
	return common.Reject
}

func bancolombiaAmount(msg string) (decimal.Decimal, bool) {
	if m := reBancoVerb.FindStringSubmatch(msg); m != nil {
		return common.ParseLatinAmount(m[2])
	}
	return decimal.Zero, false
}

func bancolombiaType(lower string) (common.TransactionType, bool) {
	switch {
	case strings.Contains(lower, "recibiste"):
		return common.Income, true
	case strings.Contains(lower, "transferiste"):
		return common.Transfer, true
	case strings.Contains(lower, "compraste"), strings.Contains(lower, "pagaste"):
		return common.Expense, true
	}
	return "", false
}

func bancolombiaMerchant(msg, sender string) (string, bool) {
	if m := reBancoA.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
