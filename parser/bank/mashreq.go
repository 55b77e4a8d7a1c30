package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	mashreqAmountPats = []*regexp.Regexp{
		regexp.MustCompile(`(?i)for\s+([A-Z]{3})\s+([0-9,]+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)of\s+([A-Z]{3})\s+([0-9,]+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)\b([A-Z]{3})\s+([0-9,]+(?:\.\d{2})?)`),
	}
	reMashreqAtOn  = regexp.MustCompile(`(?i)at\s+([^,\n]+?)\s+on\s+\d{1,2}-[A-Z]{3}-\d{4}`)
	reMashreqCard  = regexp.MustCompile(`(?i)Card ending\s+([X\d]{4})`)
	reMashreqAcct  = regexp.MustCompile(`(?i)account\s+(?:no\.|number)?\s*([X\d]{4})`)
	reMashreqBalIs = regexp.MustCompile(`(?i)Available Balance is\s+([A-Z]{3})\s+([X0-9,]+(?:\.\d{2})?)`)
	reMashreqAvl   = regexp.MustCompile(`(?i)Avl\.?\s*Bal\.?\s+([A-Z]{3})\s+([X0-9,]+(?:\.\d{2})?)`)
)

var Mashreq = &common.RuleSet{
	Name:     "Mashreq Bank",
	Currency: "AED",
	Senders: common.SenderRule{
		Exact:    []string{"MASHREQ", "MSHREQ"},
		Contains: []string{"MASHREQ"},
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`^[A-Z]{2}-MASHREQ-[A-Z]$`),
			regexp.MustCompile(`^[A-Z]{2}-MSHREQ-[A-Z]$`),
		},
	},
	Reject:     []common.RejectFunc{mashreqReject},
	Amount:     []common.AmountFunc{mashreqAmount},
	Type:       []common.TypeFunc{mashreqType},
	Merchant:   []common.MerchantFunc{mashreqMerchant},
	CurrencyIn: []common.CurrencyFunc{mashreqCurrency},
	Account: []common.TextFunc{
		common.TextPatterns(reMashreqCard, reMashreqAcct),
	},
	Balance: []common.AmountFunc{mashreqBalance},
}

func mashreqReject(lower string) common.Verdict {
	if strings.Contains(lower, "was used for") || strings.Contains(lower, "purchase of") {
		return common.Accept
	}
	return common.Continue
}

func mashreqAmount(msg string) (decimal.Decimal, bool) {
	for _, pat := range mashreqAmountPats {
		for _, m := range pat.FindAllStringSubmatch(msg, -1) {
			if isMonthToken(strings.ToUpper(m[1])) {
				continue
			}
			if v, ok := common.ParseAmount(m[2]); ok {
				return v, true
			}
		}
	}
	return decimal.Zero, false
}

func mashreqCurrency(msg string) (string, bool) {
	for _, pat := range mashreqAmountPats {
		for _, m := range pat.FindAllStringSubmatch(msg, -1) {
			code := strings.ToUpper(m[1])
			if !isMonthToken(code) {
				return code, true
			}
		}
	}
	return "", false
}

func mashreqType(lower string) (common.TransactionType, bool) {
	if strings.Contains(lower, "credit card") && strings.Contains(lower, "was used") {
		return common.Credit, true
	}
	if strings.Contains(lower, "was used") {
		return common.Expense, true
	}
	return "", false
}

func mashreqMerchant(msg, sender string) (string, bool) {
	if m := reMashreqAtOn.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func mashreqBalance(msg string) (decimal.Decimal, bool) {
	for _, pat := range []*regexp.Regexp{reMashreqBalIs, reMashreqAvl} {
		if m := pat.FindStringSubmatch(msg); m != nil {
			return common.ParseMaskedAmount(m[2])
		}
	}
	return decimal.Zero, false
}
