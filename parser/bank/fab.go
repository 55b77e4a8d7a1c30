package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reFABCurAmount   = regexp.MustCompile(`(?i)\b([A-Z]{3})\s+([0-9*,Xx]+(?:\.\d{2})?)`)
	reFABAmountLabel = regexp.MustCompile(`(?i)Amount\s*([A-Z]{3})\s+([0-9*,Xx]+(?:\.\d{2})?)`)
	reFABAvailBal    = regexp.MustCompile(`(?i)Available\s+Balance\s+([A-Z]{3})\s+([0-9*,Xx]+(?:\.\d{2})?)`)
	reFABAvlBal      = regexp.MustCompile(`(?i)Avl\.?\s*Bal\.?\s+([A-Z]{3})\s+([0-9*,Xx]+(?:\.\d{2})?)`)
	reFABCardNo      = regexp.MustCompile(`(?i)Card\s+No\s+([X\d]{4})`)
	reFABAccountMask = regexp.MustCompile(`(?i)Account\s+[X\*]*(\d{4})`)
	reFABFromAcct    = regexp.MustCompile(`(?i)from\s+(?:your\s+)?account(?:/card)?\s+([X\d*]{4,})`)
	reFABToAcct      = regexp.MustCompile(`(?i)to\s+(?:IBAN/Account/Card|account)\s+([X\d*]{4,})`)
	reFABMerchLine   = regexp.MustCompile(`(?i)(?:Credit|Debit)\s+Card\s+Purchase\s*\n(?:Card[^\n]*\n)?([^\n]+)`)
	reFABDomain      = regexp.MustCompile(`(?i)([A-Z]+\.(?:COM|NET|ORG|IN)[^\n]*)`)
	reFABAtMerchant  = regexp.MustCompile(`(?i)at\s+([^,\n]+?)(?:,|\s+on\s|\.\s|$)`)
)

// FAB alerts mask parts of amounts and balances; only the visible digits
// are kept.
var FAB = &common.RuleSet{
	Name:     "FAB",
	Currency: "AED",
	Senders: common.SenderRule{
		Exact:    []string{"FAB"},
		Contains: []string{"FABBANK", "ADFAB"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-FAB-[A-Z]$`)},
	},
	Reject:     []common.RejectFunc{fabReject},
	Amount:     []common.AmountFunc{fabAmount},
	Type:       []common.TypeFunc{fabType},
	Merchant:   []common.MerchantFunc{fabMerchant},
	CurrencyIn: []common.CurrencyFunc{fabCurrency},
	Account: []common.TextFunc{
		common.TextPatterns(reFABCardNo, reFABAccountMask),
	},
	FromAcct: []common.TextFunc{common.TextPatterns(reFABFromAcct)},
	ToAcct:   []common.TextFunc{common.TextPatterns(reFABToAcct)},
	Balance:  []common.AmountFunc{fabBalance},
	Card:     []common.CardFunc{fabCard},
}

func fabReject(lower string) common.Verdict {
	if strings.Contains(lower, "card purchase") ||
		strings.Contains(lower, "has been processed successfully") ||
		strings.Contains(lower, "payment received") {
		return common.Accept
	}
	return common.Continue
}

func fabAmount(msg string) (decimal.Decimal, bool) {
	for _, pat := range []*regexp.Regexp{reFABAmountLabel, reFABCurAmount} {
		for _, m := range pat.FindAllStringSubmatch(msg, -1) {
			if isMonthToken(strings.ToUpper(m[1])) {
				continue
			}
			if v, ok := common.ParseMaskedAmount(m[2]); ok {
				return v, true
			}
		}
	}
	return decimal.Zero, false
}

func fabCurrency(msg string) (string, bool) {
	for _, m := range reFABCurAmount.FindAllStringSubmatch(msg, -1) {
		code := strings.ToUpper(m[1])
		if !isMonthToken(code) {
			return code, true
		}
	}
	return "", false
}

func fabType(lower string) (common.TransactionType, bool) {
	switch {
	case strings.Contains(lower, "credit card purchase"):
		return common.Credit, true
	case strings.Contains(lower, "debit card purchase"):
		return common.Expense, true
	case strings.Contains(lower, "transfer") && strings.Contains(lower, "processed successfully"):
		return common.Transfer, true
	}
	return "", false
}

func fabMerchant(msg, sender string) (string, bool) {
	if m := reFABMerchLine.FindStringSubmatch(msg); m != nil {
		line := strings.TrimSpace(m[1])
		if line != "" && !regexp.MustCompile(`^\d{2}/\d{2}/\d{2}`).MatchString(line) {
			return line, true
		}
	}
	if m := reFABDomain.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reFABAtMerchant.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func fabBalance(msg string) (decimal.Decimal, bool) {
	for _, pat := range []*regexp.Regexp{reFABAvailBal, reFABAvlBal} {
		if m := pat.FindStringSubmatch(msg); m != nil {
			return common.ParseMaskedAmount(m[2])
		}
	}
	return decimal.Zero, false
}

func fabCard(lower string) (bool, bool) {
	if strings.Contains(lower, "card purchase") || strings.Contains(lower, "card no") {
		return true, true
	}
	return false, false
}
