package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	adcbAmountPats = []*regexp.Regexp{
		regexp.MustCompile(`(?i)was used for\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)\b([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)\s+withdrawn from`),
		regexp.MustCompile(`(?i)\b([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)\s+has been deposited via ATM`),
		regexp.MustCompile(`(?i)\b([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)\s+transferred via`),
		regexp.MustCompile(`(?i)Cr\.?\s*transaction of\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)Dr\.?\s*transaction of\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)Transaction of\s+([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
		regexp.MustCompile(`(?i)Amount Paid:\s*([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`),
	}
	reADCBMerchCountry = regexp.MustCompile(`(?i)at\s+([^,\n]+),\s*[A-Z]{2}`)
	reADCBLinkedAcct   = regexp.MustCompile(`(?i)linked to acc\.?\s*[X\*]+(\d{4,6})`)
	reADCBWithdrawAcct = regexp.MustCompile(`(?i)withdrawn from acc\.?\s*[X\*]+(\d{4,6})`)
	reADCBInAcct       = regexp.MustCompile(`(?i)in your account\s+[X\*]+(\d{4,6})`)
	reADCBCard         = regexp.MustCompile(`(?i)Card\s+[X\*]+(\d{4})`)
	reADCBAvlBal       = regexp.MustCompile(`(?i)Avl\.?\s*Bal\.?\s*([A-Z]{3})\s*([0-9,]+(?:\.\d{2})?)`)
	reADCBAvailBalIs   = regexp.MustCompile(`(?i)Available balance is\s+([A-Z]{3})?\s*([0-9,]+(?:\.\d{2})?)`)
)

var ADCB = &common.RuleSet{
	Name:     "ADCB",
	Currency: "AED",
	Senders: common.SenderRule{
		Exact:    []string{"ADCBALERT"},
		Contains: []string{"ADCB"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-ADCB-[A-Z]$`)},
	},
	Reject:     []common.RejectFunc{adcbReject},
	Amount:     []common.AmountFunc{adcbAmount},
	Type:       []common.TypeFunc{adcbType},
	Merchant:   []common.MerchantFunc{adcbMerchant},
	CurrencyIn: []common.CurrencyFunc{adcbCurrency},
	Account: []common.TextFunc{
		common.TextPatterns(reADCBLinkedAcct, reADCBWithdrawAcct, reADCBInAcct, reADCBCard),
	},
	Balance: []common.AmountFunc{adcbBalance},
}

// Card-usage phrasing carries none of the usual debit/credit verbs.
func adcbReject(lower string) common.Verdict {
	if strings.Contains(lower, "was used for") ||
		strings.Contains(lower, "transaction of") ||
		strings.Contains(lower, "amount paid") {
		return common.Accept
	}
	return common.Continue
}

func adcbAmount(msg string) (decimal.Decimal, bool) {
	for _, pat := range adcbAmountPats {
		if m := pat.FindStringSubmatch(msg); m != nil && !isMonthToken(strings.ToUpper(m[1])) {
			return common.ParseAmount(m[2])
		}
	}
	return decimal.Zero, false
}

func adcbCurrency(msg string) (string, bool) {
	for _, pat := range adcbAmountPats {
		if m := pat.FindStringSubmatch(msg); m != nil && !isMonthToken(strings.ToUpper(m[1])) {
			return strings.ToUpper(m[1]), true
		}
	}
	return "", false
}

func adcbType(lower string) (common.TransactionType, bool) {
	switch {
	case strings.Contains(lower, "was used for"):
		return common.Expense, true
	case strings.Contains(lower, "cr. transaction"):
		return common.Income, true
	case strings.Contains(lower, "dr. transaction"), strings.Contains(lower, "dr transaction"):
		return common.Expense, true
	case strings.Contains(lower, "transferred via"):
		return common.Transfer, true
	}
	return "", false
}

func adcbMerchant(msg, sender string) (string, bool) {
	if m := reADCBMerchCountry.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func adcbBalance(msg string) (decimal.Decimal, bool) {
	if m := reADCBAvlBal.FindStringSubmatch(msg); m != nil {
		return common.ParseAmount(m[2])
	}
	if m := reADCBAvailBalIs.FindStringSubmatch(msg); m != nil {
		return common.ParseAmount(m[2])
	}
	return decimal.Zero, false
}
