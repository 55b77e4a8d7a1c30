package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reICICISpentCur   = regexp.MustCompile(`(?i)([A-Z]{3})\s+([0-9,]+(?:\.\d{2})?)\s+spent`)
	reICICIINRSpent   = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{2})?)\s+spent`)
	reICICIDebitWith  = regexp.MustCompile(`(?i)debited\s+with\s+(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
	reICICIDebitFor   = regexp.MustCompile(`(?i)debited\s+for\s+(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
	reICICICreditWith = regexp.MustCompile(`(?i)credited\s+with\s+(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
	reICICICardAt     = regexp.MustCompile(`(?i)on\s+ICICI\s+Bank\s+Card.*?\s+at\s+([^.\n]+?)(?:\s+on|\.)`)
	reICICIDividend   = regexp.MustCompile(`(?i)Info\s+(?:ACH|NACH)\*([^*]+)\*`)
	reICICITowards    = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+Info|\s+on|\.)`)
	reICICIFromUPI    = regexp.MustCompile(`(?i)from\s+([^.\n]+?)\s+UPI`)
	reICICICard       = regexp.MustCompile(`(?i)Card\s+[X\*]+(\d{4})`)
	reICICIAcct       = regexp.MustCompile(`(?i)Acc(?:oun)?t\s+[X\*]+(\d{3,4})`)
	reICICIBankAcct   = regexp.MustCompile(`(?i)ICICI\s+Bank\s+A/?c(?:ct)?\s+[X\*]*(\d{3,4})`)
	reICICIRRN        = regexp.MustCompile(`(?i)RRN\s+(\d+)`)
	reICICIUPIRef     = regexp.MustCompile(`(?i)UPI:\s*(\d+)`)
)

var ICICI = &common.RuleSet{
	Name:     "ICICI Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"ICICIB", "ICICI"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reICICIINRSpent, reICICIDebitWith, reICICIDebitFor, reICICICreditWith),
		iciciCurrencyAmount,
	},
	Type:       []common.TypeFunc{iciciType},
	Merchant:   []common.MerchantFunc{iciciMerchant},
	CurrencyIn: []common.CurrencyFunc{iciciCurrency},
	Reference: []common.TextFunc{
		common.TextPatterns(reICICIRRN, reICICIUPIRef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reICICIBankAcct, reICICIAcct, reICICICard),
	},
}

// Card spends abroad carry an explicit currency code before the amount.
func iciciCurrencyAmount(msg string) (decimal.Decimal, bool) {
	if m := reICICISpentCur.FindStringSubmatch(msg); m != nil && !isMonthToken(m[1]) {
		return common.ParseAmount(m[2])
	}
	return decimal.Zero, false
}

func iciciCurrency(msg string) (string, bool) {
	if m := reICICISpentCur.FindStringSubmatch(msg); m != nil && !isMonthToken(m[1]) {
		return m[1], true
	}
	return "", false
}

// Card spends are borrowed money whether the message says "Credit Card" or
// just "Card". ACH/NACH mentions carry no direction of their own; dividend
// credits classify through the base rules.
func iciciType(lower string) (common.TransactionType, bool) {
	if (strings.Contains(lower, "icici bank credit card") ||
		(strings.Contains(lower, "icici bank card") && strings.Contains(lower, "spent"))) &&
		(strings.Contains(lower, "spent") || strings.Contains(lower, "debited")) {
		return common.Credit, true
	}
	if strings.Contains(lower, "info by cash") {
		return common.Income, true
	}
	return "", false
}

func iciciMerchant(msg, sender string) (string, bool) {
	if m := reICICICardAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	// "Info NACH*TATA MOTORS LTD*DIV" names the paying company.
	if m := reICICIDividend.FindStringSubmatch(msg); m != nil {
		company := common.CleanMerchant(strings.TrimSpace(m[1]))
		if company != "" {
			return company + " Dividend", true
		}
	}
	if m := reICICITowards.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reICICIFromUPI.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
