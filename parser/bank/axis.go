package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reAxisINRDebit  = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)\s+debited`)
	reAxisINRCredit = regexp.MustCompile(`(?i)INR\s+([0-9,]+(?:\.\d{2})?)\s+credited`)
	reAxisPayment   = regexp.MustCompile(`(?i)Payment\s+of\s+(?:Rs\.?|INR)\s*([0-9,]+(?:\.\d{2})?)`)
	reAxisUPIMerch  = regexp.MustCompile(`(?i)UPI/P2M/\d+/([^/\n]+?)(?:/|$|\s)`)
	reAxisUPIPerson = regexp.MustCompile(`(?i)UPI/P2A/\d+/([^/\n]+?)(?:/|$|\s)`)
	reAxisInfo      = regexp.MustCompile(`(?i)Info[:\s-]+([^.\n]+?)(?:\.|$)`)
	reAxisAcNo      = regexp.MustCompile(`(?i)A/c\s+no\.\s+[X\*]*(\d{4})`)
	reAxisCredCard  = regexp.MustCompile(`(?i)Credit\s+Card\s+[X\*]+(\d{4})`)
	reAxisUPIRef    = regexp.MustCompile(`(?i)UPI\s+Ref\s+no\.?\s*(\d+)`)
)

var Axis = &common.RuleSet{
	Name:     "Axis Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"AXIS BANK", "AXISBANK", "AXISBK", "AXISB"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reAxisINRDebit, reAxisINRCredit, reAxisPayment),
	},
	Merchant: []common.MerchantFunc{axisMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reAxisUPIRef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reAxisAcNo, reAxisCredCard),
	},
}

func axisMerchant(msg, sender string) (string, bool) {
	if m := reAxisUPIMerch.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reAxisUPIPerson.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reAxisInfo.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
