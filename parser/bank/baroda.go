package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reBoBSpent   = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+spent`)
	reBoBDr      = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+Dr\.?\s`)
	reBoBCr      = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+Cr(?:edited)?\.?\s`)
	reBoBDeposit = regexp.MustCompile(`(?i)Cash\s+Deposit\s+of\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reBoBUPITo   = regexp.MustCompile(`(?i)(?:to|by)\s+([^.\n]+?)\s+via\s+UPI`)
	reBoBIMPS    = regexp.MustCompile(`(?i)by\s+IMPS[/\s]+([^.\n]+?)(?:\.|$)`)
	reBoBCard    = regexp.MustCompile(`(?i)BOBCARD\s+ending\s+(\d{4})`)
	reBoBAcct    = regexp.MustCompile(`(?i)A/?c\s*\.{0,3}[X\*]*(\d{4})`)
	reBoBAvlBal  = regexp.MustCompile(`(?i)Avl\s*Bal\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reBoBTotBal  = regexp.MustCompile(`(?i)Total\s+Bal\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reBoBLimit   = regexp.MustCompile(`(?i)(?:Avl|Available)\s+(?:Credit\s+)?Limit\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reBoBRef     = regexp.MustCompile(`(?i)Ref\s*(?:No)?\.?[:\s]+([A-Za-z0-9]+)`)
)

var BankOfBaroda = &common.RuleSet{
	Name:     "Bank of Baroda",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"BOBSMS", "BOBTXN", "BOBCRD", "BARODA", "BOB"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reBoBSpent, reBoBDr, reBoBCr, reBoBDeposit),
	},
	Merchant: []common.MerchantFunc{barodaMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reBoBRef),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reBoBCard, reBoBAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reBoBAvlBal, reBoBTotBal),
	},
	CreditLimit: []common.AmountFunc{
		common.AmountPatterns(reBoBLimit),
	},
}

func barodaMerchant(msg, sender string) (string, bool) {
	if m := reBoBUPITo.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reBoBIMPS.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
