package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reJioPBCrWith = regexp.MustCompile(`(?i)credited\s+with\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reJioPBSent   = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+sent`)
	reJioPBTo     = regexp.MustCompile(`(?i)\bto\s+([A-Za-z0-9.\-_]+@[A-Za-z]+)`)
	reJioPBRef    = regexp.MustCompile(`(?i)UPI\s*Ref\s*(?:No)?\.?\s*:?\s*(\d+)`)
	reJioPBBal    = regexp.MustCompile(`(?i)Bal(?:ance)?\s*:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
)

var JioPayments = &common.RuleSet{
	Name:     "Jio Payments Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"JIOPBS"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reJioPBCrWith, reJioPBSent),
	},
	Merchant: []common.MerchantFunc{jioPaymentsMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reJioPBRef),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reJioPBBal),
	},
}

func jioPaymentsMerchant(msg, sender string) (string, bool) {
	if m := reJioPBTo.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	return "", false
}
