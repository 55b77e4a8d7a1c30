package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reAmexSpent = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+spent`)
	reAmexFor   = regexp.MustCompile(`(?i)charged\s+(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)`)
	reAmexAt    = regexp.MustCompile(`(?i)\bat\s+([^.\n]+?)\s+on\b`)
	reAmexCard  = regexp.MustCompile(`(?i)card\s+ending\s+(\d{4,5})`)
)

var AMEX = &common.RuleSet{
	Name:     "American Express",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"AMEXIN", "AMEX"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reAmexSpent, reAmexFor),
	},
	Type: []common.TypeFunc{common.FixedType(common.Credit)},
	Merchant: []common.MerchantFunc{
		common.MerchantPatterns(reAmexAt),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reAmexCard),
	},
	Card: []common.CardFunc{alwaysCard},
}
