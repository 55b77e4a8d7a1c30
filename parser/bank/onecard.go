package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reOneCardForAmt = regexp.MustCompile(`(?i)for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reOneCardOfAmt  = regexp.MustCompile(`(?i)of\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reOneCardSpent  = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+spent`)
	reOneCardAtOn   = regexp.MustCompile(`(?i)at\s+([^.\n]+?)\s+on\s+(?:your\s+)?OneCard`)
	reOneCardAt     = regexp.MustCompile(`(?i)at\s+([^.\n]+?)(?:\s+on|\.)`)
	reOneCardEnding = regexp.MustCompile(`(?i)card\s+ending\s+[X\*]*(\d{4})`)
)

var OneCard = &common.RuleSet{
	Name:     "OneCard",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"ONECRD", "ONECARD"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reOneCardSpent, reOneCardForAmt, reOneCardOfAmt),
	},
	Type:     []common.TypeFunc{common.FixedType(common.Credit)},
	Merchant: []common.MerchantFunc{oneCardMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reOneCardEnding),
	},
	Card: []common.CardFunc{alwaysCard},
}

func oneCardMerchant(msg, sender string) (string, bool) {
	if m := reOneCardAtOn.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reOneCardAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
