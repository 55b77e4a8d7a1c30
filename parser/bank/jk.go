package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reJKDebit   = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reJKCred    = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reJKTowards = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+on|\s+Ref|\.|$)`)
	reJKMTFR    = regexp.MustCompile(`(?i)mTFR/([^/\n]+)`)
	reJKRefTag  = regexp.MustCompile(`(?i)\b(?:RTGS|NEFT|IMPS)-([A-Za-z0-9]+)`)
	reJKUTR     = regexp.MustCompile(`(?i)\b(?:UTR|TRN)\s*(?:No)?\.?\s*:?\s*([A-Za-z0-9]+)`)
	reJKAcct    = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reJKBal     = regexp.MustCompile(`(?i)Bal(?:ance)?\s*:?\s*INR\s*([0-9,]+(?:\.\d{2})?)`)
)

var JK = &common.RuleSet{
	Name:     "Jammu & Kashmir Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"JKBANK", "JKBNK", "JKB"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reJKDebit, reJKCred),
	},
	Merchant: []common.MerchantFunc{jkMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reJKRefTag, reJKUTR),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reJKAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reJKBal),
	},
}

func jkMerchant(msg, sender string) (string, bool) {
	if m := reJKTowards.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reJKMTFR.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
