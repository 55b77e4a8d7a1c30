package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reYesSpent  = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{2})?)\s+spent`)
	reYesDebit  = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reYesCred   = regexp.MustCompile(`(?i)(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reYesAt     = regexp.MustCompile(`(?i)\bat\s+([^.\n]+?)\s+on\b`)
	reYesCard   = regexp.MustCompile(`(?i)Card\s+(?:no\.?\s+)?[X\*]+(\d{4})`)
	reYesAcct   = regexp.MustCompile(`(?i)A/?c\s+[X\*]+(\d{4})`)
	reYesAvlLmt = regexp.MustCompile(`(?i)Avl\s*Lmt\s*:?\s*(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)`)
	reYesBal    = regexp.MustCompile(`(?i)Avl\s*Bal\s*:?\s*(?:INR|Rs\.?)\s*([0-9,]+(?:\.\d{2})?)`)
)

var Yes = &common.RuleSet{
	Name:     "YES Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"YESBNK", "YESBANK"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reYesSpent, reYesDebit, reYesCred),
	},
	Type: []common.TypeFunc{yesType},
	Merchant: []common.MerchantFunc{
		common.MerchantPatterns(reYesAt),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reYesCard, reYesAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reYesBal),
	},
	CreditLimit: []common.AmountFunc{
		common.AmountPatterns(reYesAvlLmt),
	},
}

// Card spends carry an available limit line instead of an account balance.
func yesType(lower string) (common.TransactionType, bool) {
	if strings.Contains(lower, "avl lmt") && strings.Contains(lower, "spent") {
		return common.Credit, true
	}
	return "", false
}
