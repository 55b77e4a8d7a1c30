package bank

import (
	"regexp"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reIndianDebit   = regexp.MustCompile(`(?i)debited\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIndianCredit  = regexp.MustCompile(`(?i)credited\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIndianRsDeb   = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+debited`)
	reIndianRsCr    = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+credited`)
	reIndianVPA     = regexp.MustCompile(`(?i)(?:to|from)\s+VPA\s+([A-Za-z0-9.\-_]+@[A-Za-z]+)`)
	reIndianAcct    = regexp.MustCompile(`(?i)A/?c\s+\*+(\d{4})`)
	reIndianBal     = regexp.MustCompile(`(?i)Bal\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIndianMandAmt = regexp.MustCompile(`(?i)mandate\s+for\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reIndianMandTo  = regexp.MustCompile(`(?i)mandate\s+for\s+Rs\.?\s*[0-9,.]+\s+to\s+([^.\n]+?)(?:\s+on|\s+with|\.|$)`)
	reIndianMandDt  = regexp.MustCompile(`(?i)\bon\s+(\d{2}[-/]\d{2}[-/]\d{4})`)
	reIndianUMN     = regexp.MustCompile(`(?i)UMN\s*:?\s*([A-Za-z0-9@.\-]+)`)
)

var Indian = &common.RuleSet{
	Name:     "Indian Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"INDIANBANK", "INDIANBK", "INDBNK", "INDIAN BANK"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reIndianDebit, reIndianCredit, reIndianRsDeb, reIndianRsCr),
	},
	Merchant: []common.MerchantFunc{indianMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reIndianAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reIndianBal),
	},
	Mandate: indianMandate,
}

func indianMerchant(msg, sender string) (string, bool) {
	if m := reIndianVPA.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	return "", false
}

func indianMandate(msg string) (*common.Mandate, bool) {
	m := reIndianMandAmt.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	amt, ok := common.ParseAmount(m[1])
	if !ok {
		return nil, false
	}
	md := &common.Mandate{Amount: amt, BankName: "Indian Bank"}
	if t := reIndianMandTo.FindStringSubmatch(msg); t != nil {
		md.Merchant = common.CleanMerchant(t[1])
	}
	if d := reIndianMandDt.FindStringSubmatch(msg); d != nil {
		md.NextDeductionDate = d[1]
	}
	if u := reIndianUMN.FindStringSubmatch(msg); u != nil {
		md.UMN = u[1]
	}
	return md, true
}
