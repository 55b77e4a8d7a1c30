package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reHDFCSpentAt    = regexp.MustCompile(`(?i)At\s+\+?([^O]+?)\s+On`)
	reHDFCAt         = regexp.MustCompile(`(?i)at\s+([^@\s]+(?:@[^\s]+)?(?:\s+[^\s]+)?)(?:\s+by\s+|\s+on\s+|$)`)
	reHDFCFromVPA    = regexp.MustCompile(`(?i)from\s+VPA\s*([^@\s]+)@[^\s]+\s*\(UPI\s+\d+\)`)
	reHDFCTowards    = regexp.MustCompile(`(?i)towards\s+([^\n]+?)(?:\s+UMRN|\s+ID:|\s+Alert:|$)`)
	reHDFCForColon   = regexp.MustCompile(`(?i)For:\s+([^\n]+?)(?:\s+From|\s+Via|$)`)
	reHDFCToName     = regexp.MustCompile(`(?i)To\s+([^\n]+?)(?:\s+On|\s+Ref)`)
	reHDFCCardX      = regexp.MustCompile(`(?i)Card\s+x(\d{4})`)
	reHDFCAcct       = regexp.MustCompile(`(?i)HDFC\s+Bank\s+(?:A/c\s+)?([X\*]*\d+)`)
	reHDFCAvlBal     = regexp.MustCompile(`(?i)Avl\s+bal:?\s*INR\s*([0-9,]+(?:\.\d{2})?)`)
	reHDFCAvailBal   = regexp.MustCompile(`(?i)Available\s+Balance:?\s*INR\s*([0-9,]+(?:\.\d{2})?)`)
	reHDFCBalRs      = regexp.MustCompile(`(?i)Bal\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reHDFCMandateAmt = regexp.MustCompile(`(?i)INR\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reHDFCMandateOn  = regexp.MustCompile(`(?i)will\s+be\s+debited\s+on\s+(\d{2}/\d{2}/\d{4})`)
	reHDFCUMRN       = regexp.MustCompile(`(?i)UMRN\s*:?\s*([A-Za-z0-9]+)`)
)

// HDFC covers account, card and UPI alerts plus E-Mandate notifications.
var HDFC = &common.RuleSet{
	Name:     "HDFC Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Exact:    []string{"HDFCBK", "HDFCBANK", "HDFC", "HDFCB"},
		Contains: []string{"HDFCBK"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-HDFCBK(?:-[STPG])?$`)},
	},
	Merchant: []common.MerchantFunc{hdfcMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reHDFCAcct, reHDFCCardX),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reHDFCAvlBal, reHDFCAvailBal, reHDFCBalRs),
	},
	Mandate: hdfcMandate,
}

func hdfcMerchant(msg, sender string) (string, bool) {
	if m := reHDFCFromVPA.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	if m := reHDFCSpentAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reHDFCTowards.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reHDFCForColon.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reHDFCToName.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reHDFCAt.FindStringSubmatch(msg); m != nil {
		name := strings.TrimSpace(m[1])
		if strings.Contains(name, "@") {
			return common.ResolveVPABrand(name), true
		}
		return name, true
	}
	return "", false
}

// hdfcMandate reads E-Mandate creation alerts. These describe a future
// deduction, so the transaction pipeline rejects them and callers fetch the
// mandate separately.
func hdfcMandate(msg string) (*common.Mandate, bool) {
	lower := strings.ToLower(msg)
	if !strings.Contains(lower, "will be debited") && !strings.Contains(lower, "e-mandate") {
		return nil, false
	}
	m := reHDFCMandateAmt.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	amount, ok := common.ParseAmount(m[1])
	if !ok {
		return nil, false
	}
	md := &common.Mandate{Amount: amount, BankName: "HDFC Bank"}
	if d := reHDFCMandateOn.FindStringSubmatch(msg); d != nil {
		md.NextDeductionDate = d[1]
	}
	if t := reHDFCTowards.FindStringSubmatch(msg); t != nil {
		md.Merchant = common.CleanMerchant(strings.TrimSpace(t[1]))
	}
	if u := reHDFCUMRN.FindStringSubmatch(msg); u != nil {
		md.UMN = u[1]
	}
	return md, true
}
