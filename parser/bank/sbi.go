package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reSBISpent       = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+spent`)
	reSBIDebitedBy   = regexp.MustCompile(`(?i)debited\s+by\s+(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	reSBICreditedBy  = regexp.MustCompile(`(?i)credited\s+by\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{1,2})?)`)
	reSBIWithdrawn   = regexp.MustCompile(`(?i)withdrawn\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	reSBITransferred = regexp.MustCompile(`(?i)transferred\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	reSBIYonoCash    = regexp.MustCompile(`(?i)Yono\s+Cash\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	reSBITrfTo       = regexp.MustCompile(`(?i)trf\s+to\s+([^.\n]+?)(?:\s+Ref|$)`)
	reSBITransferFrm = regexp.MustCompile(`(?i)transfer\s+from\s+([^.\n]+?)(?:\s+Ref|$)`)
	reSBIPaidToVPA   = regexp.MustCompile(`(?i)paid\s+to\s+([\w.-]+)@[\w]+`)
	reSBIDoneAt      = regexp.MustCompile(`(?i)done\s+at\s+([^.\n]+?)(?:\s+on\s+|$)`)
	reSBIATMAt       = regexp.MustCompile(`(?i)ATM\s+(?:withdrawal\s+)?(?:at\s+)?([^.\n]+?)(?:\s+on|\s+Avl)`)
	reSBIAcct        = regexp.MustCompile(`(?i)A/c\s+([X\*]*\d+)`)
	reSBIAcctEnding  = regexp.MustCompile(`(?i)A/c\s+ending\s+(\d{4})`)
	reSBIAvlBal      = regexp.MustCompile(`(?i)Avl\s+Bal\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	reSBIUpdatedBal  = regexp.MustCompile(`(?i)updated\s+available\s+balance\s+is\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	reSBIAvlLimit    = regexp.MustCompile(`(?i)available\s+limit\s+is\s+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	reSBITxnNo       = regexp.MustCompile(`(?i)transaction\s+number\s+([\w\-]+)`)
	reSBITxnHash     = regexp.MustCompile(`(?i)Txn#\s*(\w+)`)
	reSBIMandateTo   = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+from|\s+A/c|$)`)
	reSBIUMN         = regexp.MustCompile(`(?i)UMN:([^.\s]+)`)
	reSBIMandateAmt  = regexp.MustCompile(`(?i)Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
)

var SBI = &common.RuleSet{
	Name:     "State Bank of India",
	Currency: "INR",
	Senders: common.SenderRule{
		Exact:    []string{"SBIBK"},
		Contains: []string{"SBIINB", "SBIUPI", "SBICRD", "ATMSBI", "SBI"},
	},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reSBISpent, reSBIDebitedBy, reSBICreditedBy,
			reSBIWithdrawn, reSBITransferred, reSBIYonoCash),
	},
	Type:     []common.TypeFunc{sbiType},
	Merchant: []common.MerchantFunc{sbiMerchant},
	Reference: []common.TextFunc{
		common.TextPatterns(reSBITxnNo, reSBITxnHash),
	},
	Account: []common.TextFunc{
		common.TextPatterns(reSBIAcctEnding, reSBIAcct),
	},
	Balance: []common.AmountFunc{
		common.AmountPatterns(reSBIUpdatedBal, reSBIAvlBal),
	},
	CreditLimit: []common.AmountFunc{
		common.AmountPatterns(reSBIAvlLimit),
	},
	Mandate: sbiMandate,
}

func sbiType(lower string) (common.TransactionType, bool) {
	if strings.Contains(lower, "trf to") || strings.Contains(lower, "transfer from") {
		return common.Transfer, true
	}
	return "", false
}

func sbiMerchant(msg, sender string) (string, bool) {
	if m := reSBIPaidToVPA.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	if m := reSBITrfTo.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reSBITransferFrm.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reSBIDoneAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reSBIATMAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func sbiMandate(msg string) (*common.Mandate, bool) {
	lower := strings.ToLower(msg)
	if !strings.Contains(lower, "mandate") && !strings.Contains(lower, "will be debited") {
		return nil, false
	}
	m := reSBIMandateAmt.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	amount, ok := common.ParseAmount(m[1])
	if !ok {
		return nil, false
	}
	md := &common.Mandate{Amount: amount, BankName: "State Bank of India"}
	if t := reSBIMandateTo.FindStringSubmatch(msg); t != nil {
		md.Merchant = common.CleanMerchant(strings.TrimSpace(t[1]))
	}
	if u := reSBIUMN.FindStringSubmatch(msg); u != nil {
		md.UMN = u[1]
	}
	return md, true
}
