package bank

import (
	"regexp"
	"strings"

	"github.com/aqlanhadi/smstx/parser/common"
)

var (
	reFedINRSpent     = regexp.MustCompile(`(?i)INR\s+([\d,]+(?:\.\d{2})?)\s+spent`)
	reFedReceived     = regexp.MustCompile(`(?i)received\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	reFedDebited      = regexp.MustCompile(`(?i)Rs\.?\s*([\d,]+(?:\.\d{2})?)\s+debited`)
	reFedSent         = regexp.MustCompile(`(?i)sent\s+Rs\.?\s*([\d,]+(?:\.\d{2})?)`)
	reFedPaymentOf    = regexp.MustCompile(`(?i)payment\s+of\s+(?:Rs\.?|INR)\s*([\d,]+(?:\.\d{2})?)`)
	reFedEMandateFor  = regexp.MustCompile(`(?i)payment\s+of\s+(?:Rs\.?|INR)\s*[\d,]+(?:\.\d{2})?\s+for\s+([^.\n]+?)\s+on\s`)
	reFedVPA          = regexp.MustCompile(`(?i)(?:to|from)\s+VPA\s+([A-Za-z0-9._-]+@[A-Za-z]+)`)
	reFedCreditCardAt = regexp.MustCompile(`(?i)spent\s+on\s+.*?Card.*?\s+at\s+([^.\n]+?)(?:\s+on|\.)`)
	reFedTo           = regexp.MustCompile(`(?i)to\s+([^.\n]+?)(?:\s+on|\s+Ref|\.)`)
	reFedFrom         = regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\s+on|\s+Ref|\.)`)
	reFedCardEnding   = regexp.MustCompile(`(?i)Card\s+ending\s+(?:with\s+)?[X\*]*(\d{4})`)
	reFedMandateMax   = regexp.MustCompile(`(?i)(?:for\s+a\s+)?maximum\s+amount\s+of\s+Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	reFedMandateStart = regexp.MustCompile(`(?i)starting\s+from\s+(\d{2}-\d{2}-\d{4})`)
	reFedMandateOn    = regexp.MustCompile(`(?i)(?:created\s+a\s+mandate\s+on|mandate\s+on)\s+([^.\n]+?)(?:\s+for|\s*$)`)
	reFedMandateRef   = regexp.MustCompile(`(?i)Mandate\s+Ref\s+No-?\s*([^.\s]+)`)
)

// Federal keeps raw payment addresses as merchants: the bank's UPI alerts
// name the counterparty only by address.
var Federal = &common.RuleSet{
	Name:     "Federal Bank",
	Currency: "INR",
	Senders: common.SenderRule{
		Contains: []string{"FEDBNK", "FEDERAL", "FEDFIB"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^[A-Z]{2}-FEDBNK-S$`)},
	},
	AllowVPA: true,
	Reject:   []common.RejectFunc{federalReject},
	Amount: []common.AmountFunc{
		common.AmountPatterns(reFedINRSpent, reFedReceived, reFedDebited, reFedSent, reFedPaymentOf),
	},
	Type:     []common.TypeFunc{federalType},
	Merchant: []common.MerchantFunc{federalMerchant},
	Account: []common.TextFunc{
		common.TextPatterns(reFedCardEnding),
	},
	Mandate: federalMandate,
}

// Mandate lifecycle alerts (created, declined) are not transactions even
// though they mention amounts and dates. A processed e-mandate payment is a
// real debit and has no standard transaction verb, so it is accepted here.
func federalReject(lower string) common.Verdict {
	if strings.Contains(lower, "created a mandate") || strings.Contains(lower, "mandate ref no") {
		return common.Reject
	}
	if strings.Contains(lower, "mandate") && strings.Contains(lower, "declined") {
		return common.Reject
	}
	if (strings.Contains(lower, "e-mandate") || strings.Contains(lower, "payment of")) &&
		strings.Contains(lower, "processed successfully") {
		return common.Accept
	}
	return common.Continue
}

func federalType(lower string) (common.TransactionType, bool) {
	if strings.Contains(lower, "spent on") && strings.Contains(lower, "credit card") {
		return common.Credit, true
	}
	if (strings.Contains(lower, "e-mandate") || strings.Contains(lower, "payment of")) &&
		strings.Contains(lower, "processed successfully") {
		return common.Expense, true
	}
	return "", false
}

func federalMerchant(msg, sender string) (string, bool) {
	if m := reFedCreditCardAt.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reFedVPA.FindStringSubmatch(msg); m != nil {
		return common.ResolveVPABrand(m[1]), true
	}
	// Processed e-mandate payments keep the mandate identifier in the name,
	// "Streaming Service via e-mandate ID: xyz789abc".
	if m := reFedEMandateFor.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reFedTo.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := reFedFrom.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func federalMandate(msg string) (*common.Mandate, bool) {
	lower := strings.ToLower(msg)
	if !strings.Contains(lower, "mandate") {
		return nil, false
	}
	m := reFedMandateMax.FindStringSubmatch(msg)
	if m == nil {
		return nil, false
	}
	amount, ok := common.ParseAmount(m[1])
	if !ok {
		return nil, false
	}
	md := &common.Mandate{Amount: amount, BankName: "Federal Bank"}
	if d := reFedMandateStart.FindStringSubmatch(msg); d != nil {
		md.NextDeductionDate = d[1]
	}
	if t := reFedMandateOn.FindStringSubmatch(msg); t != nil {
		md.Merchant = common.CleanMerchant(strings.TrimSpace(t[1]))
	}
	if u := reFedMandateRef.FindStringSubmatch(msg); u != nil {
		md.UMN = u[1]
	}
	return md, true
}
