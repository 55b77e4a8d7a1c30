package common

import "regexp"

// Shared fallback patterns, compiled once and consulted by every rule set
// after its own patterns miss. Capture group 1 is always the value.

// Amount patterns.
var (
	reAmountRs     = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{1,2})?)`)
	reAmountINR    = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{1,2})?)`)
	reAmountRupee  = regexp.MustCompile(`₹\s*([0-9,]+(?:\.\d{1,2})?)`)
	baseAmountPats = []*regexp.Regexp{reAmountRs, reAmountINR, reAmountRupee}
)

// Reference patterns.
var (
	reRefGeneric = regexp.MustCompile(`(?i)(?:Ref|Reference|Txn|Transaction)(?:\s+No)?[:.\s]+([A-Za-z0-9]+)`)
	reRefUPI     = regexp.MustCompile(`(?i)UPI[:\s]+([0-9]+)`)
	reRefNumber  = regexp.MustCompile(`(?i)Reference\s+Number[:\s]+([A-Za-z0-9]+)`)
	baseRefPats  = []*regexp.Regexp{reRefGeneric, reRefUPI, reRefNumber}
)

// Account-mask patterns. Captures keep every visible digit; Last4 trims.
var (
	reAcctMask      = regexp.MustCompile(`(?i)(?:A/c|Account|Acct)(?:\s+No)?\.?\s+(?:[X\*]+)?(\d+)`)
	reCardMask      = regexp.MustCompile(`(?i)Card\s+(?:[X\*]+)?(\d{4})`)
	reAcctTail      = regexp.MustCompile(`(?i)(?:A/c|Account)\S*\s+\S*?(\d{4})(?:\s|$)`)
	baseAccountPats = []*regexp.Regexp{reAcctMask, reCardMask, reAcctTail}
)

// Balance patterns.
var (
	reBalAvl        = regexp.MustCompile(`(?i)(?:Avl\s+Bal|Available\s+Balance|Avail\.?\s+Bal|Balance|Bal)[:\s]+(?:is\s+)?(?:Rs\.?|INR)?\s*([0-9,]+(?:\.\d{1,2})?)`)
	reBalUpdated    = regexp.MustCompile(`(?i)(?:Updated|Remaining)\s+Balance[:\s]+(?:Rs\.?|INR)?\s*([0-9,]+(?:\.\d{1,2})?)`)
	baseBalancePats = []*regexp.Regexp{reBalAvl, reBalUpdated}
)

// Credit-limit patterns, shared because the phrasing barely varies by bank.
var baseLimitPats = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Available\s+limit\s+Rs\.([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Available\s+limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Avl\s+Lmt:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Avail\s+Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Available\s+Credit\s+Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)(?:^|\s)Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
}

// Merchant boundary patterns: text between a preposition and a terminator.
var (
	reMerchTo        = regexp.MustCompile(`(?i)to\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref|\s+UPI)`)
	reMerchFrom      = regexp.MustCompile(`(?i)from\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref|\s+UPI)`)
	reMerchAt        = regexp.MustCompile(`(?i)at\s+([^.\n]+?)(?:\s+on|\s+Ref)`)
	reMerchFor       = regexp.MustCompile(`(?i)for\s+([^.\n]+?)(?:\s+on|\s+at|\s+Ref)`)
	baseMerchantPats = []*regexp.Regexp{reMerchTo, reMerchFrom, reMerchAt, reMerchFor}
)

// Currency code immediately before an amount ("AED 30.16").
var reCurrencyCode = regexp.MustCompile(`([A-Z]{3})\s*[0-9,*]+(?:\.\d{2})?`)

// Name-cleaning substitutions applied to every merchant candidate.
var (
	reCleanParens   = regexp.MustCompile(`\s*\(.*?\)\s*$`)
	reCleanRef      = regexp.MustCompile(`(?i)\s+Ref\s+No.*`)
	reCleanDate     = regexp.MustCompile(`\s+on\s+\d{2}.*`)
	reCleanUPI      = regexp.MustCompile(`(?i)\s+UPI.*`)
	reCleanTime     = regexp.MustCompile(`\s+at\s+\d{2}:\d{2}.*`)
	reCleanDash     = regexp.MustCompile(`\s*-\s*$`)
	reCleanPvtLtd   = regexp.MustCompile(`(?i)(\s+PVT\.?\s*LTD\.?|\s+PRIVATE\s+LIMITED)$`)
	reCleanLtd      = regexp.MustCompile(`(?i)(\s+LTD\.?|\s+LIMITED)$`)
	cleaningPasses  = []*regexp.Regexp{reCleanParens, reCleanRef, reCleanDate, reCleanUPI, reCleanTime, reCleanDash, reCleanPvtLtd, reCleanLtd}
)

// Date fragments like "Jul 10 2024" would otherwise look like currency codes.
var monthAbbrevs = map[string]bool{
	"JAN": true, "FEB": true, "MAR": true, "APR": true, "MAY": true, "JUN": true,
	"JUL": true, "AUG": true, "SEP": true, "OCT": true, "NOV": true, "DEC": true,
}

// CurrencyCode finds an ISO 4217 code written immediately before an amount,
// as Gulf and US institutions format them ("AED 91.00", "USD 1,200.50").
func CurrencyCode(msg string) (string, bool) {
	for _, m := range reCurrencyCode.FindAllStringSubmatch(msg, -1) {
		if !monthAbbrevs[m[1]] {
			return m[1], true
		}
	}
	return "", false
}

// FirstMatch returns capture group 1 of the first pattern that matches.
func FirstMatch(pats []*regexp.Regexp, msg string) (string, bool) {
	for _, p := range pats {
		if m := p.FindStringSubmatch(msg); len(m) > 1 {
			return m[1], true
		}
	}
	return "", false
}
