package common

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Verdict is the outcome of one reject-filter rule.
type Verdict int

const (
	// Continue defers to the next rule in the chain.
	Continue Verdict = iota
	// Accept declares the message a transaction, overriding later rules.
	Accept
	// Reject discards the message.
	Reject
)

// Step function shapes. Every extractor reports a miss as (zero, false) and
// the pipeline moves on to the next candidate; there are no errors.
type (
	RejectFunc   func(lower string) Verdict
	AmountFunc   func(msg string) (decimal.Decimal, bool)
	TypeFunc     func(lower string) (TransactionType, bool)
	MerchantFunc func(msg, sender string) (string, bool)
	TextFunc     func(msg string) (string, bool)
	CurrencyFunc func(msg string) (string, bool)
	CardFunc     func(lower string) (bool, bool)
	MandateFunc  func(msg string) (*Mandate, bool)
)

// SenderRule decides whether a rule set owns a sender ID. Exact entries are
// checked first, then substring entries, then regex patterns; all matching
// is against the uppercased sender.
type SenderRule struct {
	Exact    []string
	Contains []string
	Patterns []*regexp.Regexp
}

func (r SenderRule) Matches(sender string) bool {
	upper := strings.ToUpper(sender)
	for _, e := range r.Exact {
		if upper == e {
			return true
		}
	}
	for _, c := range r.Contains {
		if strings.Contains(upper, c) {
			return true
		}
	}
	for _, p := range r.Patterns {
		if p.MatchString(upper) {
			return true
		}
	}
	return false
}

// RuleSet is one institution's configuration: a sender rule, a default
// currency, and per-step extractor lists that are tried before the shared
// defaults. A nil/empty list means "base behavior only".
type RuleSet struct {
	Name     string
	Currency string
	Senders  SenderRule

	// AllowVPA keeps raw payment addresses as merchant names where the
	// institution's own format makes the address the best available label.
	AllowVPA bool

	Reject      []RejectFunc
	Amount      []AmountFunc
	Type        []TypeFunc
	Merchant    []MerchantFunc
	Reference   []TextFunc
	Account     []TextFunc
	FromAcct    []TextFunc
	ToAcct      []TextFunc
	Balance     []AmountFunc
	CreditLimit []AmountFunc
	CurrencyIn  []CurrencyFunc
	Card        []CardFunc

	// Mandate parses subscription-lifecycle notifications (creation,
	// preview); those messages are rejected by Parse but still carry data
	// the caller may want.
	Mandate MandateFunc
}

// Parse runs the full pipeline for this rule set. It returns nil when the
// message is rejected or when amount or type cannot be resolved.
func (rs *RuleSet) Parse(msg, sender string, timestamp int64) *Transaction {
	lower := strings.ToLower(msg)

	if rs.verdict(lower) != Accept {
		return nil
	}

	amount, ok := rs.extractAmount(msg)
	if !ok {
		return nil
	}
	txType, ok := rs.extractType(lower)
	if !ok {
		return nil
	}

	tx := &Transaction{
		Amount:    amount,
		Currency:  rs.extractCurrency(msg),
		Type:      txType,
		SMSBody:   msg,
		Sender:    sender,
		Timestamp: timestamp,
		BankName:  rs.Name,
	}

	if m, ok := rs.extractMerchant(msg, sender); ok {
		tx.Merchant = m
	}
	if ref, ok := firstText(rs.Reference, baseRefPats, msg); ok {
		tx.Reference = strings.TrimSpace(ref)
	}
	if acct, ok := firstText(rs.Account, baseAccountPats, msg); ok {
		if last4 := Last4(acct); last4 != "" {
			tx.AccountLast4 = last4
		}
	}
	if from, ok := firstText(rs.FromAcct, nil, msg); ok {
		tx.FromAccount = strings.TrimSpace(from)
	}
	if to, ok := firstText(rs.ToAcct, nil, msg); ok {
		tx.ToAccount = strings.TrimSpace(to)
	}
	if bal, ok := rs.extractBalance(msg); ok {
		tx.Balance = &bal
	}
	if txType == Credit {
		if lim, ok := rs.extractCreditLimit(msg); ok {
			tx.CreditLimit = &lim
		}
	}
	tx.IsFromCard = rs.detectCard(lower)

	return tx
}

func (rs *RuleSet) verdict(lower string) Verdict {
	for _, f := range rs.Reject {
		if v := f(lower); v != Continue {
			return v
		}
	}
	return BaseRejectFilter(lower)
}

// BaseRejectFilter is the shared message-is-transaction classifier. It is
// always the last rule in a reject chain and never returns Continue.
func BaseRejectFilter(lower string) Verdict {
	// OTP / verification
	if containsAny(lower, "otp", "one time password", "verification code") {
		return Reject
	}
	// Promotional
	if containsAny(lower, "offer", "discount", "cashback offer", "win ") {
		return Reject
	}
	// Payment / collect requests
	if containsAny(lower, "has requested", "payment request", "collect request",
		"requesting payment", "requests rs", "ignore if already paid") {
		return Reject
	}
	// Merchant-side acknowledgments
	if strings.Contains(lower, "have received payment") {
		return Reject
	}
	// Dues and reminders
	if containsAny(lower, "is due", "min amount due", "minimum amount due",
		"in arrears", "is overdue", "ignore if paid") {
		return Reject
	}
	if strings.Contains(lower, "pls pay") && strings.Contains(lower, "min of") {
		return Reject
	}
	// Future-dated mandate previews
	if strings.Contains(lower, "will be debited") || strings.Contains(lower, "will be deducted") {
		return Reject
	}
	// Declined / failed
	if containsAny(lower, "declined", "transaction failed", "could not be processed") {
		return Reject
	}

	for _, kw := range transactionKeywords {
		if strings.Contains(lower, kw) {
			return Accept
		}
	}
	return Reject
}

var transactionKeywords = []string{
	"debited", "credited", "withdrawn", "deposited",
	"spent", "received", "transferred", "paid",
}

var investmentKeywords = []string{
	"iccl", "indian clearing corporation", "nse clearing", "clearing corporation",
	"groww", "zerodha", "upstox", "kuvera", "paytm money", "etmoney",
	"smallcase", "angel one", "angel broking", "5paisa",
	"icici securities", "icici direct", "hdfc securities", "kotak securities",
	"motilal oswal", "sharekhan", "axis direct", "sbi securities",
	"mutual fund", "elss", "demat", "stockbroker",
}

// IsInvestment reports whether the message looks like a brokerage or
// clearing-house movement.
func IsInvestment(lower string) bool {
	return containsAny(lower, investmentKeywords...)
}

// BaseType is the default direction classifier: expense keywords are checked
// before income keywords, since spend phrasing is the more specific signal.
func BaseType(lower string) (TransactionType, bool) {
	if IsInvestment(lower) {
		return Investment, true
	}
	switch {
	case containsAny(lower, "debited", "withdrawn", "spent", "charged", "paid", "purchase", "deducted"):
		return Expense, true
	case containsAny(lower, "credited", "deposited", "received", "refund"):
		return Income, true
	case strings.Contains(lower, "cashback") && !strings.Contains(lower, "earn cashback"):
		return Income, true
	}
	return "", false
}

func (rs *RuleSet) extractAmount(msg string) (decimal.Decimal, bool) {
	for _, f := range rs.Amount {
		if v, ok := f(msg); ok {
			return v, true
		}
	}
	if raw, ok := FirstMatch(baseAmountPats, msg); ok {
		return ParseAmount(raw)
	}
	return decimal.Zero, false
}

func (rs *RuleSet) extractType(lower string) (TransactionType, bool) {
	for _, f := range rs.Type {
		if v, ok := f(lower); ok {
			return v, true
		}
	}
	return BaseType(lower)
}

func (rs *RuleSet) extractMerchant(msg, sender string) (string, bool) {
	for _, f := range rs.Merchant {
		raw, ok := f(msg, sender)
		if !ok {
			continue
		}
		name := CleanMerchant(raw)
		if ValidMerchant(name, rs.AllowVPA) {
			return name, true
		}
	}
	if raw, ok := FirstMatch(baseMerchantPats, msg); ok {
		name := CleanMerchant(strings.TrimSpace(raw))
		if ValidMerchant(name, rs.AllowVPA) {
			return name, true
		}
	}
	return "", false
}

func (rs *RuleSet) extractBalance(msg string) (decimal.Decimal, bool) {
	for _, f := range rs.Balance {
		if v, ok := f(msg); ok {
			return v, true
		}
	}
	if raw, ok := FirstMatch(baseBalancePats, msg); ok {
		return ParseAmount(raw)
	}
	return decimal.Zero, false
}

func (rs *RuleSet) extractCreditLimit(msg string) (decimal.Decimal, bool) {
	for _, f := range rs.CreditLimit {
		if v, ok := f(msg); ok {
			return v, true
		}
	}
	if raw, ok := FirstMatch(baseLimitPats, msg); ok {
		return ParseAmount(raw)
	}
	return decimal.Zero, false
}

func (rs *RuleSet) extractCurrency(msg string) string {
	for _, f := range rs.CurrencyIn {
		if c, ok := f(msg); ok {
			return c
		}
	}
	return rs.Currency
}

func (rs *RuleSet) detectCard(lower string) bool {
	for _, f := range rs.Card {
		if v, ok := f(lower); ok {
			return v
		}
	}
	return BaseCardDetect(lower)
}

// BaseCardDetect: account phrasing wins over card phrasing, since "from A/c
// via Card" style messages are account debits.
func BaseCardDetect(lower string) bool {
	if containsAny(lower, "a/c", "account", "ac ", "acc ", "savings a/c", "current a/c") {
		return false
	}
	if containsAny(lower, "card ending", "card xx", "debit card", "credit card",
		"card no.", "card number", "card *", "card x") {
		return true
	}
	return strings.Contains(lower, "ending") && reCardTail.MatchString(lower)
}

var reCardTail = regexp.MustCompile(`(?:xx|\*{2,})?\d{4}`)

func firstText(fns []TextFunc, fallback []*regexp.Regexp, msg string) (string, bool) {
	for _, f := range fns {
		if v, ok := f(msg); ok {
			return v, true
		}
	}
	return FirstMatch(fallback, msg)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// AmountPatterns builds an AmountFunc from an ordered pattern list using the
// default comma-thousands numeral convention.
func AmountPatterns(pats ...*regexp.Regexp) AmountFunc {
	return func(msg string) (decimal.Decimal, bool) {
		for _, p := range pats {
			if m := p.FindStringSubmatch(msg); len(m) > 1 {
				if v, ok := ParseAmount(m[1]); ok {
					return v, true
				}
			}
		}
		return decimal.Zero, false
	}
}

// FixedType builds a TypeFunc that always resolves to t. Wallet and credit
// line products use it: every spend there is borrowed money.
func FixedType(t TransactionType) TypeFunc {
	return func(string) (TransactionType, bool) { return t, true }
}

// TextPatterns builds a TextFunc from an ordered pattern list.
func TextPatterns(pats ...*regexp.Regexp) TextFunc {
	return func(msg string) (string, bool) {
		return FirstMatch(pats, msg)
	}
}

// MerchantPatterns builds a MerchantFunc from an ordered pattern list. The
// sender is ignored; cleaning and validation happen after extraction.
func MerchantPatterns(pats ...*regexp.Regexp) MerchantFunc {
	return func(msg, _ string) (string, bool) {
		return FirstMatch(pats, msg)
	}
}
