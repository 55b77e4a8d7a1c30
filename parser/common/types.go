package common

import (
	"crypto/md5"
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a money movement.
type TransactionType string

const (
	Expense    TransactionType = "EXPENSE"
	Income     TransactionType = "INCOME"
	Credit     TransactionType = "CREDIT" // borrowed-money card/wallet spend
	Transfer   TransactionType = "TRANSFER"
	Investment TransactionType = "INVESTMENT"
)

// Transaction is the structured record extracted from a single bank SMS.
// Amount and Type are always set; everything else is best-effort.
type Transaction struct {
	Amount       decimal.Decimal  `json:"amount"`
	Currency     string           `json:"currency"`
	Type         TransactionType  `json:"type"`
	Merchant     string           `json:"merchant,omitempty"`
	Reference    string           `json:"reference,omitempty"`
	AccountLast4 string           `json:"account_last4,omitempty"`
	Balance      *decimal.Decimal `json:"balance,omitempty"`
	CreditLimit  *decimal.Decimal `json:"credit_limit,omitempty"`
	IsFromCard   bool             `json:"is_from_card"`
	FromAccount  string           `json:"from_account,omitempty"`
	ToAccount    string           `json:"to_account,omitempty"`

	// Provenance, always populated.
	SMSBody   string `json:"sms_body"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
	BankName  string `json:"bank_name"`
}

// ID derives a stable identifier from sender, normalized amount and
// timestamp. The consuming store combines this with Reference for
// deduplication.
func (t *Transaction) ID() string {
	data := fmt.Sprintf("%s|%s|%d", t.Sender, t.Amount.StringFixed(2), t.Timestamp)
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// Mandate describes a recurring-payment agreement notification: a creation
// confirmation or a future-dated payment preview. These are not transactions
// and are surfaced through a separate entry point.
type Mandate struct {
	Amount            decimal.Decimal `json:"amount"`
	Merchant          string          `json:"merchant"`
	NextDeductionDate string          `json:"next_deduction_date,omitempty"`
	UMN               string          `json:"umn,omitempty"`
	BankName          string          `json:"bank_name"`
}
