package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aqlanhadi/smstx/parser/common"
)

// CreateTransactions bulk inserts extracted transactions. Duplicates by
// natural key (sender, reference, message_timestamp) and by derived id are
// silently skipped, so re-importing the same message log is safe.
// Returns the number of rows actually inserted.
func (db *DB) CreateTransactions(ctx context.Context, transactions []*common.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	const sql = `
		INSERT INTO transactions (
			id, amount, currency, type, merchant, reference, account_last4,
			balance, credit_limit, is_from_card, from_account, to_account,
			sms_body, sender, message_timestamp, bank_name
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, tx := range transactions {
		batch.Queue(sql,
			tx.ID(), tx.Amount, tx.Currency, string(tx.Type), tx.Merchant,
			tx.Reference, tx.AccountLast4, tx.Balance, tx.CreditLimit,
			tx.IsFromCard, tx.FromAccount, tx.ToAccount,
			tx.SMSBody, tx.Sender, tx.Timestamp, tx.BankName,
		)
	}

	br := db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for range transactions {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert transaction: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// CountTransactions reports the stored transaction total, optionally scoped
// to one institution.
func (db *DB) CountTransactions(ctx context.Context, bankName string) (int64, error) {
	var count int64
	var err error
	if bankName == "" {
		err = db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	} else {
		err = db.Pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM transactions WHERE bank_name = $1`, bankName).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
