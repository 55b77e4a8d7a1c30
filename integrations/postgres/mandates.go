package postgres

import (
	"context"
	"fmt"

	"github.com/aqlanhadi/smstx/parser/common"
)

// UpsertMandate stores a recurring-payment mandate. A repeated notification
// for the same reference number updates the amount and next deduction date
// instead of creating a second row.
func (db *DB) UpsertMandate(ctx context.Context, md *common.Mandate) error {
	if md.UMN != "" {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO mandates (amount, merchant, next_deduction_date, umn, bank_name)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (umn) WHERE umn != ''
			DO UPDATE SET amount = EXCLUDED.amount,
			              merchant = EXCLUDED.merchant,
			              next_deduction_date = EXCLUDED.next_deduction_date
		`, md.Amount, md.Merchant, md.NextDeductionDate, md.UMN, md.BankName)
		if err != nil {
			return fmt.Errorf("failed to upsert mandate: %w", err)
		}
		return nil
	}

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO mandates (amount, merchant, next_deduction_date, umn, bank_name)
		VALUES ($1, $2, $3, $4, $5)
	`, md.Amount, md.Merchant, md.NextDeductionDate, md.UMN, md.BankName)
	if err != nil {
		return fmt.Errorf("failed to insert mandate: %w", err)
	}
	return nil
}
