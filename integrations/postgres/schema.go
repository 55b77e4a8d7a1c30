package postgres

import (
	"context"
	"fmt"
)

const ddl = `
-- Transactions extracted from bank SMS messages
CREATE TABLE IF NOT EXISTS transactions (
    id VARCHAR(32) PRIMARY KEY,
    amount NUMERIC(18,2) NOT NULL,
    currency VARCHAR(3) NOT NULL,
    type VARCHAR(10) NOT NULL,
    merchant VARCHAR(255) DEFAULT '',
    reference VARCHAR(255) DEFAULT '',
    account_last4 VARCHAR(4) DEFAULT '',
    balance NUMERIC(18,2),
    credit_limit NUMERIC(18,2),
    is_from_card BOOLEAN DEFAULT false,
    from_account VARCHAR(64) DEFAULT '',
    to_account VARCHAR(64) DEFAULT '',
    sms_body TEXT NOT NULL,
    sender VARCHAR(64) NOT NULL,
    message_timestamp BIGINT NOT NULL,
    bank_name VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),

    -- Natural key: the same alert delivered twice is one transaction
    UNIQUE(sender, reference, message_timestamp)
);

-- Recurring-payment mandates announced over SMS
CREATE TABLE IF NOT EXISTS mandates (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    amount NUMERIC(18,2) NOT NULL,
    merchant VARCHAR(255) DEFAULT '',
    next_deduction_date VARCHAR(20) DEFAULT '',
    umn VARCHAR(100) DEFAULT '',
    bank_name VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW()
);

-- One mandate per reference number
CREATE UNIQUE INDEX IF NOT EXISTS idx_mandates_umn ON mandates(umn) WHERE umn != '';

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_transactions_bank ON transactions(bank_name);
CREATE INDEX IF NOT EXISTS idx_transactions_timestamp ON transactions(message_timestamp);
CREATE INDEX IF NOT EXISTS idx_transactions_merchant ON transactions(merchant) WHERE merchant != '';
`

// migrateDDL adds new columns to existing tables
const migrateDDL = `
-- Add from_account / to_account columns if not exists
DO $$ BEGIN
    IF NOT EXISTS (SELECT 1 FROM information_schema.columns
                   WHERE table_name = 'transactions' AND column_name = 'from_account') THEN
        ALTER TABLE transactions ADD COLUMN from_account VARCHAR(64) DEFAULT '';
    END IF;
END $$;

DO $$ BEGIN
    IF NOT EXISTS (SELECT 1 FROM information_schema.columns
                   WHERE table_name = 'transactions' AND column_name = 'to_account') THEN
        ALTER TABLE transactions ADD COLUMN to_account VARCHAR(64) DEFAULT '';
    END IF;
END $$;

-- Add credit_limit column if not exists
DO $$ BEGIN
    IF NOT EXISTS (SELECT 1 FROM information_schema.columns
                   WHERE table_name = 'transactions' AND column_name = 'credit_limit') THEN
        ALTER TABLE transactions ADD COLUMN credit_limit NUMERIC(18,2);
    END IF;
END $$;
`

// EnsureSchema creates tables if they don't exist and runs migrations
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Run migrations for existing tables
	_, err = db.Pool.Exec(ctx, migrateDDL)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
