package parser

import "github.com/aqlanhadi/smstx/parser/common"

// Parse resolves the sender and runs the owning rule set's pipeline. It
// returns nil when no institution owns the sender or when the message is not
// a completed transaction.
func (r *Registry) Parse(msg, sender string, timestamp int64) *common.Transaction {
	rs := r.Resolve(sender)
	if rs == nil {
		return nil
	}
	return rs.Parse(msg, sender, timestamp)
}

// ParseMandate extracts a recurring-payment notification. Mandate messages
// are rejected by Parse because nothing has been charged yet; this is the
// entry point for callers that track upcoming deductions.
func (r *Registry) ParseMandate(msg, sender string) (*common.Mandate, bool) {
	rs := r.Resolve(sender)
	if rs == nil || rs.Mandate == nil {
		return nil, false
	}
	return rs.Mandate(msg)
}

// Parse runs the default registry. See Registry.Parse.
func Parse(msg, sender string, timestamp int64) *common.Transaction {
	return Default().Parse(msg, sender, timestamp)
}

// ParseMandate runs the default registry. See Registry.ParseMandate.
func ParseMandate(msg, sender string) (*common.Mandate, bool) {
	return Default().ParseMandate(msg, sender)
}
