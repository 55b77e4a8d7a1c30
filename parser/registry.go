// Package parser turns raw bank SMS messages into structured transactions.
// Resolution is sender-first: a registry of institution rule sets is scanned
// in priority order and the first rule set that owns the sender runs its
// extraction pipeline.
package parser

import (
	"fmt"

	"github.com/aqlanhadi/smstx/parser/bank"
	"github.com/aqlanhadi/smstx/parser/common"
)

// Registry holds rule sets in resolution order.
type Registry struct {
	rules []*common.RuleSet
}

// NewRegistry builds a registry from an explicit rule set list. Order is
// priority: earlier entries win overlapping senders.
func NewRegistry(rules ...*common.RuleSet) *Registry {
	return &Registry{rules: rules}
}

// Default returns a registry with all built-in institutions.
func Default() *Registry {
	return NewRegistry(bank.All()...)
}

// Register appends a rule set at the lowest priority. Built-in institutions
// keep winning their own shortcodes; custom rules pick up the rest.
func (r *Registry) Register(rs *common.RuleSet) {
	r.rules = append(r.rules, rs)
}

// Resolve returns the first rule set that owns the sender, or nil.
func (r *Registry) Resolve(sender string) *common.RuleSet {
	for _, rs := range r.rules {
		if rs.Senders.Matches(sender) {
			return rs
		}
	}
	return nil
}

// Supports reports whether any rule set owns the sender.
func (r *Registry) Supports(sender string) bool {
	return r.Resolve(sender) != nil
}

// Names lists the registered institutions in resolution order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for _, rs := range r.rules {
		names = append(names, rs.Name)
	}
	return names
}

// Validate fails when a rule set's declared sender literal, exact or
// substring, would be captured by an earlier rule set, which makes the later
// one unreachable for that sender. Regex predicates stay unchecked so a rule
// set may deliberately claim a broad shape.
func (r *Registry) Validate() error {
	for i, rs := range r.rules {
		literals := make([]string, 0, len(rs.Senders.Exact)+len(rs.Senders.Contains))
		literals = append(literals, rs.Senders.Exact...)
		literals = append(literals, rs.Senders.Contains...)
		for _, sender := range literals {
			for _, earlier := range r.rules[:i] {
				if earlier.Senders.Matches(sender) {
					return fmt.Errorf("sender %q of %q is shadowed by %q", sender, rs.Name, earlier.Name)
				}
			}
		}
	}
	return nil
}
