// Package bank holds one rule set per supported institution. Each rule set
// layers institution-specific extraction steps on top of the shared defaults
// in parser/common.
package bank

import "github.com/aqlanhadi/smstx/parser/common"

// All returns the built-in rule sets in resolution order. Order matters:
// sender IDs overlap between institutions (wallet DLT headers ride on bank
// shortcodes), so the more specific rule sets come first and resolution takes
// the first match.
func All() []*common.RuleSet {
	return []*common.RuleSet{
		HDFC,
		SBI,
		DBS,
		Indian,
		Federal,
		AmazonPay,
		Slice,
		LazyPay,
		Utkarsh,
		ICICI,
		Karnataka,
		IDBI,
		Jupiter,
		Axis,
		PNB,
		Canara,
		BankOfBaroda,
		BankOfIndia,
		JioPayments,
		Kotak,
		IDFC,
		Union,
		HSBC,
		CentralBank,
		SIB,
		JK,
		JioPay,
		IPPB,
		CUB,
		IOB,
		Airtel,
		IndusInd,
		AMEX,
		OneCard,
		UCO,
		AU,
		Yes,
		Bandhan,
		ADCB,
		FAB,
		Citi,
		Discover,
		OldHickory,
		Laxmi,
		CBE,
		Everest,
		Bancolombia,
		Mashreq,
		Schwab,
	}
}
