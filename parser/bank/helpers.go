package bank

// isMonthToken guards three-letter currency captures against date fragments
// like "Jul 10 2024".
func isMonthToken(s string) bool {
	switch s {
	case "JAN", "FEB", "MAR", "APR", "MAY", "JUN",
		"JUL", "AUG", "SEP", "OCT", "NOV", "DEC":
		return true
	}
	return false
}

// alwaysCard marks card-only products where every alert is a card movement.
func alwaysCard(string) (bool, bool) { return true, true }
