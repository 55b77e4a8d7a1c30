package common

import (
	"strings"
	"unicode"
)

// Minimum length for a merchant display name.
const minMerchantLen = 2

// Words that are boundary noise rather than counterparties.
var merchantStopwords = map[string]bool{
	"USING": true, "VIA": true, "THROUGH": true, "BY": true, "WITH": true,
	"FOR": true, "TO": true, "FROM": true, "AT": true, "THE": true,
}

// CleanMerchant strips the suffix noise that rides along with counterparty
// names: trailing parentheses, reference and date tails, payment-address
// remnants, legal-entity suffixes, trailing punctuation.
func CleanMerchant(name string) string {
	for _, p := range cleaningPasses {
		name = p.ReplaceAllString(name, "")
	}
	return strings.TrimSpace(name)
}

// ValidMerchant reports whether a cleaned candidate is usable as a display
// name. allowVPA lets an institution keep raw payment addresses when its own
// rules say the address is the best available name.
func ValidMerchant(name string, allowVPA bool) bool {
	if len(name) < minMerchantLen {
		return false
	}
	if merchantStopwords[strings.ToUpper(name)] {
		return false
	}
	hasLetter, allDigits := false, true
	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if !unicode.IsDigit(r) {
			allDigits = false
		}
	}
	if !hasLetter || allDigits {
		return false
	}
	if strings.Contains(name, "@") && !allowVPA {
		return false
	}
	return true
}

// brandKeywords maps payment-address substrings to display brands. Checked
// in declaration order; the aggregator entries defer to a second-level
// lookup so a gateway handle can still surface the real merchant.
var brandKeywords = []struct {
	key   string
	brand string
}{
	// Airlines and travel
	{"indigo", "Indigo"},
	{"spicejet", "SpiceJet"},
	{"airasia", "AirAsia"},
	{"vistara", "Vistara"},
	{"airindia", "Air India"},
	{"irctc", "IRCTC"},
	{"redbus", "RedBus"},
	{"makemytrip", "MakeMyTrip"},
	{"goibibo", "Goibibo"},
	{"oyo", "OYO"},
	{"airbnb", "Airbnb"},
	// Ride-hailing
	{"uber", "Uber"},
	{"olacabs", "Ola"},
	{"rapido", "Rapido"},
	// E-commerce
	{"amazon", "Amazon"},
	{"flipkart", "Flipkart"},
	{"myntra", "Myntra"},
	{"meesho", "Meesho"},
	// Payment apps
	{"paytm", "Paytm"},
	{"bharatpe", "BharatPe"},
	{"phonepe", "PhonePe"},
	{"googlepay", "Google Pay"},
	{"gpay", "Google Pay"},
	// Food delivery
	{"swiggy", "Swiggy"},
	{"zomato", "Zomato"},
	// Entertainment
	{"netflix", "Netflix"},
	{"spotify", "Spotify"},
	{"hotstar", "Disney+ Hotstar"},
	{"disney", "Disney+ Hotstar"},
	{"bookmyshow", "BookMyShow"},
	{"inox", "PVR Inox"},
	{"pvr", "PVR"},
	// Telecom
	{"jio", "Jio"},
	{"airtel", "Airtel"},
	{"vodafone", "Vi"},
	{"bsnl", "BSNL"},
}

// gatewayKeys are aggregator handles: the address identifies the payment
// gateway, not the merchant, so the true merchant has to be recovered from
// the rest of the handle.
var gatewayKeys = []string{"razorpay", "razorp", "rzp", "payu", "billdesk", "ccavenue"}

// ResolveVPABrand maps a payment-address ("username@handle") to a known
// brand display name. An unrecognized address is returned untouched so the
// caller can decide whether raw addresses are acceptable.
func ResolveVPABrand(vpa string) string {
	user := strings.ToLower(strings.SplitN(vpa, "@", 2)[0])
	if user == "" {
		return vpa
	}
	for _, g := range gatewayKeys {
		if strings.Contains(user, g) {
			// Second level: the merchant may be embedded in the handle.
			for _, b := range brandKeywords {
				if strings.Contains(user, b.key) {
					return b.brand
				}
			}
			return "Online Payment"
		}
	}
	for _, b := range brandKeywords {
		if strings.Contains(user, b.key) {
			return b.brand
		}
	}
	if isAllDigits(user) {
		return "Individual"
	}
	return strings.TrimSpace(vpa)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
