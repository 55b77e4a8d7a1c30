package common

import "testing"

func TestCleanMerchant(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Swiggy on 01-09-25", "Swiggy"},
		{"AMAZON PAY (INDIA)", "AMAZON PAY"},
		{"RELIANCE RETAIL PVT LTD", "RELIANCE RETAIL"},
		{"BigBasket -", "BigBasket"},
		{"Netflix at 10:24 today", "Netflix"},
		{"  Uber  ", "Uber"},
	}
	for _, tt := range tests {
		if got := CleanMerchant(tt.in); got != tt.want {
			t.Errorf("CleanMerchant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidMerchant(t *testing.T) {
	tests := []struct {
		name     string
		allowVPA bool
		want     bool
	}{
		{"Swiggy", false, true},
		{"A", false, false},
		{"USING", false, false},
		{"via", false, false},
		{"1234", false, false},
		{"user@okbank", false, false},
		{"user@okbank", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := ValidMerchant(tt.name, tt.allowVPA); got != tt.want {
			t.Errorf("ValidMerchant(%q, %v) = %v, want %v", tt.name, tt.allowVPA, got, tt.want)
		}
	}
}

func TestResolveVPABrand(t *testing.T) {
	tests := []struct {
		vpa  string
		want string
	}{
		{"swiggy.store@icici", "Swiggy"},
		{"netflixupi@hdfcbank", "Netflix"},
		// Gateway handle with the merchant embedded in the username.
		{"razorpayswiggy@axl", "Swiggy"},
		// Gateway handle with nothing recoverable.
		{"rzp1234@okhdfc", "Online Payment"},
		// Phone-number addresses are person-to-person.
		{"9876543210@ybl", "Individual"},
		// Unknown addresses come back untouched.
		{"john.doe123@okbank", "john.doe123@okbank"},
	}
	for _, tt := range tests {
		if got := ResolveVPABrand(tt.vpa); got != tt.want {
			t.Errorf("ResolveVPABrand(%q) = %q, want %q", tt.vpa, got, tt.want)
		}
	}
}
