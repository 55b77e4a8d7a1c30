package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := DefaultConfig()
	server := New(cfg)

	if server == nil {
		t.Fatal("Expected server to be created")
	}
	if server.mux == nil {
		t.Fatal("Expected mux to be initialized")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != ":8080" {
		t.Errorf("Expected port ':8080', got '%s'", cfg.Port)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := New(DefaultConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", response["status"])
	}
}

func TestParseEndpoint_MethodNotAllowed(t *testing.T) {
	server := New(DefaultConfig())

	req := httptest.NewRequest(http.MethodGet, "/parse", nil)
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestParseEndpoint_MissingFields(t *testing.T) {
	server := New(DefaultConfig())

	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString(`{"message":"hello"}`))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestParseEndpoint_Transaction(t *testing.T) {
	server := New(DefaultConfig())

	body, _ := json.Marshal(ParseRequest{
		Message:   "Rs 500.00 debited via UPI on 12-08-2025 to VPA shop@okbank.Ref No 987654321098. -Federal Bank",
		Sender:    "AD-FEDBNK-S",
		Timestamp: 1755000000,
	})
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Supported {
		t.Error("Expected sender to be supported")
	}
	if resp.Transaction == nil {
		t.Fatal("Expected a transaction")
	}
	if resp.Transaction.BankName != "Federal Bank" {
		t.Errorf("Expected bank 'Federal Bank', got '%s'", resp.Transaction.BankName)
	}
}

func TestParseEndpoint_NonTransaction(t *testing.T) {
	server := New(DefaultConfig())

	body, _ := json.Marshal(ParseRequest{
		Message: "123456 is your OTP for Federal Bank. Do not share it.",
		Sender:  "AD-FEDBNK-S",
	})
	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	var resp ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Supported {
		t.Error("Expected sender to be supported")
	}
	if resp.Transaction != nil {
		t.Error("Expected no transaction for an OTP message")
	}
}

func TestScanEndpoint(t *testing.T) {
	server := New(DefaultConfig())

	body, _ := json.Marshal([]ParseRequest{
		{
			Message:   "Rs 500.00 debited via UPI to VPA shop@okbank.Ref No 11112222. -Federal Bank",
			Sender:    "AD-FEDBNK-S",
			Timestamp: 1755000000,
		},
		{
			Message: "Big festive discount! Shop now.",
			Sender:  "AD-FEDBNK-S",
		},
		{
			Message: "Hello there",
			Sender:  "FRIENDLY-NEIGHBOR",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp ScanResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("Expected total 3, got %d", resp.Total)
	}
	if resp.Extracted != 1 {
		t.Errorf("Expected 1 extracted, got %d", resp.Extracted)
	}
}

func TestMandateEndpoint(t *testing.T) {
	server := New(DefaultConfig())

	body, _ := json.Marshal(ParseRequest{
		Message: "You have created a mandate on Netflix for a maximum amount of Rs 649.00 starting from 15-08-2025. Mandate Ref No-abc123@okaxis - Federal Bank",
		Sender:  "AD-FEDBNK-S",
	})
	req := httptest.NewRequest(http.MethodPost, "/mandate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	server.Handler().ServeHTTP(w, req)

	var resp MandateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Found {
		t.Fatal("Expected a mandate")
	}
	if resp.Mandate.Merchant != "Netflix" {
		t.Errorf("Expected merchant 'Netflix', got '%s'", resp.Mandate.Merchant)
	}
}

func TestHandler(t *testing.T) {
	server := New(DefaultConfig())
	handler := server.Handler()

	if handler == nil {
		t.Fatal("Expected handler to be returned")
	}

	// Verify it's the same mux
	if handler != server.mux {
		t.Error("Expected handler to be the server's mux")
	}
}
