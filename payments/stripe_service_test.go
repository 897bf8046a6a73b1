package payments

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateCheckoutSessionRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_xyz" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parsing form: %v", err)
		}

		checks := map[string]string{
			"mode": "payment",
			"line_items[0][price_data][currency]":            "usd",
			"line_items[0][price_data][product_data][name]":  "QuickStay Demo Hotel",
			"line_items[0][price_data][unit_amount]":         "20000",
			"line_items[0][quantity]":                        "1",
			"success_url":                                    "https://quickstay.example/loader/my-bookings?session_id={CHECKOUT_SESSION_ID}",
			"cancel_url":                                     "https://quickstay.example/my-bookings",
			"metadata[bookingId]":                            "b-123",
		}
		for field, want := range checks {
			if got := r.PostFormValue(field); got != want {
				t.Errorf("form field %s = %q, want %q", field, got, want)
			}
		}

		json.NewEncoder(w).Encode(map[string]string{
			"id":  "cs_test_123",
			"url": "https://checkout.stripe.com/pay/cs_test_123",
		})
	}))
	defer server.Close()

	client := NewStripeClient("sk_test_xyz", server.URL)
	session, err := client.CreateCheckoutSession(CheckoutParams{
		AmountMinor: 20000,
		Currency:    "usd",
		ProductName: "QuickStay Demo Hotel",
		SuccessURL:  "https://quickstay.example/loader/my-bookings?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "https://quickstay.example/my-bookings",
		Metadata:    map[string]string{"bookingId": "b-123"},
	})
	if err != nil {
		t.Fatalf("expected session to be created, got %v", err)
	}
	if session.ID != "cs_test_123" || session.URL != "https://checkout.stripe.com/pay/cs_test_123" {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestRetrieveSessionDecodesStatusAndMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/checkout/sessions/cs_test_123" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":             "cs_test_123",
			"payment_status": "paid",
			"metadata":       map[string]string{"bookingId": "b-123"},
		})
	}))
	defer server.Close()

	client := NewStripeClient("sk_test_xyz", server.URL)
	session, err := client.RetrieveSession("cs_test_123")
	if err != nil {
		t.Fatalf("expected session to load, got %v", err)
	}
	if session.PaymentStatus != "paid" {
		t.Fatalf("unexpected payment status %q", session.PaymentStatus)
	}
	if session.Metadata["bookingId"] != "b-123" {
		t.Fatalf("unexpected metadata %v", session.Metadata)
	}
}

func TestGatewayErrorsAreMarked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "No such checkout session"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewStripeClient("sk_test_xyz", server.URL)
	_, err := client.RetrieveSession("cs_missing")
	if !errors.Is(err, ErrGateway) {
		t.Fatalf("expected ErrGateway, got %v", err)
	}
}
