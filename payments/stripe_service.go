package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrGateway wraps every failure coming back from the payment provider so
// callers can distinguish gateway trouble from their own.
var ErrGateway = errors.New("payment gateway error")

type CheckoutParams struct {
	AmountMinor int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata"`
}

// Gateway is the capability the booking core depends on; tests substitute a
// fake, production wires StripeClient.
type Gateway interface {
	Name() string
	CreateCheckoutSession(p CheckoutParams) (*CheckoutSession, error)
	RetrieveSession(sessionID string) (*CheckoutSession, error)
}

const defaultStripeAPIBase = "https://api.stripe.com"

type StripeClient struct {
	secretKey string
	apiBase   string
	client    *http.Client
}

func NewStripeClient(secretKey, apiBase string) *StripeClient {
	if apiBase == "" {
		apiBase = defaultStripeAPIBase
	}
	return &StripeClient{
		secretKey: secretKey,
		apiBase:   apiBase,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *StripeClient) Name() string {
	return "stripe"
}

func (s *StripeClient) CreateCheckoutSession(p CheckoutParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][product_data][name]", p.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.AmountMinor, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)
	for key, value := range p.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/checkout/sessions", s.apiBase), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.secretKey))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return s.doSession(req)
}

func (s *StripeClient) RetrieveSession(sessionID string) (*CheckoutSession, error) {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s/v1/checkout/sessions/%s", s.apiBase, url.PathEscape(sessionID)), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.secretKey))

	return s.doSession(req)
}

func (s *StripeClient) doSession(req *http.Request) (*CheckoutSession, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %s: %s", ErrGateway, resp.Status, string(body))
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: decoding session: %v", ErrGateway, err)
	}
	return &session, nil
}
