package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"velvethome-backend/internal/config"
	"velvethome-backend/internal/dto"
)

type RazorpayClient interface {
	// CreateOrder registers a payable amount (in minor currency units) with
	// the gateway and returns the order handle the client pays against.
	CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*dto.GatewayOrder, error)
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
	currency   string
}

func NewRazorpayClient(cfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		currency:   cfg.Currency,
	}
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, amountMinor int64, receipt string) (*dto.GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":   amountMinor,
		"currency": c.currency,
		"receipt":  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/v1/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("razorpay create order status %d: %s", resp.StatusCode, string(respBody))
	}

	var result dto.GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode create order response: %w", err)
	}
	if result.ID == "" {
		return nil, fmt.Errorf("razorpay create order returned empty order id")
	}

	return &result, nil
}
