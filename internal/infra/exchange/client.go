package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type RateClientInterface interface {
	// USDToPKR returns how many PKR one USD buys.
	USDToPKR(ctx context.Context) (float64, error)
}

var _ RateClientInterface = (*RateClient)(nil)

type RateClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRateClient(baseURL, apiKey string, timeout time.Duration) *RateClient {
	return &RateClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type pairResponse struct {
	Result         string  `json:"result"`
	ConversionRate float64 `json:"conversion_rate"`
}

func (c *RateClient) USDToPKR(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/v6/%s/pair/USD/PKR", c.baseURL, c.apiKey)
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate service returned status %d", resp.StatusCode)
	}

	var body pairResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Result != "success" || body.ConversionRate == 0 {
		return 0, fmt.Errorf("failed to fetch exchange rate")
	}

	return body.ConversionRate, nil
}
