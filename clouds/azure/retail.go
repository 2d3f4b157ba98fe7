// Package azure - Azure Retail Prices API client
// Issues filtered queries against the public retail pricing endpoint.
// No authentication is required. Only the first response page is consumed;
// the filter is exact enough that VM price lists fit in one page.
package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"vm-pricing/core/pricing"
	"vm-pricing/internal/config"
	"vm-pricing/internal/errors"
	"vm-pricing/internal/logging"
)

// RetailClient fetches VM prices from the Azure Retail Prices API.
// Implements pricing.Fetcher.
type RetailClient struct {
	httpClient *http.Client
	endpoint   string
	log        *zap.Logger
}

// NewRetailClient creates a retail pricing client from config
func NewRetailClient(cfg config.PricingConfig) *RetailClient {
	return &RetailClient{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout(),
		},
		endpoint: cfg.RetailEndpoint,
		log:      logging.Named("azure.retail"),
	}
}

// retailPage is the response shape of the retail prices endpoint.
// NextPageLink is deliberately ignored.
type retailPage struct {
	Items []pricing.RetailItem `json:"Items"`
}

// FetchVMPrices implements pricing.Fetcher
func (c *RetailClient) FetchVMPrices(ctx context.Context, region, nodeType string) ([]pricing.RetailItem, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("armRegionName eq '%s' and armSkuName eq '%s'", region, nodeType))
	reqURL := c.endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Network("failed to build retail prices request", err)
	}

	c.log.Debug("querying retail prices",
		zap.String("region", region),
		zap.String("node_type", nodeType))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Network("retail prices request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeNetwork, "retail prices API returned status %d", resp.StatusCode)
	}

	var page retailPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errors.Parsing("failed to decode retail prices response", err)
	}

	return page.Items, nil
}
