// Package pricing - Price normalization and DBU derivation
// This is the only package with non-trivial pricing logic. Fetching,
// packaging and catalog loading live behind collaborator boundaries.
package pricing

import "context"

// RetailItem is one raw line item from a retail pricing API response
type RetailItem struct {
	ProductName     string  `json:"productName"`
	SkuName         string  `json:"skuName"`
	ReservationTerm string  `json:"reservationTerm,omitempty"`
	CurrencyCode    string  `json:"currencyCode"`
	RetailPrice     float64 `json:"retailPrice"`
}

// Fetcher retrieves raw retail price line items for a region and node type.
// Implementations do not retry, paginate or cache; callers wanting
// resilience wrap the call externally via ctx.
type Fetcher interface {
	FetchVMPrices(ctx context.Context, region, nodeType string) ([]RetailItem, error)
}
