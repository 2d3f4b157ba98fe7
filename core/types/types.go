// Package types defines core domain types shared across all layers.
// This package contains NO pricing logic - only type definitions and
// construction-time validation.
package types

// Provider represents a cloud provider
type Provider string

const (
	ProviderAzure Provider = "azure"
	ProviderAWS   Provider = "aws"
	ProviderGCP   Provider = "gcp"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// Currency is an ISO 4217 currency code as reported by the pricing API
type Currency string

// CurrencyUSD is the currency every retail price feed defaults to
const CurrencyUSD Currency = "USD"
