// Package types - Pricing types
package types

import (
	"github.com/shopspring/decimal"

	"vm-pricing/internal/errors"
)

// VMPrice is the normalized hourly price record for one VM size in one
// region. Facets are nil when the retail feed had no matching line item.
// Decimal fields marshal to JSON strings, preserving precision.
type VMPrice struct {
	// CurrencyType is the currency of all facets (last line item wins)
	CurrencyType Currency `json:"currency_type"`

	// OneYrResPerHr is the 1-year reservation price, per hour
	OneYrResPerHr *decimal.Decimal `json:"one_yr_res_per_hr"`

	// ThreeYrResPerHr is the 3-year reservation price, per hour
	ThreeYrResPerHr *decimal.Decimal `json:"three_yr_res_per_hr"`

	// SpotPricePerHr is the preemptible market price, per hour
	SpotPricePerHr *decimal.Decimal `json:"spot_price_per_hr"`

	// PricePerHr is the on-demand price, per hour
	PricePerHr *decimal.Decimal `json:"price_per_hr"`

	// Region is the pricing region
	Region string `json:"region"`
}

// Found reports whether the record carries an on-demand price. A record
// without one is treated as "price unavailable".
func (p *VMPrice) Found() bool {
	return p != nil && p.PricePerHr != nil
}

// DBUPrice is an hourly price denominated per DBU rather than per machine,
// under one Photon tier. Derived, never fetched.
type DBUPrice struct {
	// CurrencyType is carried over from the VMPrice
	CurrencyType Currency `json:"currency_type"`

	// OneYrResPerDBU is the 1-year reservation price, per DBU-hour
	OneYrResPerDBU *decimal.Decimal `json:"one_yr_res_per_dbu"`

	// ThreeYrResPerDBU is the 3-year reservation price, per DBU-hour
	ThreeYrResPerDBU *decimal.Decimal `json:"three_yr_res_per_dbu"`

	// SpotPricePerDBU is the spot price, per DBU-hour
	SpotPricePerDBU *decimal.Decimal `json:"spot_price_per_dbu"`

	// PricePerDBU is the on-demand price, per DBU-hour
	PricePerDBU *decimal.Decimal `json:"price_per_dbu"`

	// Region is the pricing region
	Region string `json:"region"`

	// Sku identifies which Photon tier this price is for
	Sku PhotonTier `json:"sku"`
}

// VMInfo combines a catalog node type with its live pricing.
// Built fresh on every lookup; never cached.
type VMInfo struct {
	// Name is the node type name, e.g. Standard_DS3_v2
	Name string `json:"name"`

	// DBUPerHr is the base DBU consumption rate (a rate, not a price)
	DBUPerHr float64 `json:"dbu_per_hr"`

	// CPUCores is the core count
	CPUCores int `json:"cpu_cores"`

	// Memory is the memory size in GiB
	Memory int `json:"memory"`

	// Price is the normalized hourly price
	Price *VMPrice `json:"price"`

	// DBUPrices holds one entry per Photon tier, in AllPhotonTiers order
	DBUPrices []DBUPrice `json:"dbu_prices"`
}

// NewVMInfo builds a VMInfo from catalog fields and a normalized price,
// rejecting incomplete catalog entries before derivation can divide by a
// zero DBU rate.
func NewVMInfo(name string, dbuPerHr float64, cpuCores, memory int, price *VMPrice) (*VMInfo, error) {
	if name == "" {
		return nil, errors.Catalog("node type name is empty")
	}
	if dbuPerHr <= 0 {
		return nil, errors.Newf(errors.TypeCatalog, "node type %s has non-positive dbu_per_hr %v", name, dbuPerHr)
	}
	if cpuCores <= 0 {
		return nil, errors.Newf(errors.TypeCatalog, "node type %s has non-positive cpu_cores %d", name, cpuCores)
	}
	if memory <= 0 {
		return nil, errors.Newf(errors.TypeCatalog, "node type %s has non-positive memory %d", name, memory)
	}
	if price == nil {
		return nil, errors.Newf(errors.TypeCatalog, "node type %s constructed without a price", name)
	}

	return &VMInfo{
		Name:      name,
		DBUPerHr:  dbuPerHr,
		CPUCores:  cpuCores,
		Memory:    memory,
		Price:     price,
		DBUPrices: []DBUPrice{},
	}, nil
}
