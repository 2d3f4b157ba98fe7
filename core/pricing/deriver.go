// Package pricing - Per-DBU price derivation
package pricing

import (
	"github.com/shopspring/decimal"

	"vm-pricing/core/types"
)

// DeriveDBUPrices converts a node's hourly price into per-DBU prices, one
// per Photon tier, in AllPhotonTiers order: base first, then interactive,
// then jobs.
//
// A zero effective DBU count is a catalog defect: the decimal library
// panics on division by zero and the panic propagates. NewVMInfo validation
// makes this unreachable for catalog-sourced nodes.
func DeriveDBUPrices(info *types.VMInfo) []types.DBUPrice {
	prices := make([]types.DBUPrice, 0, len(types.AllPhotonTiers))
	for _, tier := range types.AllPhotonTiers {
		prices = append(prices, deriveTier(info, tier))
	}
	return prices
}

// deriveTier divides every present price facet by the tier's effective DBU
// count. Absent facets stay absent.
func deriveTier(info *types.VMInfo, tier types.PhotonTier) types.DBUPrice {
	dbus := decimal.NewFromFloat(info.DBUPerHr).Mul(tier.Multiplier())

	return types.DBUPrice{
		CurrencyType:     info.Price.CurrencyType,
		OneYrResPerDBU:   perDBU(info.Price.OneYrResPerHr, dbus),
		ThreeYrResPerDBU: perDBU(info.Price.ThreeYrResPerHr, dbus),
		SpotPricePerDBU:  perDBU(info.Price.SpotPricePerHr, dbus),
		PricePerDBU:      perDBU(info.Price.PricePerHr, dbus),
		Region:           info.Price.Region,
		Sku:              tier,
	}
}

func perDBU(perHour *decimal.Decimal, dbus decimal.Decimal) *decimal.Decimal {
	if perHour == nil {
		return nil
	}
	v := perHour.Div(dbus).RoundBank(priceScale)
	return &v
}
