// Package pricing - Retail line item normalization
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"vm-pricing/core/types"
	"vm-pricing/internal/logging"
)

const (
	hoursPerYear       = 8760
	hoursPerThreeYears = 3 * hoursPerYear

	// priceScale is the fractional digit count for all derived prices
	priceScale = 4
)

// Normalize reduces raw retail line items to a single hourly price record.
// Windows OS variants and low-priority SKUs are out of scope and skipped.
// Returns nil when no line item carries an on-demand price - a normal
// outcome for regions where the node type is not sold on demand.
//
// Pure over its inputs: the same item sequence always yields the same record.
func Normalize(region string, items []RetailItem) *types.VMPrice {
	price := &types.VMPrice{
		CurrencyType: types.CurrencyUSD,
		Region:       region,
	}

	var seen types.Currency
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ProductName), "windows") ||
			strings.Contains(strings.ToLower(item.SkuName), "low priority") {
			continue
		}

		switch {
		case strings.EqualFold(item.ReservationTerm, "1 year"):
			// Reservation prices arrive as lump sums; convert to hourly.
			price.OneYrResPerHr = hourly(item.RetailPrice, hoursPerYear)
		case strings.EqualFold(item.ReservationTerm, "3 years"):
			price.ThreeYrResPerHr = hourly(item.RetailPrice, hoursPerThreeYears)
		case strings.Contains(strings.ToLower(item.SkuName), "spot"):
			price.SpotPricePerHr = rounded(item.RetailPrice)
		default:
			price.PricePerHr = rounded(item.RetailPrice)
		}

		if item.CurrencyCode != "" {
			if seen != "" && seen != types.Currency(item.CurrencyCode) {
				logging.Warn("mixed currencies in retail response, last one wins",
					zap.String("region", region),
					zap.String("previous", string(seen)),
					zap.String("current", item.CurrencyCode))
			}
			seen = types.Currency(item.CurrencyCode)
			price.CurrencyType = seen
		}
	}

	if !price.Found() {
		return nil
	}
	return price
}

// hourly converts a lump-sum price to a rounded hourly rate
func hourly(lumpSum float64, hours int64) *decimal.Decimal {
	v := decimal.NewFromFloat(lumpSum).
		Div(decimal.NewFromInt(hours)).
		RoundBank(priceScale)
	return &v
}

// rounded rounds an already-hourly price to the standard scale
func rounded(perHour float64) *decimal.Decimal {
	v := decimal.NewFromFloat(perHour).RoundBank(priceScale)
	return &v
}
