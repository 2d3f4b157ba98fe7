// Package pricing - Normalization tests
package pricing

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestNormalizeClassifiesFacets(t *testing.T) {
	items := []RetailItem{
		{ProductName: "Virtual Machines DSv2 Series", SkuName: "DS3 v2", CurrencyCode: "USD", RetailPrice: 0.598},
		{ProductName: "Virtual Machines DSv2 Series", SkuName: "DS3 v2", ReservationTerm: "1 Year", CurrencyCode: "USD", RetailPrice: 3650.25},
		{ProductName: "Virtual Machines DSv2 Series", SkuName: "DS3 v2", ReservationTerm: "3 Years", CurrencyCode: "USD", RetailPrice: 7884},
		{ProductName: "Virtual Machines DSv2 Series", SkuName: "DS3 v2 Spot", CurrencyCode: "USD", RetailPrice: 0.0617},
	}

	price := Normalize("eastus2", items)
	if price == nil {
		t.Fatal("expected a price record, got nil")
	}

	if price.Region != "eastus2" {
		t.Errorf("expected region eastus2, got %s", price.Region)
	}
	if price.CurrencyType != "USD" {
		t.Errorf("expected currency USD, got %s", price.CurrencyType)
	}
	if !price.PricePerHr.Equal(mustDecimal(t, "0.598")) {
		t.Errorf("on-demand: expected 0.598, got %s", price.PricePerHr)
	}
	// 3650.25 / 8760 = 0.41669..., rounded to 4 digits
	if !price.OneYrResPerHr.Equal(mustDecimal(t, "0.4167")) {
		t.Errorf("1yr reserved: expected 0.4167, got %s", price.OneYrResPerHr)
	}
	// 7884 / 26280 = 0.3 exactly
	if !price.ThreeYrResPerHr.Equal(mustDecimal(t, "0.3")) {
		t.Errorf("3yr reserved: expected 0.3, got %s", price.ThreeYrResPerHr)
	}
	if !price.SpotPricePerHr.Equal(mustDecimal(t, "0.0617")) {
		t.Errorf("spot: expected 0.0617, got %s", price.SpotPricePerHr)
	}
}

func TestNormalizeFiltersWindowsAndLowPriority(t *testing.T) {
	items := []RetailItem{
		{ProductName: "Virtual Machines DSv2 Series Windows", SkuName: "DS3 v2", CurrencyCode: "USD", RetailPrice: 0.782},
		{ProductName: "Virtual Machines DSv2 Series", SkuName: "DS3 v2 Low Priority", CurrencyCode: "USD", RetailPrice: 0.1196},
		{ProductName: "Virtual Machines DSv2 Series", SkuName: "DS3 v2", CurrencyCode: "USD", RetailPrice: 0.598},
	}

	price := Normalize("westeurope", items)
	if price == nil {
		t.Fatal("expected a price record, got nil")
	}
	if !price.PricePerHr.Equal(mustDecimal(t, "0.598")) {
		t.Errorf("windows item leaked into on-demand facet: got %s", price.PricePerHr)
	}
	if price.SpotPricePerHr != nil {
		t.Errorf("low priority item leaked into spot facet: got %s", price.SpotPricePerHr)
	}
}

func TestNormalizeFilterIsCaseInsensitive(t *testing.T) {
	items := []RetailItem{
		{ProductName: "virtual machines WINDOWS series", SkuName: "DS3 v2", CurrencyCode: "USD", RetailPrice: 0.782},
	}
	if price := Normalize("eastus", items); price != nil {
		t.Errorf("expected nil for windows-only items, got %+v", price)
	}
}

func TestNormalizeReservationBeatsSpotSuffix(t *testing.T) {
	// Classification priority: reservation term is checked before the
	// sku name is scanned for "spot".
	items := []RetailItem{
		{ProductName: "Virtual Machines", SkuName: "DS3 v2 Spot", ReservationTerm: "1 Year", CurrencyCode: "USD", RetailPrice: 876},
		{ProductName: "Virtual Machines", SkuName: "DS3 v2", CurrencyCode: "USD", RetailPrice: 0.5},
	}

	price := Normalize("eastus", items)
	if price == nil {
		t.Fatal("expected a price record, got nil")
	}
	if price.SpotPricePerHr != nil {
		t.Errorf("reserved item misclassified as spot: %s", price.SpotPricePerHr)
	}
	// 876 / 8760 = 0.1
	if !price.OneYrResPerHr.Equal(mustDecimal(t, "0.1")) {
		t.Errorf("1yr reserved: expected 0.1, got %s", price.OneYrResPerHr)
	}
}

func TestNormalizeWithoutOnDemandIsUnavailable(t *testing.T) {
	items := []RetailItem{
		{ProductName: "Virtual Machines", SkuName: "DS3 v2 Spot", CurrencyCode: "USD", RetailPrice: 0.06},
		{ProductName: "Virtual Machines", SkuName: "DS3 v2", ReservationTerm: "1 Year", CurrencyCode: "USD", RetailPrice: 876},
	}
	if price := Normalize("eastus", items); price != nil {
		t.Errorf("expected nil without an on-demand facet, got %+v", price)
	}
}

func TestNormalizeEmptyItemsIsUnavailable(t *testing.T) {
	if price := Normalize("eastus", nil); price != nil {
		t.Errorf("expected nil for empty input, got %+v", price)
	}
}

func TestNormalizeLastCurrencyWins(t *testing.T) {
	items := []RetailItem{
		{ProductName: "Virtual Machines", SkuName: "DS3 v2", CurrencyCode: "USD", RetailPrice: 0.598},
		{ProductName: "Virtual Machines", SkuName: "DS3 v2 Spot", CurrencyCode: "EUR", RetailPrice: 0.055},
	}

	price := Normalize("westeurope", items)
	if price == nil {
		t.Fatal("expected a price record, got nil")
	}
	if price.CurrencyType != "EUR" {
		t.Errorf("expected last currency EUR to win, got %s", price.CurrencyType)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	items := []RetailItem{
		{ProductName: "Virtual Machines", SkuName: "DS3 v2", CurrencyCode: "USD", RetailPrice: 0.598},
		{ProductName: "Virtual Machines", SkuName: "DS3 v2 Spot", CurrencyCode: "USD", RetailPrice: 0.0617},
		{ProductName: "Virtual Machines", SkuName: "DS3 v2", ReservationTerm: "3 Years", CurrencyCode: "USD", RetailPrice: 7884},
	}

	first, err := json.Marshal(Normalize("eastus2", items))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(Normalize("eastus2", items))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("normalizer not idempotent:\nfirst:  %s\nsecond: %s", first, second)
	}
}
