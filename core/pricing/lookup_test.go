// Package pricing - Lookup orchestration tests
package pricing

import (
	"context"
	stderrors "errors"
	"testing"

	"vm-pricing/internal/errors"
)

// stubFetcher returns canned line items without touching the network
type stubFetcher struct {
	items []RetailItem
	err   error
	calls int
}

func (f *stubFetcher) FetchVMPrices(ctx context.Context, region, nodeType string) ([]RetailItem, error) {
	f.calls++
	return f.items, f.err
}

func onDemandItems() []RetailItem {
	return []RetailItem{
		{ProductName: "Virtual Machines DSv2 Series", SkuName: "DS3 v2", CurrencyCode: "USD", RetailPrice: 0.598},
		{ProductName: "Virtual Machines DSv2 Series", SkuName: "DS3 v2 Spot", CurrencyCode: "USD", RetailPrice: 0.0617},
	}
}

func TestLookupReturnsPricedNode(t *testing.T) {
	fetcher := &stubFetcher{items: onDemandItems()}
	lookup := NewLookup(fetcher)

	info, err := lookup.Price(context.Background(), "eastus2", "Standard_DS3_v2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("expected a priced node, got nil")
	}

	if info.Name != "Standard_DS3_v2" {
		t.Errorf("expected name Standard_DS3_v2, got %s", info.Name)
	}
	if info.DBUPerHr != 0.75 {
		t.Errorf("expected catalog dbu_per_hr 0.75, got %v", info.DBUPerHr)
	}
	if info.CPUCores != 4 || info.Memory != 14 {
		t.Errorf("catalog fields not carried over: cores=%d memory=%d", info.CPUCores, info.Memory)
	}
	if !info.Price.Found() {
		t.Error("expected a non-nil on-demand price")
	}
	if len(info.DBUPrices) != 3 {
		t.Errorf("expected 3 DBU prices, got %d", len(info.DBUPrices))
	}
	if fetcher.calls != 1 {
		t.Errorf("expected exactly one fetch, got %d", fetcher.calls)
	}
}

func TestLookupInvalidRegion(t *testing.T) {
	fetcher := &stubFetcher{items: onDemandItems()}
	lookup := NewLookup(fetcher)

	_, err := lookup.Price(context.Background(), "not-a-real-region", "Standard_DS3_v2")
	if err == nil {
		t.Fatal("expected INVALID_REGION error, got nil")
	}
	if !errors.IsType(err, errors.TypeInvalidRegion) {
		t.Errorf("expected INVALID_REGION, got %v", err)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher must not be called for invalid regions, got %d calls", fetcher.calls)
	}
}

func TestLookupUnknownNodeTypeIsAbsent(t *testing.T) {
	fetcher := &stubFetcher{items: onDemandItems()}
	lookup := NewLookup(fetcher)

	info, err := lookup.Price(context.Background(), "eastus2", "Standard_Nonexistent_v9")
	if err != nil {
		t.Fatalf("unknown node type must not error, got %v", err)
	}
	if info != nil {
		t.Errorf("expected absent result, got %+v", info)
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher must not be called for unknown node types, got %d calls", fetcher.calls)
	}
}

func TestLookupPriceUnavailableIsAbsent(t *testing.T) {
	// Spot only, no on-demand line item.
	fetcher := &stubFetcher{items: []RetailItem{
		{ProductName: "Virtual Machines", SkuName: "DS3 v2 Spot", CurrencyCode: "USD", RetailPrice: 0.06},
	}}
	lookup := NewLookup(fetcher)

	info, err := lookup.Price(context.Background(), "eastus2", "Standard_DS3_v2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("expected absent result without an on-demand price, got %+v", info)
	}
}

func TestLookupPropagatesFetchErrors(t *testing.T) {
	sentinel := stderrors.New("connection reset")
	fetcher := &stubFetcher{err: sentinel}
	lookup := NewLookup(fetcher)

	_, err := lookup.Price(context.Background(), "eastus2", "Standard_DS3_v2")
	if !stderrors.Is(err, sentinel) {
		t.Errorf("fetch errors must pass through unmodified, got %v", err)
	}
}
