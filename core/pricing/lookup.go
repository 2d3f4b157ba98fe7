// Package pricing - Lookup orchestration
package pricing

import (
	"context"

	"go.uber.org/zap"

	"vm-pricing/core/catalog"
	"vm-pricing/core/types"
	"vm-pricing/internal/errors"
	"vm-pricing/internal/logging"
)

// Lookup resolves node pricing against the packaged catalogs and a live
// retail price feed. Stateless across calls; safe for concurrent use.
type Lookup struct {
	fetcher  Fetcher
	provider types.Provider
	log      *zap.Logger
}

// NewLookup creates a Lookup backed by the given fetcher
func NewLookup(fetcher Fetcher) *Lookup {
	return &Lookup{
		fetcher:  fetcher,
		provider: types.ProviderAzure,
		log:      logging.Named("lookup"),
	}
}

// Price returns the priced VMInfo for a node type in a region.
//
// An unknown region is a caller error (INVALID_REGION). An unknown node
// type, or a node type with no on-demand price in the region, is a normal
// absent result: (nil, nil). Transport errors from the fetcher pass through
// unmodified; retry policy belongs to the caller.
func (l *Lookup) Price(ctx context.Context, region, nodeType string) (*types.VMInfo, error) {
	valid, err := catalog.ValidRegion(l.provider, region)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, errors.InvalidRegion(l.provider.String(), region)
	}

	nodes, err := catalog.NodeTypes()
	if err != nil {
		return nil, err
	}
	node, ok := nodes[nodeType]
	if !ok {
		l.log.Debug("node type not in catalog",
			zap.String("node_type", nodeType))
		return nil, nil
	}

	items, err := l.fetcher.FetchVMPrices(ctx, region, nodeType)
	if err != nil {
		return nil, err
	}

	price := Normalize(region, items)
	if !price.Found() {
		l.log.Debug("no on-demand price in region",
			zap.String("node_type", nodeType),
			zap.String("region", region),
			zap.Int("raw_items", len(items)))
		return nil, nil
	}

	info, err := types.NewVMInfo(nodeType, node.DBUPerHr, node.CPUCores, node.Memory, price)
	if err != nil {
		return nil, err
	}
	info.DBUPrices = DeriveDBUPrices(info)
	return info, nil
}
