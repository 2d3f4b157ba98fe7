// Package catalog - Packaged static reference data
// Two JSON documents ship with the binary: the valid-region list per
// provider, and the Databricks node type catalog. Both are read-only and
// loaded once per process.
package catalog

import (
	_ "embed"
	"encoding/json"
	"slices"
	"sort"
	"sync"

	"vm-pricing/core/types"
	"vm-pricing/internal/errors"
)

//go:embed data/regions.json
var regionsJSON []byte

//go:embed data/azure.json
var nodeTypesJSON []byte

// NodeType is a catalog entry for one VM size
type NodeType struct {
	// DBUPerHr is the base DBU consumption rate
	DBUPerHr float64 `json:"dbu_per_hr"`

	// CPUCores is the core count
	CPUCores int `json:"cpu_cores"`

	// Memory is the memory size in GiB
	Memory int `json:"memory"`
}

var (
	loadOnce  sync.Once
	loadErr   error
	regions   map[types.Provider][]string
	nodeTypes map[string]NodeType
)

func load() {
	if err := json.Unmarshal(regionsJSON, &regions); err != nil {
		loadErr = errors.Wrap(errors.TypeCatalog, "failed to parse packaged region catalog", err)
		return
	}
	if err := json.Unmarshal(nodeTypesJSON, &nodeTypes); err != nil {
		loadErr = errors.Wrap(errors.TypeCatalog, "failed to parse packaged node type catalog", err)
		return
	}
	loadErr = validate()
}

// validate rejects incomplete catalog entries at load time so derivation
// never sees a zero DBU rate.
func validate() error {
	for name, node := range nodeTypes {
		if _, err := types.NewVMInfo(name, node.DBUPerHr, node.CPUCores, node.Memory, &types.VMPrice{}); err != nil {
			return err
		}
	}
	for provider, list := range regions {
		if len(list) == 0 {
			return errors.Newf(errors.TypeCatalog, "provider %s has an empty region list", provider)
		}
	}
	return nil
}

// Regions returns the provider to valid-region mapping
func Regions() (map[types.Provider][]string, error) {
	loadOnce.Do(load)
	return regions, loadErr
}

// NodeTypes returns the node type catalog
func NodeTypes() (map[string]NodeType, error) {
	loadOnce.Do(load)
	return nodeTypes, loadErr
}

// ValidRegion reports whether region is in the provider's valid set
func ValidRegion(provider types.Provider, region string) (bool, error) {
	all, err := Regions()
	if err != nil {
		return false, err
	}
	return slices.Contains(all[provider], region), nil
}

// NodeTypeNames returns all catalog node type names, sorted
func NodeTypeNames() ([]string, error) {
	all, err := NodeTypes()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
