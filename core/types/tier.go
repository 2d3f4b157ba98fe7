// Package types - Photon tier enumeration
package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// PhotonTier is a software-acceleration tier. Each tier consumes DBUs at a
// fixed multiple of the node's base rate for the same hardware.
type PhotonTier int

const (
	// PhotonNone - base tier, no acceleration
	PhotonNone PhotonTier = iota
	// PhotonInteractive - Photon on interactive (all-purpose) compute
	PhotonInteractive
	// PhotonJobs - Photon on jobs compute
	PhotonJobs
)

// AllPhotonTiers is the canonical derivation order. Callers using positional
// access into VMInfo.DBUPrices rely on this order.
var AllPhotonTiers = [3]PhotonTier{PhotonNone, PhotonInteractive, PhotonJobs}

// Tier multipliers are catalog-level constants, not user-configurable.
var (
	interactiveMultiplier = decimal.RequireFromString("2.3")
	jobsMultiplier        = decimal.RequireFromString("2.5")
)

// String returns the tier tag
func (t PhotonTier) String() string {
	switch t {
	case PhotonNone:
		return "NO_PHOTON"
	case PhotonInteractive:
		return "PHOTON_INTERACTIVE"
	case PhotonJobs:
		return "PHOTON_JOBS"
	default:
		return "unknown"
	}
}

// Multiplier returns the DBU consumption multiplier for the tier
func (t PhotonTier) Multiplier() decimal.Decimal {
	switch t {
	case PhotonInteractive:
		return interactiveMultiplier
	case PhotonJobs:
		return jobsMultiplier
	default:
		return decimal.NewFromInt(1)
	}
}

// MarshalJSON emits the tier tag
func (t PhotonTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses a tier tag
func (t *PhotonTier) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	for _, tier := range AllPhotonTiers {
		if tier.String() == tag {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("unknown photon tier: %q", tag)
}
