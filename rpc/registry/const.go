package registry

import (
	"math/big"

	"github.com/nspcc-dev/registry-contract/contracts/registry/registryconst"
)

// Tier is a level of a registered node, see [RegistryNode.Tier].
type Tier int64

// Possible node tiers in [RegistryNode].
const (
	// TierNone is reported for unregistered addresses.
	TierNone     Tier = registryconst.TierNone
	TierScout    Tier = registryconst.TierScout
	TierOperator Tier = registryconst.TierOperator
	// TierOverseer is the highest tier, it can't be upgraded.
	TierOverseer Tier = registryconst.TierOverseer
)

// TierOf returns tier of the node record.
func TierOf(n *RegistryNode) Tier {
	if n == nil || n.Tier == nil || !n.Tier.IsInt64() {
		return TierNone
	}
	return Tier(n.Tier.Int64())
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierScout:
		return "scout"
	case TierOperator:
		return "operator"
	case TierOverseer:
		return "overseer"
	default:
		return "unknown"
	}
}

// Next returns the tier an upgrade moves t to and false if t can't be upgraded.
func (t Tier) Next() (Tier, bool) {
	if t < TierScout || t >= TierOverseer {
		return t, false
	}
	return t + 1, true
}

const (
	// BoostCount is the number of boosts, boost IDs are in [1, BoostCount].
	BoostCount = registryconst.BoostCount

	// MaxBoostLevel is the highest level of a single boost.
	MaxBoostLevel = registryconst.MaxBoostLevel
)

// BpsDenominator is 100% in basis points.
var BpsDenominator = big.NewInt(registryconst.BpsDenominator)

// SplitFee returns treasury and founder portions of the amount the same way
// the contract does.
func SplitFee(amount, treasuryBps *big.Int) (*big.Int, *big.Int) {
	toTreasury := new(big.Int).Mul(amount, treasuryBps)
	toTreasury.Quo(toTreasury, BpsDenominator)
	return toTreasury, new(big.Int).Sub(amount, toTreasury)
}
