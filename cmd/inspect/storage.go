package main

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/registry-contract/rpc/registry"
)

// Registry contract storage keys.
const (
	ownerKey      = 'o'
	treasuryKey   = 't'
	founderKey    = 'f'
	paramsKey     = 'p'
	totalNodesKey = 'n'

	nodePrefix  = 'a'
	boostPrefix = 'b'
)

// storageItem is a decoded Registry storage record.
type storageItem struct {
	// Kind of the record: owner, treasury, founder, params, totalNodes, node
	// or boost.
	Kind string
	// Node address for node and boost records.
	Node util.Uint160
	// Boost ID for boost records.
	BoostID int
	// Decoded value.
	Value any
}

func (s storageItem) String() string {
	switch s.Kind {
	case "node":
		return fmt.Sprintf("node %s: %s", address.Uint160ToString(s.Node), formatNode(s.Value.(*registry.RegistryNode)))
	case "boost":
		return fmt.Sprintf("boost %s #%d: level %v", address.Uint160ToString(s.Node), s.BoostID, s.Value)
	case "params":
		return "params: " + formatParams(s.Value.(*registry.RegistryParams))
	default:
		if h, ok := s.Value.(util.Uint160); ok {
			return s.Kind + ": " + address.Uint160ToString(h)
		}
		return fmt.Sprintf("%s: %v", s.Kind, s.Value)
	}
}

// decodeStorageItem parses raw Registry storage key-value pair.
func decodeStorageItem(key, value []byte) (storageItem, error) {
	if len(key) == 0 {
		return storageItem{}, errors.New("empty key")
	}

	switch {
	case len(key) == 1 && (key[0] == ownerKey || key[0] == treasuryKey || key[0] == founderKey):
		h, err := util.Uint160DecodeBytesBE(value)
		if err != nil {
			return storageItem{}, fmt.Errorf("address under '%c': %w", key[0], err)
		}
		return storageItem{Kind: addressKind(key[0]), Value: h}, nil
	case len(key) == 1 && key[0] == paramsKey:
		item, err := stackitem.Deserialize(value)
		if err != nil {
			return storageItem{}, fmt.Errorf("deserialize params: %w", err)
		}
		p := new(registry.RegistryParams)
		err = p.FromStackItem(item)
		if err != nil {
			return storageItem{}, fmt.Errorf("decode params: %w", err)
		}
		return storageItem{Kind: "params", Value: p}, nil
	case len(key) == 1 && key[0] == totalNodesKey:
		return storageItem{Kind: "totalNodes", Value: bigint.FromBytes(value)}, nil
	case key[0] == nodePrefix && len(key) == 1+util.Uint160Size:
		h, err := util.Uint160DecodeBytesBE(key[1:])
		if err != nil {
			return storageItem{}, fmt.Errorf("node key: %w", err)
		}
		item, err := stackitem.Deserialize(value)
		if err != nil {
			return storageItem{}, fmt.Errorf("deserialize node %s: %w", h.StringLE(), err)
		}
		n := new(registry.RegistryNode)
		err = n.FromStackItem(item)
		if err != nil {
			return storageItem{}, fmt.Errorf("decode node %s: %w", h.StringLE(), err)
		}
		return storageItem{Kind: "node", Node: h, Value: n}, nil
	case key[0] == boostPrefix && len(key) == 1+util.Uint160Size+1:
		h, err := util.Uint160DecodeBytesBE(key[1 : 1+util.Uint160Size])
		if err != nil {
			return storageItem{}, fmt.Errorf("boost key: %w", err)
		}
		return storageItem{
			Kind:    "boost",
			Node:    h,
			BoostID: int(key[len(key)-1]),
			Value:   bigint.FromBytes(value),
		}, nil
	default:
		return storageItem{}, fmt.Errorf("unknown key %x", key)
	}
}

func addressKind(k byte) string {
	switch k {
	case ownerKey:
		return "owner"
	case treasuryKey:
		return "treasury"
	default:
		return "founder"
	}
}

func formatNode(n *registry.RegistryNode) string {
	return fmt.Sprintf("active=%t tier=%s merit=%s joined=%s",
		n.Active, registry.TierOf(n), n.Merit, formatTimestamp(n.JoinedAt))
}

func formatParams(p *registry.RegistryParams) string {
	return fmt.Sprintf("registerFee=%s upgradeFee=%s actionFee=%s boostFee=%s treasuryBps=%s",
		formatGAS(p.RegisterFee), formatGAS(p.UpgradeFee), formatGAS(p.ActionFee), formatGAS(p.BoostFee), p.TreasuryBps)
}

func formatTimestamp(ms *big.Int) string {
	if ms == nil || ms.Sign() == 0 {
		return "-"
	}
	return time.UnixMilli(ms.Int64()).UTC().Format(time.RFC3339)
}
