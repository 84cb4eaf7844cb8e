package main

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/registry-contract/rpc/registry"
	"github.com/stretchr/testify/require"
)

func serialize(t *testing.T, items ...stackitem.Item) []byte {
	data, err := stackitem.Serialize(stackitem.NewStruct(items))
	require.NoError(t, err)
	return data
}

func TestDecodeStorageItem(t *testing.T) {
	node := util.Uint160{1, 2, 3}

	t.Run("addresses", func(t *testing.T) {
		for key, kind := range map[byte]string{
			ownerKey:    "owner",
			treasuryKey: "treasury",
			founderKey:  "founder",
		} {
			item, err := decodeStorageItem([]byte{key}, node.BytesBE())
			require.NoError(t, err)
			require.Equal(t, kind, item.Kind)
			require.Equal(t, node, item.Value)
		}

		_, err := decodeStorageItem([]byte{ownerKey}, []byte{1, 2})
		require.Error(t, err)
	})

	t.Run("params", func(t *testing.T) {
		data := serialize(t, stackitem.Make(10), stackitem.Make(20), stackitem.Make(30), stackitem.Make(40), stackitem.Make(3000))

		item, err := decodeStorageItem([]byte{paramsKey}, data)
		require.NoError(t, err)
		require.Equal(t, "params", item.Kind)

		p := item.Value.(*registry.RegistryParams)
		require.EqualValues(t, 20, p.UpgradeFee.Int64())
		require.EqualValues(t, 3000, p.TreasuryBps.Int64())
	})

	t.Run("total nodes", func(t *testing.T) {
		item, err := decodeStorageItem([]byte{totalNodesKey}, bigint.ToBytes(big.NewInt(42)))
		require.NoError(t, err)
		require.Equal(t, big.NewInt(42), item.Value)
	})

	t.Run("node", func(t *testing.T) {
		data := serialize(t, stackitem.Make(true), stackitem.Make(2), stackitem.Make(15), stackitem.Make(1700000000000))

		item, err := decodeStorageItem(append([]byte{nodePrefix}, node.BytesBE()...), data)
		require.NoError(t, err)
		require.Equal(t, "node", item.Kind)
		require.Equal(t, node, item.Node)

		n := item.Value.(*registry.RegistryNode)
		require.True(t, n.Active)
		require.Equal(t, registry.TierOperator, registry.TierOf(n))
		require.EqualValues(t, 15, n.Merit.Int64())
		require.Contains(t, item.String(), "tier=operator")
		require.Contains(t, item.String(), "2023-11-14T22:13:20Z")
	})

	t.Run("boost", func(t *testing.T) {
		key := append(append([]byte{boostPrefix}, node.BytesBE()...), 4)

		item, err := decodeStorageItem(key, bigint.ToBytes(big.NewInt(3)))
		require.NoError(t, err)
		require.Equal(t, "boost", item.Kind)
		require.Equal(t, node, item.Node)
		require.Equal(t, 4, item.BoostID)
		require.Equal(t, big.NewInt(3), item.Value)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := decodeStorageItem(nil, nil)
		require.Error(t, err)

		_, err = decodeStorageItem([]byte{'z'}, []byte{1})
		require.Error(t, err)

		_, err = decodeStorageItem([]byte{nodePrefix, 1}, []byte{1})
		require.Error(t, err)
	})
}
