package main

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestDescribeEvents(t *testing.T) {
	contract := util.Uint160{0xaa}
	other := util.Uint160{0xbb}
	node := util.Uint160{1, 2, 3}

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{
					ScriptHash: other,
					Name:       "Payout",
					Item:       stackitem.NewArray([]stackitem.Item{stackitem.Make("not an address")}),
				},
				{
					ScriptHash: contract,
					Name:       "Upgraded",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(node.BytesBE()), stackitem.Make(3), stackitem.Make(200000000),
					}),
				},
				{
					ScriptHash: contract,
					Name:       "Payout",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(node.BytesBE()), stackitem.Make(60000000),
					}),
				},
			},
		}},
	}

	lines, err := describeEvents(contract, log)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Upgraded: node=" + address.Uint160ToString(node) + " tier=overseer fee=2 GAS",
		"Payout: recipient=" + address.Uint160ToString(node) + " amount=0.6 GAS",
	}, lines)

	require.Len(t, log.Executions[0].Events, 3)
}
