package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/registry-contract/rpc/registry"
)

// iteratorPage is the number of items requested per TraverseIterator call.
const iteratorPage = 100

// wrapper over rpcNeo providing Registry contract services needed for
// inspection commands.
type remoteRegistry struct {
	rpc     *rpcclient.Client
	invoker *invoker.Invoker
	reader  *registry.ContractReader
	hash    util.Uint160

	currentBlock uint32
}

// newRemoteRegistry dials Neo RPC server and returns remoteRegistry based on
// the opened connection. Connection and all requests are done within the
// given timeout in seconds and are cancelled once ctx is done.
func newRemoteRegistry(ctx context.Context, endpoint, contract string, timeout uint) (*remoteRegistry, error) {
	h, err := parseHash160(contract)
	if err != nil {
		return nil, fmt.Errorf("invalid contract: %w", err)
	}

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    time.Duration(timeout) * time.Second,
		RequestTimeout: time.Duration(timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	inv := invoker.New(c, nil)

	return &remoteRegistry{
		rpc:          c,
		invoker:      inv,
		reader:       registry.NewReader(inv, h),
		hash:         h,
		currentBlock: nLatestBlock,
	}, nil
}

func (x *remoteRegistry) close() {
	x.rpc.Close()
}

// parseHash160 accepts both Neo addresses and LE hex script hashes.
func parseHash160(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	return util.Uint160DecodeStringLE(s)
}

// nodeAddresses returns addresses of all registered nodes.
func (x *remoteRegistry) nodeAddresses() ([]util.Uint160, error) {
	sess, iter, err := x.reader.IterateNodes()
	if err != nil {
		return nil, fmt.Errorf("iterate nodes: %w", registry.WrapError(err))
	}

	var items []stackitem.Item

	if iter.ID == nil {
		// Server expanded iterator itself.
		items = iter.Values
	} else {
		defer func() { _ = x.invoker.TerminateSession(sess) }()

		for {
			page, err := x.invoker.TraverseIterator(sess, &iter, iteratorPage)
			if err != nil {
				return nil, fmt.Errorf("traverse nodes iterator: %w", err)
			}
			if len(page) == 0 {
				break
			}
			items = append(items, page...)
		}
	}

	return decodeAddresses(items)
}

func decodeAddresses(items []stackitem.Item) ([]util.Uint160, error) {
	res := make([]util.Uint160, 0, len(items))
	for i := range items {
		b, err := items[i].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("node #%d: %w", i, err)
		}

		h, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return nil, fmt.Errorf("node #%d: %w", i, err)
		}

		res = append(res, h)
	}

	return res, nil
}

// applicationLog returns execution log of the transaction.
func (x *remoteRegistry) applicationLog(txHash util.Uint256) (*result.ApplicationLog, error) {
	return x.rpc.GetApplicationLog(txHash, nil)
}

// iterateContractStorage iterates over all storage items of the Registry
// contract and passes them into f. iterateContractStorage breaks on any f's
// error and returns it.
func (x *remoteRegistry) iterateContractStorage(f func(key, value []byte) error) error {
	nLatestBlock, err := x.rpc.GetBlockCount()
	if err != nil {
		return fmt.Errorf("get number of the latest block: %w", err)
	}

	stateRoot, err := x.rpc.GetStateRootByHeight(nLatestBlock - 1)
	if err != nil {
		return fmt.Errorf("get state root at penult block #%d: %w", nLatestBlock-1, err)
	}

	var start []byte

	for {
		res, err := x.rpc.FindStates(stateRoot.Root, x.hash, nil, start, nil)
		if err != nil {
			return fmt.Errorf("get historical storage items of the registry at state root '%s': %w", stateRoot.Root, err)
		}

		for i := range res.Results {
			err = f(res.Results[i].Key, res.Results[i].Value)
			if err != nil {
				return err
			}
		}

		if !res.Truncated {
			return nil
		}

		start = res.Results[len(res.Results)-1].Key
	}
}
