package main

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/encoding/fixedn"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/registry-contract/rpc/registry"
	"go.uber.org/zap"
)

const gasDecimals = 8

func formatGAS(v *big.Int) string {
	return fixedn.ToString(v, gasDecimals) + " GAS"
}

type paramsCommand struct{}

func (paramsCommand) Execute([]string) error {
	return withRegistry(func(r *remoteRegistry, log *zap.Logger) error {
		owner, err := r.reader.Owner()
		if err != nil {
			return fmt.Errorf("get owner: %w", registry.WrapError(err))
		}

		treasury, err := r.reader.Treasury()
		if err != nil {
			return fmt.Errorf("get treasury: %w", registry.WrapError(err))
		}

		founder, err := r.reader.Founder()
		if err != nil {
			return fmt.Errorf("get founder: %w", registry.WrapError(err))
		}

		p, err := r.reader.GetParams()
		if err != nil {
			return fmt.Errorf("get params: %w", registry.WrapError(err))
		}

		total, err := r.reader.TotalNodes()
		if err != nil {
			return fmt.Errorf("get number of nodes: %w", registry.WrapError(err))
		}

		version, err := r.reader.Version()
		if err != nil {
			return fmt.Errorf("get version: %w", registry.WrapError(err))
		}

		fmt.Printf("version:     %s\n", version)
		fmt.Printf("owner:       %s\n", address.Uint160ToString(owner))
		fmt.Printf("treasury:    %s\n", address.Uint160ToString(treasury))
		fmt.Printf("founder:     %s\n", address.Uint160ToString(founder))
		fmt.Printf("nodes:       %s\n", total)
		fmt.Printf("registerFee: %s\n", formatGAS(p.RegisterFee))
		fmt.Printf("upgradeFee:  %s\n", formatGAS(p.UpgradeFee))
		fmt.Printf("actionFee:   %s\n", formatGAS(p.ActionFee))
		fmt.Printf("boostFee:    %s\n", formatGAS(p.BoostFee))
		fmt.Printf("treasuryBps: %s\n", p.TreasuryBps)

		log.Debug("registry settings fetched", zap.Uint32("height", r.currentBlock))

		return nil
	})
}

type nodeCommand struct {
	Args struct {
		Address string `positional-arg-name:"address" description:"Node address or LE script hash"`
	} `positional-args:"yes" required:"yes"`
}

func (c *nodeCommand) Execute([]string) error {
	addr, err := parseHash160(c.Args.Address)
	if err != nil {
		return fmt.Errorf("invalid node address: %w", err)
	}

	return withRegistry(func(r *remoteRegistry, log *zap.Logger) error {
		return printNode(r, addr, true)
	})
}

func printNode(r *remoteRegistry, addr util.Uint160, details bool) error {
	n, err := r.reader.GetNode(addr)
	if err != nil {
		return fmt.Errorf("get node %s: %w", address.Uint160ToString(addr), registry.WrapError(err))
	}

	fmt.Printf("%s: %s\n", address.Uint160ToString(addr), formatNode(n))

	if !details || !n.Active {
		return nil
	}

	for id := int64(1); id <= registry.BoostCount; id++ {
		lvl, err := r.reader.BoostLevel(addr, big.NewInt(id))
		if err != nil {
			return fmt.Errorf("get boost #%d: %w", id, registry.WrapError(err))
		}
		fmt.Printf("  boost #%d: level %s/%d\n", id, lvl, registry.MaxBoostLevel)
	}

	bonus, err := r.reader.GetBoostBonusBps(addr)
	if err != nil {
		return fmt.Errorf("get boost bonus: %w", registry.WrapError(err))
	}

	fmt.Printf("  merit bonus: %s bps\n", bonus)

	return nil
}

type nodesCommand struct{}

func (nodesCommand) Execute([]string) error {
	return withRegistry(func(r *remoteRegistry, log *zap.Logger) error {
		addrs, err := r.nodeAddresses()
		if err != nil {
			return err
		}

		log.Debug("registered nodes found", zap.Int("count", len(addrs)))

		for i := range addrs {
			err = printNode(r, addrs[i], false)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

type storageCommand struct{}

func (storageCommand) Execute([]string) error {
	return withRegistry(func(r *remoteRegistry, log *zap.Logger) error {
		var n int

		err := r.iterateContractStorage(func(key, value []byte) error {
			item, err := decodeStorageItem(key, value)
			if err != nil {
				log.Warn("skip undecodable storage item", zap.Binary("key", key), zap.Error(err))
				return nil
			}

			n++
			fmt.Println(item)

			return nil
		})
		if err != nil {
			return err
		}

		log.Debug("storage dumped", zap.Int("items", n))

		return nil
	})
}

type eventsCommand struct {
	Args struct {
		TxHash string `positional-arg-name:"txhash" description:"LE hash of the transaction"`
	} `positional-args:"yes" required:"yes"`
}

func (c *eventsCommand) Execute([]string) error {
	h, err := util.Uint256DecodeStringLE(c.Args.TxHash)
	if err != nil {
		return fmt.Errorf("invalid transaction hash: %w", err)
	}

	return withRegistry(func(r *remoteRegistry, log *zap.Logger) error {
		aer, err := r.applicationLog(h)
		if err != nil {
			return fmt.Errorf("get application log: %w", err)
		}

		for _, ex := range aer.Executions {
			if ex.FaultException != "" {
				fmt.Printf("FAULT: %s\n", registry.WrapError(errors.New(ex.FaultException)))
			}
		}

		lines, err := describeEvents(r.hash, aer)
		if err != nil {
			return err
		}

		for i := range lines {
			fmt.Println(lines[i])
		}

		return nil
	})
}
