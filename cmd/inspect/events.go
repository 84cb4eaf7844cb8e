package main

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/registry-contract/rpc/registry"
)

// registryLog returns a copy of the log with notifications of the given
// contract only.
func registryLog(contract util.Uint160, log *result.ApplicationLog) *result.ApplicationLog {
	res := &result.ApplicationLog{
		Container:     log.Container,
		IsTransaction: log.IsTransaction,
	}

	for _, ex := range log.Executions {
		var events []state.NotificationEvent
		for _, e := range ex.Events {
			if e.ScriptHash.Equals(contract) {
				events = append(events, e)
			}
		}

		ex.Events = events
		res.Executions = append(res.Executions, ex)
	}

	return res
}

// describeEvents returns human-readable lines for all Registry notifications
// in the log. Lines are grouped by notification name.
func describeEvents(contract util.Uint160, log *result.ApplicationLog) ([]string, error) {
	log = registryLog(contract, log)

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	registered, err := registry.RegisteredEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range registered {
		add("Registered: node=%s tier=%s fee=%s", address.Uint160ToString(e.Node), tierName(e.Tier.Int64()), formatGAS(e.Fee))
	}

	upgraded, err := registry.UpgradedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range upgraded {
		add("Upgraded: node=%s tier=%s fee=%s", address.Uint160ToString(e.Node), tierName(e.Tier.Int64()), formatGAS(e.Fee))
	}

	actions, err := registry.ActionEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range actions {
		add("Action: node=%s base=%s final=%s fee=%s", address.Uint160ToString(e.Node), e.BaseMerit, e.FinalMerit, formatGAS(e.Fee))
	}

	merits, err := registry.MeritAdjustedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range merits {
		add("MeritAdjusted: node=%s total=%s", address.Uint160ToString(e.Node), e.Total)
	}

	boosts, err := registry.BoostPurchasedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range boosts {
		add("BoostPurchased: node=%s boost=%s level=%s fee=%s", address.Uint160ToString(e.Node), e.BoostID, e.Level, formatGAS(e.Fee))
	}

	params, err := registry.ParamsUpdatedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range params {
		add("ParamsUpdated: %s", formatParams(&registry.RegistryParams{
			RegisterFee: e.RegisterFee,
			UpgradeFee:  e.UpgradeFee,
			ActionFee:   e.ActionFee,
			BoostFee:    e.BoostFee,
			TreasuryBps: e.TreasuryBps,
		}))
	}

	payoutAddrs, err := registry.PayoutAddressesUpdatedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range payoutAddrs {
		add("PayoutAddressesUpdated: treasury=%s founder=%s", address.Uint160ToString(e.Treasury), address.Uint160ToString(e.Founder))
	}

	owners, err := registry.OwnerChangedEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range owners {
		add("OwnerChanged: old=%s new=%s", address.Uint160ToString(e.OldOwner), address.Uint160ToString(e.NewOwner))
	}

	payouts, err := registry.PayoutEventsFromApplicationLog(log)
	if err != nil {
		return nil, err
	}
	for _, e := range payouts {
		add("Payout: recipient=%s amount=%s", address.Uint160ToString(e.Recipient), formatGAS(e.Amount))
	}

	return lines, nil
}

func tierName(t int64) string {
	return registry.Tier(t).String()
}
