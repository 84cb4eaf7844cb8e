package registry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/lib/address"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/registry-contract/common"
	"github.com/nspcc-dev/registry-contract/contracts/registry/registryconst"
)

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// It is the only entry point of paid operations: data must be an array with
// the operation name first and its arguments after it, see registryconst
// Op* constants. The sender of the payment is the node the operation is
// applied to, the amount must be exactly the fee of the operation.
//
// Payments in other tokens, payments without a known operation and payments
// without a sender are rejected.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		panic(registryconst.ErrDirectPaymentRejected + ": only GAS is accepted")
	}

	if len(from) != interop.Hash160Len {
		panic(registryconst.ErrDirectPaymentRejected + ": missing sender")
	}

	if data == nil {
		panic(registryconst.ErrDirectPaymentRejected + ": no operation requested")
	}

	if !isArray(data) {
		panic(registryconst.ErrDirectPaymentRejected + ": data must be an array")
	}

	args := data.([]any)
	if len(args) == 0 {
		panic(registryconst.ErrDirectPaymentRejected + ": no operation requested")
	}

	if !isBytes(args[0]) {
		panic(registryconst.ErrDirectPaymentRejected + ": operation name must be a string")
	}

	ctx := storage.GetContext()

	switch args[0].(string) {
	case registryconst.OpRegister:
		registerNode(ctx, from, amount)
	case registryconst.OpUpgrade:
		upgradeTier(ctx, from, amount)
	case registryconst.OpAction:
		nodeAction(ctx, from, intArg(args), amount)
	case registryconst.OpBuyBoost:
		buyBoost(ctx, from, intArg(args), amount)
	default:
		panic(registryconst.ErrDirectPaymentRejected + ": unknown operation")
	}
}

// Stack item type tags of std.Serialize output.
const (
	byteStringTag = 0x28
	bufferTag     = 0x30
	arrayTag      = 0x40
	structTag     = 0x41
)

func typeTag(v any) byte {
	return std.Serialize(v)[0]
}

func isArray(v any) bool {
	tag := typeTag(v)
	return tag == arrayTag || tag == structTag
}

func isBytes(v any) bool {
	tag := typeTag(v)
	return tag == byteStringTag || tag == bufferTag
}

func intArg(args []any) int {
	if len(args) < 2 {
		panic(registryconst.ErrDirectPaymentRejected + ": missing operation argument")
	}

	return args[1].(int)
}

func checkFee(payment, fee int) {
	if payment != fee {
		panic(registryconst.ErrFeeMismatch + ": expected " + std.Itoa(fee, 10) +
			", got " + std.Itoa(payment, 10))
	}
}

func registerNode(ctx storage.Context, addr interop.Hash160, payment int) {
	if getNode(ctx, addr).Active {
		panic(registryconst.ErrAlreadyRegistered)
	}

	p := getParams(ctx)
	checkFee(payment, p.RegisterFee)

	n := Node{
		Active:   true,
		Tier:     registryconst.TierScout,
		Merit:    0,
		JoinedAt: runtime.GetTime(),
	}
	putNode(ctx, addr, n)
	storage.Put(ctx, totalNodesKey, common.GetInt(ctx, totalNodesKey)+1)

	runtime.Notify("Registered", addr, n.Tier, payment)

	disburse(ctx, p, payment)
}

func upgradeTier(ctx storage.Context, addr interop.Hash160, payment int) {
	n := requireNode(ctx, addr)
	tier := nextTier(n.Tier)

	p := getParams(ctx)
	checkFee(payment, p.UpgradeFee)

	n.Tier = tier
	putNode(ctx, addr, n)

	runtime.Notify("Upgraded", addr, n.Tier, payment)

	disburse(ctx, p, payment)
}

func nodeAction(ctx storage.Context, addr interop.Hash160, baseMerit, payment int) {
	n := requireNode(ctx, addr)

	p := getParams(ctx)
	checkFee(payment, p.ActionFee)

	if baseMerit <= 0 {
		panic(registryconst.ErrZeroMerit)
	}

	finalMerit := boostedMerit(baseMerit, boostBonusBps(ctx, addr))
	n.Merit += finalMerit
	putNode(ctx, addr, n)

	runtime.Notify("Action", addr, baseMerit, finalMerit, payment)
	runtime.Notify("MeritAdjusted", addr, n.Merit)

	disburse(ctx, p, payment)
}

func buyBoost(ctx storage.Context, addr interop.Hash160, boostID, payment int) {
	requireNode(ctx, addr)
	checkBoostID(boostID)

	p := getParams(ctx)
	checkFee(payment, p.BoostFee)

	level := getBoostLevel(ctx, addr, boostID)
	if level >= registryconst.MaxBoostLevel {
		panic(registryconst.ErrMaxBoostLevel)
	}

	level++
	storage.Put(ctx, boostKey(addr, boostID), level)

	runtime.Notify("BoostPurchased", addr, boostID, level, payment)

	disburse(ctx, p, payment)
}

// splitFee returns treasury and founder portions of the amount. Portions
// always sum up to the amount.
func splitFee(amount, treasuryBps int) (int, int) {
	toTreasury := amount * treasuryBps / registryconst.BpsDenominator
	return toTreasury, amount - toTreasury
}

// disburse forwards received payment to the payout addresses. It must be
// called after all state changes of the operation: payees get control during
// the transfer.
func disburse(ctx storage.Context, p Params, amount int) {
	toTreasury, toFounder := splitFee(amount, p.TreasuryBps)
	self := runtime.GetExecutingScriptHash()

	if toTreasury > 0 {
		payout(self, getAddress(ctx, treasuryKey), toTreasury)
	}

	if toFounder > 0 {
		payout(self, getAddress(ctx, founderKey), toFounder)
	}
}

func payout(from, to interop.Hash160, amount int) {
	if !gas.Transfer(from, to, amount, nil) {
		panic(registryconst.ErrTransferFailed + ": " + address.FromHash160(to))
	}

	runtime.Notify("Payout", to, amount)
}
