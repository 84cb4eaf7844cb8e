package registry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/registry-contract/common"
	"github.com/nspcc-dev/registry-contract/contracts/registry/registryconst"
)

type (
	// Node is a registry record of a single participant.
	Node struct {
		// Set on registration, never reset.
		Active bool
		// One of registryconst tiers.
		Tier int
		// Accumulated merit.
		Merit int
		// Block timestamp (ms) of the registration.
		JoinedAt int
	}

	// Params is a fee schedule of the registry. Fees are in GAS fractions.
	Params struct {
		RegisterFee int
		UpgradeFee  int
		ActionFee   int
		BoostFee    int
		// Share of every fee sent to the treasury, the rest goes to the founder.
		TreasuryBps int
	}
)

const (
	ownerKey      = 'o'
	treasuryKey   = 't'
	founderKey    = 'f'
	paramsKey     = 'p'
	totalNodesKey = 'n'

	nodePrefix  = 'a'
	boostPrefix = 'b'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner       interop.Hash160
		treasury    interop.Hash160
		founder     interop.Hash160
		registerFee int
		upgradeFee  int
		actionFee   int
		boostFee    int
		treasuryBps int
	})

	owner := args.owner
	if len(owner) == 0 {
		owner = runtime.GetScriptContainer().Sender
	}

	checkAddress(owner)
	checkAddress(args.treasury)
	checkAddress(args.founder)

	p := Params{
		RegisterFee: args.registerFee,
		UpgradeFee:  args.upgradeFee,
		ActionFee:   args.actionFee,
		BoostFee:    args.boostFee,
		TreasuryBps: args.treasuryBps,
	}
	checkParams(p)

	storage.Put(ctx, ownerKey, owner)
	storage.Put(ctx, treasuryKey, args.treasury)
	storage.Put(ctx, founderKey, args.founder)
	common.SetSerialized(ctx, paramsKey, p)
	storage.Put(ctx, totalNodesKey, 0)

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	if !common.HasUpdateAccess(getAddress(ctx, ownerKey)) {
		panic(registryconst.ErrUnauthorized + ": only owner can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// Owner returns the address of the registry administrator.
func Owner() interop.Hash160 {
	return getAddress(storage.GetReadOnlyContext(), ownerKey)
}

// Treasury returns the address receiving the treasury share of every fee.
func Treasury() interop.Hash160 {
	return getAddress(storage.GetReadOnlyContext(), treasuryKey)
}

// Founder returns the address receiving the rest of every fee.
func Founder() interop.Hash160 {
	return getAddress(storage.GetReadOnlyContext(), founderKey)
}

// GetParams returns current fee schedule.
func GetParams() Params {
	return getParams(storage.GetReadOnlyContext())
}

// TreasuryBps returns treasury share of fees in basis points.
func TreasuryBps() int {
	return GetParams().TreasuryBps
}

// RegisterFee returns the payment required for registration.
func RegisterFee() int {
	return GetParams().RegisterFee
}

// UpgradeFee returns the payment required for a tier upgrade.
func UpgradeFee() int {
	return GetParams().UpgradeFee
}

// ActionFee returns the payment required for a merit action.
func ActionFee() int {
	return GetParams().ActionFee
}

// BoostFee returns the payment required for a boost level.
func BoostFee() int {
	return GetParams().BoostFee
}

// TotalNodes returns the number of registered nodes.
func TotalNodes() int {
	return common.GetInt(storage.GetReadOnlyContext(), totalNodesKey)
}

// GetNode returns the record of the node. Unknown addresses get an inactive
// record with zero fields.
func GetNode(addr interop.Hash160) Node {
	return getNode(storage.GetReadOnlyContext(), addr)
}

// BoostLevel returns the level of the node's boost with the given ID.
func BoostLevel(addr interop.Hash160, boostID int) int {
	checkBoostID(boostID)
	return getBoostLevel(storage.GetReadOnlyContext(), addr, boostID)
}

// GetBoostBonusBps returns merit bonus of the node in basis points: 1000 per
// level of every boost.
func GetBoostBonusBps(addr interop.Hash160) int {
	return boostBonusBps(storage.GetReadOnlyContext(), addr)
}

// PreviewMerit returns merit that an action with the given base merit would
// credit to the node with its current boosts.
func PreviewMerit(addr interop.Hash160, baseMerit int) int {
	if baseMerit <= 0 {
		panic(registryconst.ErrZeroMerit)
	}

	return boostedMerit(baseMerit, boostBonusBps(storage.GetReadOnlyContext(), addr))
}

// PreviewSplit returns treasury and founder portions of the amount under the
// current fee schedule.
func PreviewSplit(amount int) []int {
	if amount < 0 {
		panic(registryconst.ErrInvalidFee + ": negative amount")
	}

	toTreasury, toFounder := splitFee(amount, GetParams().TreasuryBps)

	return []int{toTreasury, toFounder}
}

// IterateNodes returns an iterator over addresses of all registered nodes.
func IterateNodes() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{nodePrefix}, storage.KeysOnly|storage.RemovePrefix)
}

// AdjustMerit changes merit of the registered node by delta. Negative delta
// never takes merit below zero. It can be invoked only by the owner.
//
// It produces MeritAdjusted notification.
func AdjustMerit(addr interop.Hash160, delta int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	n := requireNode(ctx, addr)
	if delta < 0 && n.Merit+delta < 0 {
		n.Merit = 0
	} else {
		n.Merit += delta
	}

	putNode(ctx, addr, n)

	runtime.Notify("MeritAdjusted", addr, n.Merit)
}

// SetParams overwrites the whole fee schedule. It can be invoked only by the
// owner.
//
// It produces ParamsUpdated notification.
func SetParams(registerFee, upgradeFee, actionFee, boostFee, treasuryBps int) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	p := Params{
		RegisterFee: registerFee,
		UpgradeFee:  upgradeFee,
		ActionFee:   actionFee,
		BoostFee:    boostFee,
		TreasuryBps: treasuryBps,
	}
	checkParams(p)

	common.SetSerialized(ctx, paramsKey, p)

	runtime.Notify("ParamsUpdated", registerFee, upgradeFee, actionFee, boostFee, treasuryBps)
}

// SetPayoutAddresses sets addresses receiving fee portions. It can be invoked
// only by the owner.
//
// It produces PayoutAddressesUpdated notification.
func SetPayoutAddresses(treasury, founder interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	checkAddress(treasury)
	checkAddress(founder)

	storage.Put(ctx, treasuryKey, treasury)
	storage.Put(ctx, founderKey, founder)

	runtime.Notify("PayoutAddressesUpdated", treasury, founder)
}

// TransferOwnership passes administration of the registry to a new owner. It
// can be invoked only by the current owner.
//
// It produces OwnerChanged notification.
func TransferOwnership(newOwner interop.Hash160) {
	ctx := storage.GetContext()
	checkOwner(ctx)

	checkAddress(newOwner)

	runtime.Notify("OwnerChanged", getAddress(ctx, ownerKey), newOwner)

	storage.Put(ctx, ownerKey, newOwner)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func checkOwner(ctx storage.Context) {
	common.CheckOwnerWitness(getAddress(ctx, ownerKey))
}

func checkAddress(h interop.Hash160) {
	if common.IsZeroAddress(h) {
		panic(registryconst.ErrZeroAddress)
	}
}

func checkParams(p Params) {
	if p.TreasuryBps < 0 || p.TreasuryBps > registryconst.BpsDenominator {
		panic(registryconst.ErrInvalidBps + ": " + std.Itoa(p.TreasuryBps, 10))
	}

	if p.RegisterFee < 0 || p.UpgradeFee < 0 || p.ActionFee < 0 || p.BoostFee < 0 {
		panic(registryconst.ErrInvalidFee + ": negative fee")
	}
}

func checkBoostID(id int) {
	if id < 1 || id > registryconst.BoostCount {
		panic(registryconst.ErrInvalidBoostID + ": " + std.Itoa(id, 10))
	}
}

func getAddress(ctx storage.Context, key byte) interop.Hash160 {
	return storage.Get(ctx, key).(interop.Hash160)
}

func getParams(ctx storage.Context) Params {
	return std.Deserialize(storage.Get(ctx, paramsKey).([]byte)).(Params)
}

func nodeKey(addr interop.Hash160) []byte {
	return append([]byte{nodePrefix}, addr...)
}

func getNode(ctx storage.Context, addr interop.Hash160) Node {
	data := storage.Get(ctx, nodeKey(addr))
	if data != nil {
		return std.Deserialize(data.([]byte)).(Node)
	}

	return Node{}
}

// requireNode returns the record of an active node or panics.
func requireNode(ctx storage.Context, addr interop.Hash160) Node {
	n := getNode(ctx, addr)
	if !n.Active {
		panic(registryconst.ErrNotRegistered)
	}

	return n
}

func putNode(ctx storage.Context, addr interop.Hash160, n Node) {
	common.SetSerialized(ctx, nodeKey(addr), n)
}

func boostKey(addr interop.Hash160, id int) []byte {
	return append(append([]byte{boostPrefix}, addr...), byte(id))
}

func getBoostLevel(ctx storage.Context, addr interop.Hash160, id int) int {
	return common.GetInt(ctx, boostKey(addr, id))
}

func boostBonusBps(ctx storage.Context, addr interop.Hash160) int {
	var bonus int
	for id := 1; id <= registryconst.BoostCount; id++ {
		bonus += getBoostLevel(ctx, addr, id) * registryconst.BoostLevelBps
	}

	return bonus
}

// boostedMerit applies bonus to the base merit rounding down.
func boostedMerit(baseMerit, bonusBps int) int {
	return baseMerit * (registryconst.BpsDenominator + bonusBps) / registryconst.BpsDenominator
}

// nextTier returns the tier following t. Tiers never skip a step.
func nextTier(t int) int {
	switch t {
	case registryconst.TierScout:
		return registryconst.TierOperator
	case registryconst.TierOperator:
		return registryconst.TierOverseer
	case registryconst.TierOverseer:
		panic(registryconst.ErrMaxTierReached)
	default:
		panic(registryconst.ErrNotRegistered)
	}
}
