// Package registry contains RPC wrappers for Node Registry contract.
package registry

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// RegistryNode is a contract-specific registry.Node type used by its methods.
type RegistryNode struct {
	Active   bool
	Tier     *big.Int
	Merit    *big.Int
	JoinedAt *big.Int
}

// RegistryParams is a contract-specific registry.Params type used by its methods.
type RegistryParams struct {
	RegisterFee *big.Int
	UpgradeFee  *big.Int
	ActionFee   *big.Int
	BoostFee    *big.Int
	TreasuryBps *big.Int
}

// RegisteredEvent represents "Registered" event emitted by the contract.
type RegisteredEvent struct {
	Node util.Uint160
	Tier *big.Int
	Fee  *big.Int
}

// UpgradedEvent represents "Upgraded" event emitted by the contract.
type UpgradedEvent struct {
	Node util.Uint160
	Tier *big.Int
	Fee  *big.Int
}

// ActionEvent represents "Action" event emitted by the contract.
type ActionEvent struct {
	Node       util.Uint160
	BaseMerit  *big.Int
	FinalMerit *big.Int
	Fee        *big.Int
}

// MeritAdjustedEvent represents "MeritAdjusted" event emitted by the contract.
type MeritAdjustedEvent struct {
	Node  util.Uint160
	Total *big.Int
}

// BoostPurchasedEvent represents "BoostPurchased" event emitted by the contract.
type BoostPurchasedEvent struct {
	Node    util.Uint160
	BoostID *big.Int
	Level   *big.Int
	Fee     *big.Int
}

// ParamsUpdatedEvent represents "ParamsUpdated" event emitted by the contract.
type ParamsUpdatedEvent struct {
	RegisterFee *big.Int
	UpgradeFee  *big.Int
	ActionFee   *big.Int
	BoostFee    *big.Int
	TreasuryBps *big.Int
}

// PayoutAddressesUpdatedEvent represents "PayoutAddressesUpdated" event emitted by the contract.
type PayoutAddressesUpdatedEvent struct {
	Treasury util.Uint160
	Founder  util.Uint160
}

// OwnerChangedEvent represents "OwnerChanged" event emitted by the contract.
type OwnerChangedEvent struct {
	OldOwner util.Uint160
	NewOwner util.Uint160
}

// PayoutEvent represents "Payout" event emitted by the contract.
type PayoutEvent struct {
	Recipient util.Uint160
	Amount    *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// ActionFee invokes `actionFee` method of contract.
func (c *ContractReader) ActionFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "actionFee"))
}

// BoostFee invokes `boostFee` method of contract.
func (c *ContractReader) BoostFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "boostFee"))
}

// BoostLevel invokes `boostLevel` method of contract.
func (c *ContractReader) BoostLevel(addr util.Uint160, boostID *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "boostLevel", addr, boostID))
}

// Founder invokes `founder` method of contract.
func (c *ContractReader) Founder() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "founder"))
}

// GetBoostBonusBps invokes `getBoostBonusBps` method of contract.
func (c *ContractReader) GetBoostBonusBps(addr util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBoostBonusBps", addr))
}

// GetNode invokes `getNode` method of contract.
func (c *ContractReader) GetNode(addr util.Uint160) (*RegistryNode, error) {
	return itemToRegistryNode(unwrap.Item(c.invoker.Call(c.hash, "getNode", addr)))
}

// GetParams invokes `getParams` method of contract.
func (c *ContractReader) GetParams() (*RegistryParams, error) {
	return itemToRegistryParams(unwrap.Item(c.invoker.Call(c.hash, "getParams")))
}

// IterateNodes invokes `iterateNodes` method of contract.
func (c *ContractReader) IterateNodes() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateNodes"))
}

// IterateNodesExpanded is similar to IterateNodes (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateNodesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateNodes", _numOfIteratorItems))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// PreviewMerit invokes `previewMerit` method of contract.
func (c *ContractReader) PreviewMerit(addr util.Uint160, baseMerit *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "previewMerit", addr, baseMerit))
}

// PreviewSplit invokes `previewSplit` method of contract.
func (c *ContractReader) PreviewSplit(amount *big.Int) ([]*big.Int, error) {
	return unwrap.ArrayOfBigInts(c.invoker.Call(c.hash, "previewSplit", amount))
}

// RegisterFee invokes `registerFee` method of contract.
func (c *ContractReader) RegisterFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "registerFee"))
}

// TotalNodes invokes `totalNodes` method of contract.
func (c *ContractReader) TotalNodes() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalNodes"))
}

// Treasury invokes `treasury` method of contract.
func (c *ContractReader) Treasury() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "treasury"))
}

// TreasuryBps invokes `treasuryBps` method of contract.
func (c *ContractReader) TreasuryBps() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "treasuryBps"))
}

// UpgradeFee invokes `upgradeFee` method of contract.
func (c *ContractReader) UpgradeFee() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "upgradeFee"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AdjustMerit creates a transaction invoking `adjustMerit` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AdjustMerit(addr util.Uint160, delta *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "adjustMerit", addr, delta)
}

// AdjustMeritTransaction creates a transaction invoking `adjustMerit` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AdjustMeritTransaction(addr util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "adjustMerit", addr, delta)
}

// AdjustMeritUnsigned creates a transaction invoking `adjustMerit` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AdjustMeritUnsigned(addr util.Uint160, delta *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "adjustMerit", nil, addr, delta)
}

// SetParams creates a transaction invoking `setParams` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetParams(p *RegistryParams) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setParams", p.args()...)
}

// SetParamsTransaction creates a transaction invoking `setParams` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetParamsTransaction(p *RegistryParams) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setParams", p.args()...)
}

// SetParamsUnsigned creates a transaction invoking `setParams` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetParamsUnsigned(p *RegistryParams) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setParams", nil, p.args()...)
}

// SetPayoutAddresses creates a transaction invoking `setPayoutAddresses` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetPayoutAddresses(treasury util.Uint160, founder util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setPayoutAddresses", treasury, founder)
}

// SetPayoutAddressesTransaction creates a transaction invoking `setPayoutAddresses` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetPayoutAddressesTransaction(treasury util.Uint160, founder util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setPayoutAddresses", treasury, founder)
}

// SetPayoutAddressesUnsigned creates a transaction invoking `setPayoutAddresses` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetPayoutAddressesUnsigned(treasury util.Uint160, founder util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setPayoutAddresses", nil, treasury, founder)
}

// TransferOwnership creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TransferOwnership(newOwner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipTransaction creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferOwnershipTransaction(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transferOwnership", newOwner)
}

// TransferOwnershipUnsigned creates a transaction invoking `transferOwnership` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferOwnershipUnsigned(newOwner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transferOwnership", nil, newOwner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

func (p *RegistryParams) args() []any {
	return []any{p.RegisterFee, p.UpgradeFee, p.ActionFee, p.BoostFee, p.TreasuryBps}
}

// itemToRegistryNode converts stack item into *RegistryNode.
func itemToRegistryNode(item stackitem.Item, err error) (*RegistryNode, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryNode)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryNode from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryNode) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 4)
	if err != nil {
		return err
	}

	res.Active, err = arr[0].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	res.Tier, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Tier: %w", err)
	}

	res.Merit, err = arr[2].TryInteger()
	if err != nil {
		return fmt.Errorf("field Merit: %w", err)
	}

	res.JoinedAt, err = arr[3].TryInteger()
	if err != nil {
		return fmt.Errorf("field JoinedAt: %w", err)
	}

	return nil
}

// itemToRegistryParams converts stack item into *RegistryParams.
func itemToRegistryParams(item stackitem.Item, err error) (*RegistryParams, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryParams)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryParams from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryParams) FromStackItem(item stackitem.Item) error {
	arr, err := structFields(item, 5)
	if err != nil {
		return err
	}

	return integerFields(arr, map[string]**big.Int{
		"RegisterFee": &res.RegisterFee,
		"UpgradeFee":  &res.UpgradeFee,
		"ActionFee":   &res.ActionFee,
		"BoostFee":    &res.BoostFee,
		"TreasuryBps": &res.TreasuryBps,
	}, "RegisterFee", "UpgradeFee", "ActionFee", "BoostFee", "TreasuryBps")
}

// RegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "Registered" name from the provided [result.ApplicationLog].
func RegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*RegisteredEvent, error) {
	return eventsFromApplicationLog(log, "Registered", func() *RegisteredEvent { return new(RegisteredEvent) })
}

// FromStackItem converts provided [stackitem.Array] to RegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *RegisteredEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Node, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	return integerFields(arr[1:], map[string]**big.Int{
		"Tier": &e.Tier,
		"Fee":  &e.Fee,
	}, "Tier", "Fee")
}

// UpgradedEventsFromApplicationLog retrieves a set of all emitted events
// with "Upgraded" name from the provided [result.ApplicationLog].
func UpgradedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UpgradedEvent, error) {
	return eventsFromApplicationLog(log, "Upgraded", func() *UpgradedEvent { return new(UpgradedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to UpgradedEvent or
// returns an error if it's not possible to do to so.
func (e *UpgradedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 3)
	if err != nil {
		return err
	}

	e.Node, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	return integerFields(arr[1:], map[string]**big.Int{
		"Tier": &e.Tier,
		"Fee":  &e.Fee,
	}, "Tier", "Fee")
}

// ActionEventsFromApplicationLog retrieves a set of all emitted events
// with "Action" name from the provided [result.ApplicationLog].
func ActionEventsFromApplicationLog(log *result.ApplicationLog) ([]*ActionEvent, error) {
	return eventsFromApplicationLog(log, "Action", func() *ActionEvent { return new(ActionEvent) })
}

// FromStackItem converts provided [stackitem.Array] to ActionEvent or
// returns an error if it's not possible to do to so.
func (e *ActionEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 4)
	if err != nil {
		return err
	}

	e.Node, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	return integerFields(arr[1:], map[string]**big.Int{
		"BaseMerit":  &e.BaseMerit,
		"FinalMerit": &e.FinalMerit,
		"Fee":        &e.Fee,
	}, "BaseMerit", "FinalMerit", "Fee")
}

// MeritAdjustedEventsFromApplicationLog retrieves a set of all emitted events
// with "MeritAdjusted" name from the provided [result.ApplicationLog].
func MeritAdjustedEventsFromApplicationLog(log *result.ApplicationLog) ([]*MeritAdjustedEvent, error) {
	return eventsFromApplicationLog(log, "MeritAdjusted", func() *MeritAdjustedEvent { return new(MeritAdjustedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to MeritAdjustedEvent or
// returns an error if it's not possible to do to so.
func (e *MeritAdjustedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Node, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	e.Total, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Total: %w", err)
	}

	return nil
}

// BoostPurchasedEventsFromApplicationLog retrieves a set of all emitted events
// with "BoostPurchased" name from the provided [result.ApplicationLog].
func BoostPurchasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*BoostPurchasedEvent, error) {
	return eventsFromApplicationLog(log, "BoostPurchased", func() *BoostPurchasedEvent { return new(BoostPurchasedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to BoostPurchasedEvent or
// returns an error if it's not possible to do to so.
func (e *BoostPurchasedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 4)
	if err != nil {
		return err
	}

	e.Node, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	return integerFields(arr[1:], map[string]**big.Int{
		"BoostID": &e.BoostID,
		"Level":   &e.Level,
		"Fee":     &e.Fee,
	}, "BoostID", "Level", "Fee")
}

// ParamsUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ParamsUpdated" name from the provided [result.ApplicationLog].
func ParamsUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ParamsUpdatedEvent, error) {
	return eventsFromApplicationLog(log, "ParamsUpdated", func() *ParamsUpdatedEvent { return new(ParamsUpdatedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to ParamsUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *ParamsUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 5)
	if err != nil {
		return err
	}

	return integerFields(arr, map[string]**big.Int{
		"RegisterFee": &e.RegisterFee,
		"UpgradeFee":  &e.UpgradeFee,
		"ActionFee":   &e.ActionFee,
		"BoostFee":    &e.BoostFee,
		"TreasuryBps": &e.TreasuryBps,
	}, "RegisterFee", "UpgradeFee", "ActionFee", "BoostFee", "TreasuryBps")
}

// PayoutAddressesUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PayoutAddressesUpdated" name from the provided [result.ApplicationLog].
func PayoutAddressesUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PayoutAddressesUpdatedEvent, error) {
	return eventsFromApplicationLog(log, "PayoutAddressesUpdated", func() *PayoutAddressesUpdatedEvent { return new(PayoutAddressesUpdatedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to PayoutAddressesUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *PayoutAddressesUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Treasury, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Treasury: %w", err)
	}

	e.Founder, err = uint160FromItem(arr[1])
	if err != nil {
		return fmt.Errorf("field Founder: %w", err)
	}

	return nil
}

// OwnerChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "OwnerChanged" name from the provided [result.ApplicationLog].
func OwnerChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*OwnerChangedEvent, error) {
	return eventsFromApplicationLog(log, "OwnerChanged", func() *OwnerChangedEvent { return new(OwnerChangedEvent) })
}

// FromStackItem converts provided [stackitem.Array] to OwnerChangedEvent or
// returns an error if it's not possible to do to so.
func (e *OwnerChangedEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.OldOwner, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field OldOwner: %w", err)
	}

	e.NewOwner, err = uint160FromItem(arr[1])
	if err != nil {
		return fmt.Errorf("field NewOwner: %w", err)
	}

	return nil
}

// PayoutEventsFromApplicationLog retrieves a set of all emitted events
// with "Payout" name from the provided [result.ApplicationLog].
func PayoutEventsFromApplicationLog(log *result.ApplicationLog) ([]*PayoutEvent, error) {
	return eventsFromApplicationLog(log, "Payout", func() *PayoutEvent { return new(PayoutEvent) })
}

// FromStackItem converts provided [stackitem.Array] to PayoutEvent or
// returns an error if it's not possible to do to so.
func (e *PayoutEvent) FromStackItem(item *stackitem.Array) error {
	arr, err := eventFields(item, 2)
	if err != nil {
		return err
	}

	e.Recipient, err = uint160FromItem(arr[0])
	if err != nil {
		return fmt.Errorf("field Recipient: %w", err)
	}

	e.Amount, err = arr[1].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

type stackItemEvent interface {
	FromStackItem(item *stackitem.Array) error
}

func eventsFromApplicationLog[E stackItemEvent](log *result.ApplicationLog, name string, alloc func() E) ([]E, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []E
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != name {
				continue
			}
			event := alloc()
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize %sEvent from stackitem (execution #%d, event #%d): %w", name, i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

func eventFields(item *stackitem.Array, n int) ([]stackitem.Item, error) {
	if item == nil {
		return nil, errors.New("nil item")
	}
	return structFields(item, n)
}

func structFields(item stackitem.Item, n int) ([]stackitem.Item, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	if len(arr) != n {
		return nil, errors.New("wrong number of structure elements")
	}
	return arr, nil
}

// integerFields decodes consecutive integer items into the named fields.
func integerFields(arr []stackitem.Item, dst map[string]**big.Int, names ...string) error {
	for i, name := range names {
		v, err := arr[i].TryInteger()
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		*dst[name] = v
	}
	return nil
}

func uint160FromItem(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}
