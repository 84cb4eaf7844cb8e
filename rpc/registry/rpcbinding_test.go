package registry

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke

	method string
	params []any
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	t.method, t.params = operation, params
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{
		State: "HALT",
		Stack: items,
	}
}

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})
	addr := util.Uint160{4, 5, 6}

	ti.err = errors.New("bad")
	_, err := r.GetNode(addr)
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.Make([]stackitem.Item{}))
	_, err = r.GetNode(addr)
	require.Error(t, err)

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(true),
		stackitem.Make(int64(TierOperator)),
		stackitem.Make(120),
		stackitem.Make(1700000000000),
	}))
	n, err := r.GetNode(addr)
	require.NoError(t, err)
	require.Equal(t, "getNode", ti.method)
	require.Equal(t, []any{addr}, ti.params)
	require.True(t, n.Active)
	require.Equal(t, TierOperator, TierOf(n))
	require.EqualValues(t, 120, n.Merit.Int64())
	require.EqualValues(t, 1700000000000, n.JoinedAt.Int64())

	ti.res = halt(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(1), stackitem.Make(2), stackitem.Make(3), stackitem.Make(4), stackitem.Make(3000),
	}))
	p, err := r.GetParams()
	require.NoError(t, err)
	require.EqualValues(t, 1, p.RegisterFee.Int64())
	require.EqualValues(t, 2, p.UpgradeFee.Int64())
	require.EqualValues(t, 3, p.ActionFee.Int64())
	require.EqualValues(t, 4, p.BoostFee.Int64())
	require.EqualValues(t, 3000, p.TreasuryBps.Int64())

	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make(30), stackitem.Make(70)}))
	split, err := r.PreviewSplit(big.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, []*big.Int{big.NewInt(30), big.NewInt(70)}, split)

	ti.res = halt(stackitem.Make(addr.BytesBE()))
	owner, err := r.Owner()
	require.NoError(t, err)
	require.Equal(t, addr, owner)

	ti.res = &result.Invoke{
		State:          "FAULT",
		FaultException: "at instruction 42 (THROW): unhandled exception: \"InvalidBoostId: 6\"",
	}
	_, err = r.BoostLevel(addr, big.NewInt(6))
	require.Error(t, err)
	require.ErrorIs(t, WrapError(err), ErrInvalidBoostID)
}

func TestParseError(t *testing.T) {
	for _, tc := range []struct {
		msg     string
		kind    *ContractError
		details string
	}{
		{"unhandled exception: \"FeeMismatch: expected 100, got 99\"", ErrFeeMismatch, "expected 100, got 99"},
		{"Unauthorized: owner witness check failed", ErrUnauthorized, "owner witness check failed"},
		{"MaxTierReached", ErrMaxTierReached, ""},
		{"DirectPaymentRejected: unknown operation", ErrDirectPaymentRejected, "unknown operation"},
		{"ZeroAddress", ErrZeroAddress, ""},
	} {
		ce := ParseError(tc.msg)
		require.NotNil(t, ce, tc.msg)
		require.ErrorIs(t, ce, tc.kind)
		require.Equal(t, tc.details, ce.Details)
	}

	require.Nil(t, ParseError("method not found: register/0"))

	err := errors.New("transport error")
	require.Equal(t, err, WrapError(err))
	require.NoError(t, WrapError(nil))
	require.False(t, errors.Is(ParseError("ZeroMerit"), ErrZeroAddress))
}

func TestTier(t *testing.T) {
	require.Equal(t, "scout", TierScout.String())
	require.Equal(t, "overseer", TierOverseer.String())
	require.Equal(t, "unknown", Tier(7).String())
	require.Equal(t, TierNone, TierOf(nil))

	next, ok := TierScout.Next()
	require.True(t, ok)
	require.Equal(t, TierOperator, next)

	next, ok = TierOperator.Next()
	require.True(t, ok)
	require.Equal(t, TierOverseer, next)

	_, ok = TierOverseer.Next()
	require.False(t, ok)

	_, ok = TierNone.Next()
	require.False(t, ok)
}

func TestSplitFee(t *testing.T) {
	for _, tc := range []struct {
		amount, bps, treasury int64
	}{
		{100, 3000, 30},
		{7, 3333, 2},
		{1, 9999, 0},
		{10, 10000, 10},
		{10, 0, 0},
		{0, 5000, 0},
	} {
		toTreasury, toFounder := SplitFee(big.NewInt(tc.amount), big.NewInt(tc.bps))
		require.EqualValues(t, tc.treasury, toTreasury.Int64())
		require.EqualValues(t, tc.amount, toTreasury.Int64()+toFounder.Int64())
	}
}

func TestEventsFromApplicationLog(t *testing.T) {
	node := util.Uint160{1, 2, 3}
	treasury := util.Uint160{7, 7, 7}

	log := &result.ApplicationLog{
		Container: util.Uint256{1},
		Executions: []state.Execution{{
			Trigger: trigger.Application,
			VMState: vmstate.Halt,
			Events: []state.NotificationEvent{
				{
					Name: "Registered",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(node.BytesBE()), stackitem.Make(1), stackitem.Make(100),
					}),
				},
				{
					Name: "Payout",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(treasury.BytesBE()), stackitem.Make(30),
					}),
				},
				{
					Name: "Payout",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(node.BytesBE()), stackitem.Make(70),
					}),
				},
			},
		}},
	}

	reg, err := RegisteredEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, reg, 1)
	require.Equal(t, node, reg[0].Node)
	require.EqualValues(t, 1, reg[0].Tier.Int64())
	require.EqualValues(t, 100, reg[0].Fee.Int64())

	payouts, err := PayoutEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, payouts, 2)
	require.Equal(t, treasury, payouts[0].Recipient)
	require.EqualValues(t, 70, payouts[1].Amount.Int64())

	upgrades, err := UpgradedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, upgrades)

	_, err = PayoutEventsFromApplicationLog(nil)
	require.Error(t, err)

	log.Executions[0].Events[1].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})
	_, err = PayoutEventsFromApplicationLog(log)
	require.Error(t, err)
}

type testActor struct {
	testInv

	sender util.Uint160
	script []byte
	err    error
}

func (a *testActor) MakeRun(script []byte) (*transaction.Transaction, error) {
	a.script = script
	return transaction.New(script, 0), a.err
}

func (a *testActor) MakeUnsignedRun(script []byte, _ []transaction.Attribute) (*transaction.Transaction, error) {
	return a.MakeRun(script)
}

func (a *testActor) SendRun(script []byte) (util.Uint256, uint32, error) {
	a.script = script
	return util.Uint256{1, 2, 3}, 100, a.err
}

func (a *testActor) Sender() util.Uint160 {
	return a.sender
}

func (a *testActor) MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error) {
	a.method, a.params = method, params
	return transaction.New([]byte{1}, 0), a.err
}

func (a *testActor) MakeUnsignedCall(contract util.Uint160, method string, _ []transaction.Attribute, params ...any) (*transaction.Transaction, error) {
	return a.MakeCall(contract, method, params...)
}

func (a *testActor) SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error) {
	a.method, a.params = method, params
	return util.Uint256{4, 5, 6}, 200, a.err
}

func TestContract(t *testing.T) {
	act := new(testActor)
	c := New(act, util.Uint160{1, 2, 3})
	addr := util.Uint160{4, 5, 6}
	treasury, founder := util.Uint160{7}, util.Uint160{8}

	h, vub, err := c.AdjustMerit(addr, big.NewInt(-5))
	require.NoError(t, err)
	require.Equal(t, util.Uint256{4, 5, 6}, h)
	require.EqualValues(t, 200, vub)
	require.Equal(t, "adjustMerit", act.method)
	require.Equal(t, []any{addr, big.NewInt(-5)}, act.params)

	_, err = c.AdjustMeritTransaction(addr, big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, "adjustMerit", act.method)

	p := &RegistryParams{
		RegisterFee: big.NewInt(1),
		UpgradeFee:  big.NewInt(2),
		ActionFee:   big.NewInt(3),
		BoostFee:    big.NewInt(4),
		TreasuryBps: big.NewInt(5),
	}
	expected := []any{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4), big.NewInt(5)}

	_, _, err = c.SetParams(p)
	require.NoError(t, err)
	require.Equal(t, "setParams", act.method)
	require.Equal(t, expected, act.params)

	_, err = c.SetParamsTransaction(p)
	require.NoError(t, err)
	require.Equal(t, expected, act.params)

	_, err = c.SetParamsUnsigned(p)
	require.NoError(t, err)
	require.Equal(t, expected, act.params)

	_, _, err = c.SetPayoutAddresses(treasury, founder)
	require.NoError(t, err)
	require.Equal(t, "setPayoutAddresses", act.method)
	require.Equal(t, []any{treasury, founder}, act.params)

	_, err = c.SetPayoutAddressesUnsigned(treasury, founder)
	require.NoError(t, err)
	require.Equal(t, []any{treasury, founder}, act.params)

	_, err = c.TransferOwnershipTransaction(addr)
	require.NoError(t, err)
	require.Equal(t, "transferOwnership", act.method)
	require.Equal(t, []any{addr}, act.params)

	_, err = c.UpdateUnsigned([]byte{1}, []byte{2}, nil)
	require.NoError(t, err)
	require.Equal(t, "update", act.method)
	require.Equal(t, []any{[]byte{1}, []byte{2}, nil}, act.params)

	act.err = errors.New("at instruction 42 (THROW): unhandled exception: \"Unauthorized\"")
	_, _, err = c.TransferOwnership(addr)
	require.Error(t, err)

	_, _, err = c.Update(nil, nil, nil)
	require.Error(t, err)
	require.Equal(t, "update", act.method)

	act.err = nil
	act.res = halt(stackitem.Make(7))
	v, err := c.Version()
	require.NoError(t, err)
	require.EqualValues(t, 7, v.Int64())
	require.Equal(t, "version", act.method)
}

func TestPayer(t *testing.T) {
	act := &testActor{sender: util.Uint160{9}}
	p := NewPayer(act, util.Uint160{1, 2, 3})

	h, vub, err := p.Register(big.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, util.Uint256{1, 2, 3}, h)
	require.EqualValues(t, 100, vub)
	require.NotEmpty(t, act.script)

	tx, err := p.BuyBoostTransaction(big.NewInt(5), big.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, act.script, tx.Script)

	act.err = errors.New("at instruction 17 (THROW): unhandled exception: \"FeeMismatch: expected 10, got 5\"")
	_, _, err = p.Action(big.NewInt(5), big.NewInt(10))
	require.ErrorIs(t, err, ErrFeeMismatch)

	require.Equal(t, []any{"buyBoost", 3}, PaymentData("buyBoost", 3))
}
