package registry

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/registry-contract/contracts/registry/registryconst"
)

// PayActor is used by Payer to send GAS on behalf of a node.
type PayActor interface {
	nep17.Actor

	Sender() util.Uint160
}

// Payer requests paid operations of the Registry contract. Every request is
// a GAS transfer from the actor's sender to the contract, the sender is the
// node the operation is applied to. The fee must be exactly the one the
// contract currently charges for the operation, see [ContractReader.GetParams].
type Payer struct {
	token *nep17.Token
	actor PayActor
	hash  util.Uint160
}

// NewPayer creates an instance of Payer using provided Registry contract hash
// and the given actor.
func NewPayer(actor PayActor, hash util.Uint160) *Payer {
	return &Payer{gas.New(actor), actor, hash}
}

// PaymentData returns data argument of the GAS transfer requesting the
// operation.
func PaymentData(op string, args ...any) []any {
	return append([]any{op}, args...)
}

// Register sends GAS transfer registering the sender as a new node.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (p *Payer) Register(fee *big.Int) (util.Uint256, uint32, error) {
	return p.send(fee, PaymentData(registryconst.OpRegister))
}

// RegisterTransaction is similar to Register, but returns the signed
// transaction instead of sending it.
func (p *Payer) RegisterTransaction(fee *big.Int) (*transaction.Transaction, error) {
	return p.make(fee, PaymentData(registryconst.OpRegister))
}

// Upgrade sends GAS transfer moving the sender's node to the next tier.
func (p *Payer) Upgrade(fee *big.Int) (util.Uint256, uint32, error) {
	return p.send(fee, PaymentData(registryconst.OpUpgrade))
}

// UpgradeTransaction is similar to Upgrade, but returns the signed
// transaction instead of sending it.
func (p *Payer) UpgradeTransaction(fee *big.Int) (*transaction.Transaction, error) {
	return p.make(fee, PaymentData(registryconst.OpUpgrade))
}

// Action sends GAS transfer crediting boosted baseMerit to the sender's node.
func (p *Payer) Action(fee *big.Int, baseMerit *big.Int) (util.Uint256, uint32, error) {
	return p.send(fee, PaymentData(registryconst.OpAction, baseMerit))
}

// ActionTransaction is similar to Action, but returns the signed
// transaction instead of sending it.
func (p *Payer) ActionTransaction(fee *big.Int, baseMerit *big.Int) (*transaction.Transaction, error) {
	return p.make(fee, PaymentData(registryconst.OpAction, baseMerit))
}

// BuyBoost sends GAS transfer raising the level of the sender's boost.
func (p *Payer) BuyBoost(fee *big.Int, boostID *big.Int) (util.Uint256, uint32, error) {
	return p.send(fee, PaymentData(registryconst.OpBuyBoost, boostID))
}

// BuyBoostTransaction is similar to BuyBoost, but returns the signed
// transaction instead of sending it.
func (p *Payer) BuyBoostTransaction(fee *big.Int, boostID *big.Int) (*transaction.Transaction, error) {
	return p.make(fee, PaymentData(registryconst.OpBuyBoost, boostID))
}

func (p *Payer) send(fee *big.Int, data []any) (util.Uint256, uint32, error) {
	h, vub, err := p.token.Transfer(p.actor.Sender(), p.hash, fee, data)
	return h, vub, WrapError(err)
}

func (p *Payer) make(fee *big.Int, data []any) (*transaction.Transaction, error) {
	tx, err := p.token.TransferTransaction(p.actor.Sender(), p.hash, fee, data)
	return tx, WrapError(err)
}
