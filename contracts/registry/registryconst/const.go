/*
Package registryconst contains constants shared by the Registry contract and
its off-chain clients.
*/
package registryconst

// Operations requested through the data argument of a GAS payment to the
// Registry contract. The first element of the data array is the operation
// name, the rest are its arguments.
const (
	// OpRegister registers the payment sender as a new node. No arguments.
	OpRegister = "register"
	// OpUpgrade moves the sender's node to the next tier. No arguments.
	OpUpgrade = "upgrade"
	// OpAction credits merit to the sender's node. Argument: base merit.
	OpAction = "action"
	// OpBuyBoost raises one boost level of the sender's node. Argument: boost ID.
	OpBuyBoost = "buyBoost"
)

// Node tiers. Tiers are ordered, a node moves up one step at a time.
const (
	TierNone = iota
	TierScout
	TierOperator
	TierOverseer
)

const (
	// BoostCount is the number of boosts, boost IDs are in [1, BoostCount].
	BoostCount = 5
	// MaxBoostLevel is the highest level of a single boost.
	MaxBoostLevel = 5
	// BoostLevelBps is a merit bonus of a single boost level in basis points.
	BoostLevelBps = 1000

	// BpsDenominator is 100% in basis points.
	BpsDenominator = 10000
)

// Contract exception messages. The contract panics with a message starting
// with one of these names, details may follow after a colon.
const (
	ErrUnauthorized          = "Unauthorized"
	ErrNotRegistered         = "NotRegistered"
	ErrAlreadyRegistered     = "AlreadyRegistered"
	ErrFeeMismatch           = "FeeMismatch"
	ErrMaxTierReached        = "MaxTierReached"
	ErrZeroMerit             = "ZeroMerit"
	ErrInvalidBoostID        = "InvalidBoostId"
	ErrMaxBoostLevel         = "MaxBoostLevel"
	ErrInvalidBps            = "InvalidBps"
	ErrInvalidFee            = "InvalidFee"
	ErrZeroAddress           = "ZeroAddress"
	ErrTransferFailed        = "TransferFailed"
	ErrDirectPaymentRejected = "DirectPaymentRejected"
)
