package registry

import (
	"errors"
	"strings"

	"github.com/nspcc-dev/registry-contract/contracts/registry/registryconst"
)

// ContractError is an exception thrown by the Registry contract. Kind is one
// of the registryconst Err* names, Details is the rest of the message.
type ContractError struct {
	Kind    string
	Details string
}

// Errors thrown by the contract, use errors.Is to match the result of
// [ParseError].
var (
	ErrUnauthorized          = &ContractError{Kind: registryconst.ErrUnauthorized}
	ErrNotRegistered         = &ContractError{Kind: registryconst.ErrNotRegistered}
	ErrAlreadyRegistered     = &ContractError{Kind: registryconst.ErrAlreadyRegistered}
	ErrFeeMismatch           = &ContractError{Kind: registryconst.ErrFeeMismatch}
	ErrMaxTierReached        = &ContractError{Kind: registryconst.ErrMaxTierReached}
	ErrZeroMerit             = &ContractError{Kind: registryconst.ErrZeroMerit}
	ErrInvalidBoostID        = &ContractError{Kind: registryconst.ErrInvalidBoostID}
	ErrMaxBoostLevel         = &ContractError{Kind: registryconst.ErrMaxBoostLevel}
	ErrInvalidBps            = &ContractError{Kind: registryconst.ErrInvalidBps}
	ErrInvalidFee            = &ContractError{Kind: registryconst.ErrInvalidFee}
	ErrZeroAddress           = &ContractError{Kind: registryconst.ErrZeroAddress}
	ErrTransferFailed        = &ContractError{Kind: registryconst.ErrTransferFailed}
	ErrDirectPaymentRejected = &ContractError{Kind: registryconst.ErrDirectPaymentRejected}
)

var knownErrors = []*ContractError{
	ErrUnauthorized,
	ErrNotRegistered,
	ErrAlreadyRegistered,
	ErrFeeMismatch,
	ErrMaxTierReached,
	ErrZeroMerit,
	ErrInvalidBoostID,
	ErrMaxBoostLevel,
	ErrInvalidBps,
	ErrInvalidFee,
	ErrZeroAddress,
	ErrTransferFailed,
	ErrDirectPaymentRejected,
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	if e.Details == "" {
		return e.Kind
	}
	return e.Kind + ": " + e.Details
}

// Is reports whether target is a ContractError of the same kind.
func (e *ContractError) Is(target error) bool {
	var ce *ContractError
	return errors.As(target, &ce) && ce.Kind == e.Kind
}

// ParseError finds a Registry contract exception in the fault message of an
// invocation or in the text of an RPC error. It returns nil if there is none.
func ParseError(msg string) *ContractError {
	var (
		found *ContractError
		pos   = -1
	)

	for _, known := range knownErrors {
		i := strings.Index(msg, known.Kind)
		if i < 0 || (pos >= 0 && i >= pos) {
			continue
		}
		found, pos = known, i
	}

	if found == nil {
		return nil
	}

	details := msg[pos+len(found.Kind):]
	details = strings.TrimPrefix(details, ":")
	details = strings.Trim(details, " \"")

	return &ContractError{Kind: found.Kind, Details: details}
}

// WrapError replaces err with the contract exception it carries. Errors
// without one are returned as is.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	if ce := ParseError(err.Error()); ce != nil {
		return ce
	}

	return err
}
