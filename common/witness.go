package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrOwnerWitnessFailed appears when the method must be called
// by the contract owner but was not.
const ErrOwnerWitnessFailed = "Unauthorized: owner witness check failed"

// CheckOwnerWitness checks witness of the contract owner.
// It panics with ErrOwnerWitnessFailed message on fail.
func CheckOwnerWitness(owner interop.Hash160) {
	if !runtime.CheckWitness(owner) {
		panic(ErrOwnerWitnessFailed)
	}
}
