package rejectpay

import "github.com/nspcc-dev/neo-go/pkg/interop"

// OnNEP17Payment refuses any payment.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	panic("payment refused")
}
