package common

import "github.com/nspcc-dev/neo-go/pkg/interop"

// IsZeroAddress returns true if h is not a valid script hash or consists of
// zero bytes only.
func IsZeroAddress(h interop.Hash160) bool {
	if len(h) != interop.Hash160Len {
		return true
	}

	for i := 0; i < len(h); i++ { //nolint:intrange // Not supported by NeoGo
		if h[i] != 0 {
			return false
		}
	}

	return true
}
