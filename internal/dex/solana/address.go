package solana

import "regexp"

// Base58 alphabet: digits 1-9, uppercase minus I/O, lowercase minus l.
// 32 to 44 characters covers every base58-encoded 32-byte public key.
var addressRx = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// IsValidAddress reports whether s is syntactically a Solana address. It is a
// shape check only: no checksum, no on-chain existence lookup.
func IsValidAddress(s string) bool {
	return addressRx.MatchString(s)
}
