package solana

import (
	"context"
	"fmt"

	solana "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Commitment maps a config string onto the RPC commitment level,
// defaulting to confirmed.
func Commitment(s string) rpc.CommitmentType {
	switch s {
	case "processed":
		return rpc.CommitmentProcessed
	case "finalized":
		return rpc.CommitmentFinalized
	default:
		return rpc.CommitmentConfirmed
	}
}

// WalletBalance returns the owner's lamport balance. Used as a startup
// connectivity check against the configured RPC endpoint.
func WalletBalance(ctx context.Context, client *rpc.Client, owner solana.PublicKey, commitment rpc.CommitmentType) (uint64, error) {
	out, err := client.GetBalance(ctx, owner, commitment)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return out.Value, nil
}
