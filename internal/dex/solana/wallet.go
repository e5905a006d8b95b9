package solana

import (
	"errors"
	"os"

	solana "github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
)

// LoadPrivateKey resolves the signing key for the bot wallet. The
// SOLANA_PRIVATE_KEY_BASE58 environment variable wins; fallbackBase58
// (normally the config file value) is used when the env is unset.
func LoadPrivateKey(fallbackBase58 string) (solana.PrivateKey, error) {
	_ = godotenv.Load() // best-effort
	b58 := os.Getenv("SOLANA_PRIVATE_KEY_BASE58")
	if b58 == "" {
		b58 = fallbackBase58
	}
	if b58 == "" {
		return nil, errors.New("SOLANA_PRIVATE_KEY_BASE58 not set")
	}
	return solana.PrivateKeyFromBase58(b58)
}
