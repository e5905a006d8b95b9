// Binary quote fetches a one-off Jupiter quote for a token mint using
// the same fixed buy parameters as the bot.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Rezzylol/Lunaticbot/internal/config"
	dex "github.com/Rezzylol/Lunaticbot/internal/dex/solana"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: quote <token-mint>")
	}
	mint := os.Args[1]
	if !dex.IsValidAddress(mint) {
		log.Fatalf("not a valid solana address: %s", mint)
	}

	cfg, err := config.Load("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := dex.NewJupiterClient(getEnv("JUPITER_BASE_URL", cfg.Dex.JupiterBase))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	quote, err := client.QuoteToken(ctx, mint)
	if err != nil {
		log.Fatalf("quote: %v", err)
	}

	fmt.Printf("quote for %s\n", mint)
	fmt.Printf("  in:  %s lamports (WSOL)\n", quote.InAmount)
	fmt.Printf("  out: %s tokens\n", quote.OutAmount)
	if quote.PriceImpactPct != "" {
		fmt.Printf("  price impact: %s%%\n", quote.PriceImpactPct)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
