// Binary lunaticbot runs the Telegram bot that quotes Solana contract
// addresses against Jupiter.
package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go/rpc"

	"github.com/Rezzylol/Lunaticbot/internal/bot"
	"github.com/Rezzylol/Lunaticbot/internal/config"
	"github.com/Rezzylol/Lunaticbot/internal/dedup"
	dex "github.com/Rezzylol/Lunaticbot/internal/dex/solana"
	"github.com/Rezzylol/Lunaticbot/internal/journal"
	"github.com/Rezzylol/Lunaticbot/internal/metrics"
	"github.com/Rezzylol/Lunaticbot/internal/util"
)

func main() {
	log := util.NewLogger("info", false)

	cfg, err := config.Load("internal/config/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	log = util.NewLogger(cfg.App.LogLevel, cfg.App.Env == "dev")

	// Wallet first: without a signing identity the bot must not start.
	// LoadPrivateKey also pulls in .env, so later env reads see it too.
	key, err := dex.LoadPrivateKey(cfg.Wallet.PrivateKeyBase58)
	if err != nil {
		log.Fatal().Err(err).Msg("set up wallet")
	}
	log.Info().Str("pubkey", key.PublicKey().String()).Msg("wallet initialized")

	token := getEnv("TELEGRAM_API_TOKEN", cfg.Telegram.Token)
	if token == "" {
		printSetupInstructions()
		log.Fatal().Msg("TELEGRAM_API_TOKEN is missing")
	}

	_ = metrics.Serve(cfg.App.MetricsAddr)
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	// Connectivity probe only; quoting works even when RPC is down.
	rpcURL := getEnv("SOLANA_RPC_URL", cfg.Dex.RpcURL)
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	balance, err := dex.WalletBalance(probeCtx, rpc.New(rpcURL), key.PublicKey(), dex.Commitment(cfg.Dex.Commitment))
	probeCancel()
	if err != nil {
		log.Warn().Err(err).Str("rpc", rpcURL).Msg("rpc balance check failed")
	} else {
		log.Info().Uint64("lamports", balance).Msg("wallet balance")
	}

	b, err := bot.Connect(token, cfg.Telegram.ApiURL, cfg.Telegram.PollTimeoutSecs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("set up telegram bot")
	}

	registry := dedup.NewRegistry()
	quoter := dex.NewJupiterClient(getEnv("JUPITER_BASE_URL", cfg.Dex.JupiterBase))

	var opts []bot.Option
	groupID := cfg.Telegram.GroupChatID
	if raw := os.Getenv("GROUP_CHAT_ID"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatal().Err(err).Str("value", raw).Msg("parse GROUP_CHAT_ID")
		}
		groupID = parsed
	}
	if groupID != 0 {
		opts = append(opts, bot.WithGroup(bot.NewGroupAnnouncer(b, groupID)))
		log.Info().Int64("chat_id", groupID).Msg("group forwarding enabled")
	}
	if cfg.Journal.Path != "" {
		rec, err := journal.NewRecorder(cfg.Journal.Path)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Journal.Path).Msg("journal disabled")
		} else {
			defer rec.Close()
			opts = append(opts, bot.WithJournal(rec))
		}
	}

	router := bot.NewRouter(log, registry, quoter, opts...)
	tg := bot.NewTelegram(b, log)
	tg.Attach(router)
	log.Info().Msg("bot has been set up successfully")

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tg.Start(ctx)
	log.Info().Int("addresses_processed", registry.Len()).Msg("shutting down")
}

func printSetupInstructions() {
	fmt.Println("Setup:")
	fmt.Println("  1. Create a bot with @BotFather and export TELEGRAM_API_TOKEN")
	fmt.Println("  2. Export SOLANA_PRIVATE_KEY_BASE58 with your wallet's base58 secret key")
	fmt.Println("  3. Optional: export GROUP_CHAT_ID to forward accepted addresses to a group")
	fmt.Println("All of these can also live in a .env file in the working directory.")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
