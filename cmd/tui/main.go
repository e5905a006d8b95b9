package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Rezzylol/Lunaticbot/internal/config"
)

const defaultConfigPath = "internal/config/config.yaml"

func main() {
	reader := bufio.NewReader(os.Stdin)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	for {
		fmt.Println("\n=== Lunaticbot Control ===")
		fmt.Println("1) Show configuration summary")
		fmt.Println("2) Edit telegram settings")
		fmt.Println("3) Edit endpoints and logging")
		fmt.Println("4) Save config")
		fmt.Println("5) Launch bot")
		fmt.Println("6) Reload config from disk")
		fmt.Println("0) Exit")
		fmt.Print("Select option: ")

		input, _ := reader.ReadString('\n')
		choice := strings.TrimSpace(input)

		switch choice {
		case "1":
			printSummary(cfg)
		case "2":
			editTelegram(reader, cfg)
		case "3":
			editEndpoints(reader, cfg)
		case "4":
			if err := saveConfig(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
			} else {
				fmt.Println("config saved")
			}
		case "5":
			launchBot(reader)
		case "6":
			reloaded, err := loadConfig()
			if err != nil {
				fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
			} else {
				cfg = reloaded
				fmt.Println("config reloaded")
			}
		case "0":
			return
		default:
			fmt.Println("unknown option")
		}
	}
}

func printSummary(cfg *config.Config) {
	token := "unset (will use TELEGRAM_API_TOKEN)"
	if cfg.Telegram.Token != "" {
		token = "set in config"
	}
	fmt.Println("\n--- Configuration Summary ---")
	fmt.Printf("App: %s (%s)\n", cfg.App.Name, cfg.App.Env)
	fmt.Printf("Metrics: %s | log level: %s\n", cfg.App.MetricsAddr, cfg.App.LogLevel)
	fmt.Printf("Telegram token: %s\n", token)
	fmt.Printf("Group chat id: %d (0 disables forwarding)\n", cfg.Telegram.GroupChatID)
	fmt.Printf("Poll timeout: %ds\n", cfg.Telegram.PollTimeoutSecs)
	fmt.Printf("Solana RPC: %s (%s)\n", cfg.Dex.RpcURL, cfg.Dex.Commitment)
	fmt.Printf("Jupiter base: %s\n", cfg.Dex.JupiterBase)
	fmt.Printf("Journal: %s\n", cfg.Journal.Path)
}

func editTelegram(reader *bufio.Reader, cfg *config.Config) {
	fmt.Println("\n--- Edit Telegram ---")
	cfg.Telegram.GroupChatID = promptInt64(reader, "Group chat id (0 disables forwarding)", cfg.Telegram.GroupChatID)
	cfg.Telegram.PollTimeoutSecs = int(promptInt64(reader, "Poll timeout (seconds)", int64(cfg.Telegram.PollTimeoutSecs)))
	cfg.Telegram.ApiURL = promptString(reader, "Bot API URL (blank for api.telegram.org)", cfg.Telegram.ApiURL)
}

func editEndpoints(reader *bufio.Reader, cfg *config.Config) {
	fmt.Println("\n--- Edit Endpoints / Logging ---")
	cfg.Dex.RpcURL = promptString(reader, "Solana RPC URL", cfg.Dex.RpcURL)
	cfg.Dex.Commitment = promptString(reader, "Commitment (processed/confirmed/finalized)", cfg.Dex.Commitment)
	cfg.Dex.JupiterBase = promptString(reader, "Jupiter base URL", cfg.Dex.JupiterBase)
	cfg.Journal.Path = promptString(reader, "Journal path (blank disables)", cfg.Journal.Path)
	cfg.App.LogLevel = promptString(reader, "Log level", cfg.App.LogLevel)
}

func launchBot(reader *bufio.Reader) {
	fmt.Println("Launching bot (Ctrl+C to stop)...")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "run", "./cmd/lunaticbot")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start bot: %v\n", err)
		return
	}

	go func() {
		_ = cmd.Wait()
		cancel()
	}()

	fmt.Print("\nPress ENTER to stop the bot and return to menu...")
	_, _ = reader.ReadString('\n')
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func promptString(reader *bufio.Reader, label, current string) string {
	fmt.Printf("%s [%s]: ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

func promptInt64(reader *bufio.Reader, label string, current int64) int64 {
	fmt.Printf("%s [%d]: ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	val, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		fmt.Printf("invalid number, keeping %d\n", current)
		return current
	}
	return val
}

func loadConfig() (*config.Config, error) {
	return config.Load(locateConfig())
}

func saveConfig(cfg *config.Config) error {
	return config.Save(locateConfig(), cfg)
}

func locateConfig() string {
	if filepath.IsAbs(defaultConfigPath) {
		return defaultConfigPath
	}
	return filepath.Clean(defaultConfigPath)
}
