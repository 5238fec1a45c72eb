package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"shillscore/internal/chain"
	"shillscore/internal/config"
	"shillscore/internal/service"
	"shillscore/internal/social"
)

// One-shot scorer: resolves a profile id or wallet address, runs the full
// correlation pipeline once, and prints the result as indented JSON.
func main() {
	cfgPath := flag.String("config", "configs/server.yaml", "Path to service YAML config")
	flag.Parse()

	_ = godotenv.Load()

	if flag.NArg() < 1 {
		log.Fatal("Usage: score [-config path] <profileId|walletAddress>")
	}
	target := strings.TrimSpace(flag.Arg(0))

	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		// No config file is fine for a one-shot run; defaults cover it.
		loader = config.Static(config.Default())
	}

	socialClient := social.NewClient(loader.Config().Social.BaseURL, os.Getenv("TAPESTRY_API_KEY"), loader.Config().Social.Timeout())
	chainClient := chain.NewClient(loader.Config().Chain.BaseURL, os.Getenv("HELIUS_API_KEY"), loader.Config().Chain.Timeout())
	analyzer := service.NewAnalyzer(socialClient, chainClient, loader, nil)

	req := service.Request{ProfileID: target}
	if looksLikeWallet(target) {
		req = service.Request{Wallet: target}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := analyzer.Analyze(ctx, req)
	if err != nil {
		log.Fatalf("scoring %s: %v", target, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		log.Printf("encoding result: %v", err)
	}
}

// looksLikeWallet reports whether the argument reads as a base58 Solana
// address rather than a profile id.
func looksLikeWallet(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
		case r >= 'A' && r <= 'H':
		case r >= 'J' && r <= 'N':
		case r >= 'P' && r <= 'Z':
		case r >= 'a' && r <= 'k':
		case r >= 'm' && r <= 'z':
		default:
			return false
		}
	}
	return true
}
