package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"shillscore/internal/social"
)

type seedProfile struct {
	Username string
	Wallet   string
	Bio      string
	Posts    []seedPost
}

type seedPost struct {
	ID      string
	Content string
}

// Three demo actors with known post-id patterns: a suspicious promoter,
// a clean builder, and a bot-like signal spammer.
func fixtures() []seedProfile {
	profiles := []seedProfile{
		{
			Username: "alpha_pumper",
			Wallet:   "DYw8jCTfBox68YbcEhfjNkSwEPLk9AV9MiDsqNRVYJCp",
			Bio:      "Early alpha calls. 100x or nothing.",
			Posts: []seedPost{
				{"pump-001", "$BONK about to rip hard, load up before it moons"},
				{"pump-002", "Still early on $BONK. If you are not in you are ngmi"},
				{"pump-003", "$WIF looking absolutely bullish. Aping in heavy"},
				{"pump-004", "Told you about $WIF. Already 3x. Next target $POPCAT"},
				{"pump-005", "$POPCAT is the next 10x. Buying more now"},
			},
		},
		{
			Username: "solana_builder",
			Wallet:   "7nYB8sCeLNqjXvRUY5QBnGXAH1QCfJJfmYMaDbBwvxKB",
			Bio:      "Building on Solana. Shipping code not alpha.",
			Posts: []seedPost{
				{"build-001", "Just deployed our new smart contract for onchain governance"},
				{"build-002", "Working on integrating social features into our dApp"},
				{"build-003", "Shipped a bug fix for our token vesting contract"},
			},
		},
	}

	bot := seedProfile{
		Username: "moon_signals",
		Wallet:   "3Kp2jd5S8nGrTDkhaT4YmvqVdaXjJQHGFnCPVPBkR8st",
		Bio:      "FREE ALPHA. Follow for 100x calls daily",
	}
	tokens := []string{"$MYRO", "$BOME", "$SLERF", "$MEW", "$TNSR", "$JUP", "$KMNO", "$RENDER"}
	for i, tok := range tokens {
		bot.Posts = append(bot.Posts, seedPost{
			ID:      fmt.Sprintf("bot-%03d", i+1),
			Content: fmt.Sprintf("%s is about to EXPLODE. Do not miss this gem. Easy 10x from here", tok),
		})
	}
	return append(profiles, bot)
}

func main() {
	_ = godotenv.Load()

	key := os.Getenv("TAPESTRY_API_KEY")
	if key == "" {
		log.Fatal("TAPESTRY_API_KEY is required")
	}
	client := social.NewClient(os.Getenv("TAPESTRY_API_URL"), key, 15*time.Second)
	ctx := context.Background()

	for _, p := range fixtures() {
		log.Printf("seeding profile %s", p.Username)
		if err := client.FindOrCreateProfile(ctx, p.Username, p.Wallet, p.Bio); err != nil {
			log.Printf("  profile %s: %v", p.Username, err)
			continue
		}
		for _, post := range p.Posts {
			if err := client.FindOrCreateContent(ctx, post.ID, p.Username, post.Content); err != nil {
				log.Printf("  post %s: %v", post.ID, err)
				continue
			}
			log.Printf("  post %s ok", post.ID)
		}
	}
	log.Println("done")
}
