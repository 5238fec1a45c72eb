package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"shillscore/internal/cache"
	"shillscore/internal/config"
	"shillscore/internal/engine"
	"shillscore/internal/metrics"
	"shillscore/internal/model"
)

// ErrMissingIdentifier is returned when neither a profile id nor a wallet
// address is supplied.
var ErrMissingIdentifier = errors.New("service: profile id or wallet required")

// SocialAPI is the slice of the content provider the analyzer needs.
type SocialAPI interface {
	Profile(ctx context.Context, id string) (*model.Actor, error)
	Content(ctx context.Context, id string) (*model.Post, error)
	Contents(ctx context.Context, profileID string, limit int) ([]model.Post, error)
}

// ChainAPI is the slice of the transaction provider the analyzer needs.
type ChainAPI interface {
	Transactions(ctx context.Context, wallet string, limit int) ([]model.Transaction, error)
}

// Request identifies the actor to score. At least one field must be set.
type Request struct {
	ProfileID string `json:"profileId"`
	Wallet    string `json:"wallet"`
}

func (r Request) key() string {
	return r.ProfileID + "|" + r.Wallet
}

// Analyzer assembles the inputs for one scoring run: actor resolution, post
// and transaction fetches, deduplication, then the pure engine. Upstream
// data-plane failures degrade to empty inputs and never abort a run; only
// identity errors surface.
type Analyzer struct {
	social SocialAPI
	chain  ChainAPI
	loader *config.Loader
	cache  *cache.ScoreCache // nil disables caching
	group  singleflight.Group
}

// NewAnalyzer wires an Analyzer. cache may be nil.
func NewAnalyzer(social SocialAPI, chain ChainAPI, loader *config.Loader, c *cache.ScoreCache) *Analyzer {
	return &Analyzer{social: social, chain: chain, loader: loader, cache: c}
}

// Analyze scores one actor. Identical concurrent requests collapse into a
// single upstream pass.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*model.ScoreResult, error) {
	req.ProfileID = strings.TrimSpace(req.ProfileID)
	req.Wallet = strings.TrimSpace(req.Wallet)
	if req.ProfileID == "" && req.Wallet == "" {
		return nil, ErrMissingIdentifier
	}

	if a.cache != nil {
		if res, ok := a.cache.Get(ctx, req.key()); ok {
			metrics.CacheHits.Inc()
			return res, nil
		}
		metrics.CacheMisses.Inc()
	}

	v, err, _ := a.group.Do(req.key(), func() (any, error) {
		return a.analyze(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.ScoreResult), nil
}

func (a *Analyzer) analyze(ctx context.Context, req Request) (*model.ScoreResult, error) {
	start := time.Now()
	cfg := a.loader.Config()

	actor, err := a.resolveActor(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		posts []model.Post
		txs   []model.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts = a.fetchPosts(gctx, cfg, actor.ID)
		return nil
	})
	g.Go(func() error {
		if actor.Wallet != "" {
			txs = a.fetchTransactions(gctx, cfg, actor.Wallet)
		}
		return nil
	})
	_ = g.Wait()

	res := engine.ScoreActor(*actor, posts, txs)

	metrics.ScoresComputed.WithLabelValues(res.Label).Inc()
	metrics.ScoreDuration.Observe(time.Since(start).Seconds())

	if a.cache != nil {
		a.cache.Set(ctx, req.key(), res)
	}
	return res, nil
}

// resolveActor looks up the profile, or synthesizes an actor from the raw
// wallet address when no profile id was given. A lookup miss on an explicit
// profile id is final, even if a wallet was also supplied.
func (a *Analyzer) resolveActor(ctx context.Context, req Request) (*model.Actor, error) {
	if req.ProfileID != "" {
		actor, err := a.social.Profile(ctx, req.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("profile lookup for %s: %w", req.ProfileID, err)
		}
		if actor.ID == "" {
			actor.ID = req.ProfileID
		}
		if actor.Wallet == "" {
			actor.Wallet = req.Wallet
		}
		return actor, nil
	}
	return &model.Actor{
		ID:        req.Wallet,
		Username:  shortWallet(req.Wallet),
		Namespace: "wallet",
		Wallet:    req.Wallet,
	}, nil
}

// fetchPosts gathers posts from two paths: the profile's known post-id
// pattern (fetched with a bounded fan-out, results kept in candidate order)
// and the generic listing endpoint. Duplicate ids keep the first-seen
// instance. Every failure contributes zero records.
func (a *Analyzer) fetchPosts(ctx context.Context, cfg *config.Config, profileID string) []model.Post {
	candidates := cfg.PostIDs(profileID)
	found := make([]*model.Post, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Fetch.PostWorkers)
	for i, id := range candidates {
		i, id := i, id
		g.Go(func() error {
			p, err := a.social.Content(gctx, id)
			if err != nil {
				metrics.FetchFailures.WithLabelValues("social", "content").Inc()
				return nil
			}
			found[i] = p
			return nil
		})
	}
	_ = g.Wait()

	posts := make([]model.Post, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, p := range found {
		if p == nil {
			continue
		}
		if p.ID != "" {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
		}
		posts = append(posts, *p)
	}

	listed, err := a.social.Contents(ctx, profileID, cfg.Fetch.PostListLimit)
	if err != nil {
		metrics.FetchFailures.WithLabelValues("social", "contents").Inc()
		return posts
	}
	for _, p := range listed {
		if p.ID != "" {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
		}
		posts = append(posts, p)
	}
	return posts
}

func (a *Analyzer) fetchTransactions(ctx context.Context, cfg *config.Config, wallet string) []model.Transaction {
	txs, err := a.chain.Transactions(ctx, wallet, cfg.Fetch.TxLimit)
	if err != nil {
		metrics.FetchFailures.WithLabelValues("chain", "transactions").Inc()
		return nil
	}
	return txs
}

func shortWallet(w string) string {
	if len(w) <= 12 {
		return w
	}
	return w[:4] + "..." + w[len(w)-4:]
}
