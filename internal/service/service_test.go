package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"shillscore/internal/config"
	"shillscore/internal/model"
	"shillscore/internal/social"
)

type fakeSocial struct {
	actor      *model.Actor
	profileErr error
	contents   map[string]*model.Post
	listing    []model.Post
	listErr    error
}

func (f *fakeSocial) Profile(ctx context.Context, id string) (*model.Actor, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.actor, nil
}

func (f *fakeSocial) Content(ctx context.Context, id string) (*model.Post, error) {
	if p, ok := f.contents[id]; ok {
		return p, nil
	}
	return nil, errors.New("status 404")
}

func (f *fakeSocial) Contents(ctx context.Context, profileID string, limit int) ([]model.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listing, nil
}

type fakeChain struct {
	txs    []model.Transaction
	err    error
	calls  int
	wallet string
}

func (f *fakeChain) Transactions(ctx context.Context, wallet string, limit int) ([]model.Transaction, error) {
	f.calls++
	f.wallet = wallet
	if f.err != nil {
		return nil, f.err
	}
	return f.txs, nil
}

func textPost(id, text string) *model.Post {
	raw, _ := json.Marshal(text)
	return &model.Post{ID: id, Content: raw}
}

func testLoader(patterns map[string]config.PostIDPattern) *config.Loader {
	cfg := config.Default()
	cfg.PostIDPatterns = patterns
	return config.Static(cfg)
}

func TestAnalyzeMissingIdentifier(t *testing.T) {
	a := NewAnalyzer(&fakeSocial{}, &fakeChain{}, testLoader(nil), nil)
	_, err := a.Analyze(context.Background(), Request{ProfileID: "  ", Wallet: ""})
	if !errors.Is(err, ErrMissingIdentifier) {
		t.Errorf("err = %v, want ErrMissingIdentifier", err)
	}
}

func TestAnalyzeProfileNotFound(t *testing.T) {
	a := NewAnalyzer(&fakeSocial{profileErr: social.ErrNotFound}, &fakeChain{}, testLoader(nil), nil)
	_, err := a.Analyze(context.Background(), Request{ProfileID: "ghost", Wallet: "somewallet"})
	if !errors.Is(err, social.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound even with a wallet supplied", err)
	}
}

func TestAnalyzeDeduplicatesPosts(t *testing.T) {
	soc := &fakeSocial{
		actor: &model.Actor{ID: "alpha_pumper", Username: "alpha_pumper"},
		contents: map[string]*model.Post{
			"pump-001": textPost("pump-001", "$BONK direct copy"),
			"pump-002": textPost("pump-002", "$BONK again"),
		},
		listing: []model.Post{
			*textPost("pump-001", "$BONK listed copy"),
			*textPost("pump-009", "$WIF only in listing"),
		},
	}
	a := NewAnalyzer(soc, &fakeChain{}, testLoader(map[string]config.PostIDPattern{
		"alpha_pumper": {Prefix: "pump", Count: 2},
	}), nil)

	res, err := a.Analyze(context.Background(), Request{ProfileID: "alpha_pumper"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Stats.Posts != 3 {
		t.Errorf("Posts = %d, want 3 (duplicate id collapsed)", res.Stats.Posts)
	}
	// First-seen instance wins: the direct fetch, not the listing copy.
	for _, ev := range res.Timeline {
		if ev.Content == "$BONK listed copy" {
			t.Error("duplicate kept the listing copy instead of first-seen")
		}
	}
}

func TestAnalyzeToleratesPartialFailure(t *testing.T) {
	soc := &fakeSocial{
		actor: &model.Actor{ID: "alpha_pumper", Wallet: "wallet-1"},
		contents: map[string]*model.Post{
			// pump-002 and pump-003 are missing upstream.
			"pump-001": textPost("pump-001", "$BONK still scored"),
		},
		listErr: errors.New("listing exploded"),
	}
	ch := &fakeChain{err: errors.New("chain down")}
	a := NewAnalyzer(soc, ch, testLoader(map[string]config.PostIDPattern{
		"alpha_pumper": {Prefix: "pump", Count: 3},
	}), nil)

	res, err := a.Analyze(context.Background(), Request{ProfileID: "alpha_pumper"})
	if err != nil {
		t.Fatalf("Analyze: %v, want partial failures swallowed", err)
	}
	if res.Stats.Posts != 1 || res.Stats.Transactions != 0 {
		t.Errorf("Stats = %+v, want 1 post and 0 transactions", res.Stats)
	}
	// Zero transactions with posts present still fires the engagement rule.
	if res.Score == 0 {
		t.Error("score = 0, want engagement rule fired on surviving post")
	}
}

func TestAnalyzeWalletOnlySynthesizesActor(t *testing.T) {
	soc := &fakeSocial{profileErr: errors.New("must not be called")}
	ch := &fakeChain{txs: []model.Transaction{
		{Signature: "s1", Type: "SWAP", Timestamp: 5, Events: &model.TxEvents{Swap: &model.SwapEvent{
			TokenInputs: []model.TokenTransfer{{Symbol: "BONK"}},
		}}},
	}}
	a := NewAnalyzer(soc, ch, testLoader(nil), nil)

	wallet := "DYw8jCTfBox68YbcEhfjNkSwEPLk9AV9MiDsqNRVYJCp"
	res, err := a.Analyze(context.Background(), Request{Wallet: wallet})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Profile.ID != wallet || res.Profile.Namespace != "wallet" {
		t.Errorf("Profile = %+v, want synthesized wallet actor", res.Profile)
	}
	if ch.calls != 1 || ch.wallet != wallet {
		t.Errorf("chain calls = %d wallet = %s", ch.calls, ch.wallet)
	}
	if res.Stats.Swaps != 1 {
		t.Errorf("Swaps = %d, want 1", res.Stats.Swaps)
	}
}

func TestAnalyzeNoWalletSkipsChain(t *testing.T) {
	soc := &fakeSocial{actor: &model.Actor{ID: "clean", Username: "clean"}}
	ch := &fakeChain{}
	a := NewAnalyzer(soc, ch, testLoader(nil), nil)

	if _, err := a.Analyze(context.Background(), Request{ProfileID: "clean"}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if ch.calls != 0 {
		t.Errorf("chain calls = %d, want 0 without a wallet", ch.calls)
	}
}
