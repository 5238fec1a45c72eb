package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"shillscore/internal/model"
)

func textPost(id, text string, ts int64) model.Post {
	raw, _ := json.Marshal(text)
	return model.Post{ID: id, Content: raw, CreatedAt: ts}
}

func TestScoreActorPromoterScenario(t *testing.T) {
	actor := model.Actor{ID: "alpha_pumper", Username: "alpha_pumper"}
	posts := []model.Post{
		textPost("pump-001", "$BONK about to rip", 1000),
		textPost("pump-002", "Still early on $BONK", 2000),
		textPost("pump-003", "$WIF bullish", 3000),
		textPost("pump-004", "$WIF again, next $POPCAT", 4000),
		textPost("pump-005", "$POPCAT 10x", 5000),
	}

	res := ScoreActor(actor, posts, nil)

	// Shill Clustering 2x7=14 plus Engagement Authenticity 20.
	if res.Score != 34 {
		t.Errorf("Score = %d, want 34", res.Score)
	}
	if res.Label != "MEDIUM" {
		t.Errorf("Label = %s, want MEDIUM", res.Label)
	}
	if len(res.Drivers) != 2 {
		t.Fatalf("Drivers = %+v, want Shill Clustering and Engagement Authenticity", res.Drivers)
	}
	if res.Drivers[0].Factor != "Shill Clustering" || res.Drivers[0].Points != 14 {
		t.Errorf("Drivers[0] = %+v", res.Drivers[0])
	}
	if res.Drivers[1].Factor != "Engagement Authenticity" || res.Drivers[1].Points != 20 {
		t.Errorf("Drivers[1] = %+v", res.Drivers[1])
	}

	if res.Stats.Posts != 5 || res.Stats.Transactions != 0 || res.Stats.Swaps != 0 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	wantMentions := []model.TokenCount{
		{Token: "BONK", Count: 2},
		{Token: "WIF", Count: 2},
		{Token: "POPCAT", Count: 2},
	}
	if len(res.Stats.TokensMentioned) != 3 {
		t.Fatalf("TokensMentioned = %+v", res.Stats.TokensMentioned)
	}
	for i, want := range wantMentions {
		if res.Stats.TokensMentioned[i] != want {
			t.Errorf("TokensMentioned[%d] = %+v, want %+v", i, res.Stats.TokensMentioned[i], want)
		}
	}
	if len(res.Stats.TokensTraded) != 0 {
		t.Errorf("TokensTraded = %v, want empty", res.Stats.TokensTraded)
	}
	if len(res.Timeline) != 5 {
		t.Errorf("Timeline length = %d, want 5", len(res.Timeline))
	}
}

func TestScoreActorPromoteExit(t *testing.T) {
	actor := model.Actor{ID: "a", Wallet: "w"}
	posts := []model.Post{
		textPost("p1", "$BONK $WIF $POPCAT all going up", 1000),
	}
	swap := func(sym string) model.Transaction {
		return model.Transaction{
			Signature: "sig-" + sym,
			Type:      "SWAP",
			Source:    "JUPITER",
			Timestamp: 10,
			Events: &model.TxEvents{Swap: &model.SwapEvent{
				TokenInputs:  []model.TokenTransfer{{Symbol: sym}},
				NativeOutput: &model.NativeTransfer{Amount: 5},
			}},
		}
	}
	txs := []model.Transaction{swap("BONK"), swap("WIF"), swap("POPCAT")}

	res := ScoreActor(actor, posts, txs)

	var exit *model.Driver
	for i := range res.Drivers {
		if res.Drivers[i].Factor == "Promote → Exit" {
			exit = &res.Drivers[i]
		}
	}
	if exit == nil {
		t.Fatalf("Promote → Exit did not fire, drivers = %+v", res.Drivers)
	}
	if exit.Points != 35 {
		t.Errorf("points = %d, want capped 35", exit.Points)
	}
	if res.Stats.Swaps != 3 {
		t.Errorf("Swaps = %d, want 3", res.Stats.Swaps)
	}
	// The native output legs register the sentinel as traded too.
	found := false
	for _, sym := range res.Stats.TokensTraded {
		if sym == "SOL" {
			found = true
		}
	}
	if !found {
		t.Errorf("TokensTraded = %v, want SOL sentinel present", res.Stats.TokensTraded)
	}
}

func TestScoreActorDeterministic(t *testing.T) {
	actor := model.Actor{ID: "a", Username: "a"}
	posts := []model.Post{
		textPost("p1", "$BONK and $WIF and $BONK", 100),
		textPost("p2", "$MEW $TNSR $SLERF $BOME", 200),
	}
	txs := []model.Transaction{
		{Signature: "s1", Type: "TRANSFER", Source: "SYSTEM", Timestamp: 1},
		{Signature: "s2", Type: "SWAP", Timestamp: 2, Events: &model.TxEvents{Swap: &model.SwapEvent{
			TokenInputs: []model.TokenTransfer{{Symbol: "BONK"}},
		}}},
	}

	first, err := json.Marshal(ScoreActor(actor, posts, txs))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := json.Marshal(ScoreActor(actor, posts, txs))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d produced different bytes:\n%s\n%s", i, first, again)
		}
	}
}

func TestScoreActorEmptyInputs(t *testing.T) {
	res := ScoreActor(model.Actor{ID: "nobody"}, nil, nil)
	if res.Score != 0 || res.Label != "LOW" {
		t.Errorf("got %d/%s, want 0/LOW", res.Score, res.Label)
	}
	if res.Drivers == nil || len(res.Drivers) != 0 {
		t.Errorf("Drivers = %#v, want empty non-nil", res.Drivers)
	}
	if res.Stats.TokensMentioned == nil || res.Stats.TokensTraded == nil {
		t.Error("stats slices must be non-nil for stable serialization")
	}
	if len(res.Timeline) != 0 {
		t.Errorf("Timeline = %v, want empty", res.Timeline)
	}
}
