package engine

import (
	"shillscore/internal/model"
	"shillscore/internal/scoring"
)

// ScoreActor runs the full correlation pipeline for one actor: normalize
// posts, tally cashtag mentions, derive traded symbols, apply the rule
// table, and merge the display timeline. It is a pure function of its
// inputs with no I/O and no shared state, safe to call concurrently
// across independent actors.
func ScoreActor(actor model.Actor, posts []model.Post, txs []model.Transaction) *model.ScoreResult {
	texts := make([]string, len(posts))
	for i, p := range posts {
		texts[i] = scoring.Text(p)
	}
	mentions := scoring.ExtractMentions(texts)

	swapCount := 0
	for _, tx := range txs {
		if tx.IsSwap() {
			swapCount++
		}
	}
	traded := scoring.TradedSymbols(txs)

	score, label, drivers := scoring.Score(scoring.RuleInput{
		Mentions:  mentions,
		PostCount: len(posts),
		TxCount:   len(txs),
		SwapCount: swapCount,
		Traded:    traded,
	})

	return &model.ScoreResult{
		Score:   score,
		Label:   label,
		Drivers: drivers,
		Profile: actor,
		Stats: model.Stats{
			Posts:           len(posts),
			Transactions:    len(txs),
			Swaps:           swapCount,
			TokensMentioned: mentions.Counts(),
			TokensTraded:    traded.Symbols(),
		},
		Timeline: MergeTimeline(posts, txs),
	}
}
