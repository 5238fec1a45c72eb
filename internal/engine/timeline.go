package engine

import (
	"sort"

	"shillscore/internal/model"
	"shillscore/internal/scoring"
)

// timelineTxCap bounds how many transactions enter the timeline. Inherited
// from the upstream fetch limit; posts are not capped.
const timelineTxCap = 10

// MergeTimeline converts posts and transactions into one ascending-timestamp
// event sequence. Post timestamps pass through as-is; transaction timestamps
// arrive in seconds and are scaled to milliseconds. The sort is stable, so
// events with equal (or unknown) timestamps keep fetch order, posts first.
func MergeTimeline(posts []model.Post, txs []model.Transaction) []model.TimelineEvent {
	events := make([]model.TimelineEvent, 0, len(posts)+timelineTxCap)

	for _, p := range posts {
		text := scoring.Text(p)
		events = append(events, model.TimelineEvent{
			Timestamp: p.CreatedAt,
			Type:      model.EventPost,
			Content:   text,
			Tokens:    scoring.Tickers(text),
		})
	}

	capped := txs
	if len(capped) > timelineTxCap {
		capped = capped[:timelineTxCap]
	}
	for _, tx := range capped {
		ev := model.TimelineEvent{
			Timestamp: tx.Timestamp * 1000,
			Type:      model.EventTx,
			Content:   txSummary(tx),
			Signature: tx.Signature,
		}
		if tx.IsSwap() {
			ev.Type = model.EventSwap
		}
		if s := tx.Swap(); s != nil {
			ev.TokenIn = scoring.InputSymbol(s)
			ev.TokenOut = scoring.OutputSymbol(s)
		}
		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
	return events
}

func txSummary(tx model.Transaction) string {
	kind := tx.Type
	if kind == "" {
		kind = "TX"
	}
	venue := tx.Source
	if venue == "" {
		venue = "unknown"
	}
	return kind + " via " + venue
}
