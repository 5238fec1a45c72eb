package scoring

import (
	"regexp"

	"shillscore/internal/model"
)

// cashtagRe matches a $ sign followed by 2 to 10 uppercase ASCII letters.
// Lowercase cashtags are intentionally not matched; the upstream convention
// is uppercase tickers.
var cashtagRe = regexp.MustCompile(`\$([A-Z]{2,10})`)

// Tickers returns the raw $-prefixed cashtags found in text, in order of
// appearance, duplicates included.
func Tickers(text string) []string {
	return cashtagRe.FindAllString(text, -1)
}

// Tally counts ticker mentions per actor. It remembers first-seen order so
// that serialized output is stable across runs.
type Tally struct {
	counts map[string]int
	order  []string
}

// ExtractMentions scans the given post bodies and tallies cashtag mentions.
// A ticker mentioned twice in one post counts twice.
func ExtractMentions(texts []string) *Tally {
	t := &Tally{counts: make(map[string]int)}
	for _, text := range texts {
		for _, m := range cashtagRe.FindAllStringSubmatch(text, -1) {
			t.add(m[1])
		}
	}
	return t
}

func (t *Tally) add(ticker string) {
	if _, ok := t.counts[ticker]; !ok {
		t.order = append(t.order, ticker)
	}
	t.counts[ticker]++
}

// Count returns the mention count for one ticker.
func (t *Tally) Count(ticker string) int {
	if t == nil {
		return 0
	}
	return t.counts[ticker]
}

// Distinct returns the number of distinct tickers seen.
func (t *Tally) Distinct() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Max returns the most-mentioned ticker and its count. First-seen wins ties.
func (t *Tally) Max() (string, int) {
	if t == nil {
		return "", 0
	}
	top, max := "", 0
	for _, ticker := range t.order {
		if c := t.counts[ticker]; c > max {
			top, max = ticker, c
		}
	}
	return top, max
}

// Tokens returns the distinct tickers in first-seen order.
func (t *Tally) Tokens() []string {
	if t == nil {
		return nil
	}
	return t.order
}

// Counts returns the tally as token/count pairs in first-seen order.
// The slice is never nil so it serializes as [].
func (t *Tally) Counts() []model.TokenCount {
	out := make([]model.TokenCount, 0, t.Distinct())
	if t == nil {
		return out
	}
	for _, ticker := range t.order {
		out = append(out, model.TokenCount{Token: ticker, Count: t.counts[ticker]})
	}
	return out
}
