package scoring

import (
	"fmt"
	"strings"

	"shillscore/internal/model"
)

// Scoring policy. These weights, caps and thresholds are the output contract:
// changing any of them changes every score the service produces.
const (
	shillRepeatMin      = 2
	shillPointsPer      = 7
	shillCap            = 20
	concentrationRatio  = 2
	concentrationPoints = 15
	ghostPoints         = 20
	imbalancePoints     = 10
	spamDistinctMin     = 6
	spamPoints          = 15
	overlapPointsPer    = 15
	overlapCap          = 35
	maxScore            = 100
)

// Severity labels and their score thresholds, evaluated highest-first.
const (
	LabelCritical = "CRITICAL"
	LabelHigh     = "HIGH"
	LabelMedium   = "MEDIUM"
	LabelLow      = "LOW"

	criticalThreshold = 75
	highThreshold     = 50
	mediumThreshold   = 25
)

// RuleInput is everything the rule table needs about one actor.
type RuleInput struct {
	Mentions  *Tally
	PostCount int
	TxCount   int
	SwapCount int
	Traded    *SymbolSet
}

// Score runs the five rules in fixed order and returns the clamped total,
// its severity label, and one Driver per fired rule. All contributions are
// additive, so the order only shapes the driver list. Score is total over
// its input domain: empty inputs fire no rules and yield 0 / LOW.
func Score(in RuleInput) (int, string, []model.Driver) {
	score := 0
	drivers := make([]model.Driver, 0, 5)

	// 1. Shill clustering: the same token pushed again and again.
	if top, max := in.Mentions.Max(); max >= shillRepeatMin {
		pts := min(shillCap, max*shillPointsPer)
		score += pts
		drivers = append(drivers, model.Driver{
			Factor:   "Shill Clustering",
			Points:   pts,
			Evidence: fmt.Sprintf("$%s promoted %dx across posts", top, max),
		})
	}

	// 2. Token concentration: a feed dedicated to very few tokens.
	distinct := in.Mentions.Distinct()
	if distinct > 0 && in.PostCount > concentrationRatio*distinct {
		score += concentrationPoints
		drivers = append(drivers, model.Driver{
			Factor:   "Token Concentration",
			Points:   concentrationPoints,
			Evidence: fmt.Sprintf("%d posts promoting only %d token(s)", in.PostCount, distinct),
		})
	}

	// 3. Engagement authenticity: loud on social, silent on-chain.
	if in.PostCount > 0 && in.TxCount == 0 {
		score += ghostPoints
		drivers = append(drivers, model.Driver{
			Factor:   "Engagement Authenticity",
			Points:   ghostPoints,
			Evidence: fmt.Sprintf("%d social posts but zero on-chain transactions", in.PostCount),
		})
	} else if in.PostCount > in.TxCount*2 {
		score += imbalancePoints
		drivers = append(drivers, model.Driver{
			Factor:   "Engagement Authenticity",
			Points:   imbalancePoints,
			Evidence: fmt.Sprintf("%d posts vs %d transactions, unbalanced", in.PostCount, in.TxCount),
		})
	}

	// 4. Spam pattern: shotgun promotion across many tokens.
	if distinct >= spamDistinctMin {
		score += spamPoints
		drivers = append(drivers, model.Driver{
			Factor:   "Spam Pattern",
			Points:   spamPoints,
			Evidence: fmt.Sprintf("%d different tokens promoted, shotgun approach", distinct),
		})
	}

	// 5. Promote -> exit: mentioned tokens that were also traded.
	var overlap []string
	for _, tok := range in.Mentions.Tokens() {
		if in.Traded.Has(tok) {
			overlap = append(overlap, tok)
		}
	}
	if len(overlap) > 0 {
		pts := min(overlapCap, len(overlap)*overlapPointsPer)
		score += pts
		drivers = append(drivers, model.Driver{
			Factor:   "Promote → Exit",
			Points:   pts,
			Evidence: fmt.Sprintf("%s promoted in posts AND traded on-chain across %d swap(s)", strings.Join(overlap, ", "), in.SwapCount),
		})
	}

	if score > maxScore {
		score = maxScore
	}
	return score, Label(score), drivers
}

// Label maps a score to its severity label.
func Label(score int) string {
	switch {
	case score >= criticalThreshold:
		return LabelCritical
	case score >= highThreshold:
		return LabelHigh
	case score >= mediumThreshold:
		return LabelMedium
	default:
		return LabelLow
	}
}
