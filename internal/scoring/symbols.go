package scoring

import "shillscore/internal/model"

// NativeSymbol is the sentinel used when a swap leg is the chain's native
// currency rather than a token with its own symbol.
const NativeSymbol = "SOL"

// mintPrefixLen is how much of a mint address stands in for a missing symbol.
// Long enough that literal-address mentions still have a chance to match.
const mintPrefixLen = 8

// SymbolSet is an insertion-ordered set of traded token symbols.
type SymbolSet struct {
	seen  map[string]struct{}
	order []string
}

// NewSymbolSet allocates an empty set.
func NewSymbolSet() *SymbolSet {
	return &SymbolSet{seen: make(map[string]struct{})}
}

// Add inserts a symbol; empty strings and duplicates are ignored.
func (s *SymbolSet) Add(sym string) {
	if sym == "" {
		return
	}
	if _, ok := s.seen[sym]; ok {
		return
	}
	s.seen[sym] = struct{}{}
	s.order = append(s.order, sym)
}

// Has reports whether the symbol is in the set.
func (s *SymbolSet) Has(sym string) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[sym]
	return ok
}

// Len returns the number of symbols.
func (s *SymbolSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Symbols returns the set in insertion order, never nil.
func (s *SymbolSet) Symbols() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s.order))
	return append(out, s.order...)
}

// TradedSymbols derives the set of symbols the actor has swapped, input or
// output legs alike. Only the primary input and output leg of each swap are
// inspected; upstream swap events always list the primary pair first.
func TradedSymbols(txs []model.Transaction) *SymbolSet {
	set := NewSymbolSet()
	for _, tx := range txs {
		if !tx.IsSwap() {
			continue
		}
		s := tx.Swap()
		if s == nil {
			continue
		}
		set.Add(InputSymbol(s))
		set.Add(OutputSymbol(s))
	}
	return set
}

// InputSymbol resolves the input leg of a swap to a display symbol:
// native sentinel, then token symbol, then a truncated mint address.
func InputSymbol(s *model.SwapEvent) string {
	if s.NativeInput != nil {
		return NativeSymbol
	}
	return legSymbol(s.TokenInputs)
}

// OutputSymbol resolves the output leg of a swap, same precedence as InputSymbol.
func OutputSymbol(s *model.SwapEvent) string {
	if s.NativeOutput != nil {
		return NativeSymbol
	}
	return legSymbol(s.TokenOutputs)
}

func legSymbol(legs []model.TokenTransfer) string {
	if len(legs) == 0 {
		return ""
	}
	leg := legs[0]
	if leg.Symbol != "" {
		return leg.Symbol
	}
	if len(leg.Mint) > mintPrefixLen {
		return leg.Mint[:mintPrefixLen]
	}
	return leg.Mint
}
