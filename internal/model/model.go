package model

import "encoding/json"

// Actor is the identity under analysis. It comes from an upstream profile
// lookup, or is synthesized from a raw wallet address when no profile exists.
type Actor struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Namespace string `json:"namespace"`
	Wallet    string `json:"wallet"`
}

// Post is a single social utterance as returned by the content provider.
// The provider wraps the body in one of three shapes (plain string, nested
// object with its own "content" field, or a key/value property list), so
// Content stays raw until the normalizer projects it to text.
type Post struct {
	ID         string          `json:"id"`
	ProfileID  string          `json:"profileId,omitempty"`
	Content    json.RawMessage `json:"content,omitempty"`
	Properties []Property      `json:"properties,omitempty"`
	CreatedAt  int64           `json:"created_at,omitempty"`
}

// Property is one entry of the provider's key/value post representation.
type Property struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Transaction is a raw on-chain transaction record from the chain provider.
type Transaction struct {
	Signature string    `json:"signature"`
	Type      string    `json:"type"`
	Source    string    `json:"source"`
	Timestamp int64     `json:"timestamp"` // seconds
	Events    *TxEvents `json:"events,omitempty"`
}

// TxEvents carries the optional decoded event detail of a transaction.
type TxEvents struct {
	Swap *SwapEvent `json:"swap,omitempty"`
}

// SwapEvent describes the input and output legs of a token swap.
type SwapEvent struct {
	NativeInput  *NativeTransfer `json:"nativeInput,omitempty"`
	NativeOutput *NativeTransfer `json:"nativeOutput,omitempty"`
	TokenInputs  []TokenTransfer `json:"tokenInputs,omitempty"`
	TokenOutputs []TokenTransfer `json:"tokenOutputs,omitempty"`
}

// NativeTransfer is a native-currency leg of a swap.
type NativeTransfer struct {
	Account string `json:"account,omitempty"`
	Amount  int64  `json:"amount,omitempty"`
}

// TokenTransfer is a token leg of a swap. Symbol may be absent for tokens
// without registered metadata, in which case only the mint identifies them.
type TokenTransfer struct {
	Mint   string `json:"mint,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// IsSwap reports whether the transaction is a token swap, either by its
// provider classification or by carrying decoded swap detail.
func (t Transaction) IsSwap() bool {
	return t.Type == "SWAP" || t.Swap() != nil
}

// Swap returns the decoded swap detail, or nil.
func (t Transaction) Swap() *SwapEvent {
	if t.Events == nil {
		return nil
	}
	return t.Events.Swap
}

// Driver is one fired scoring rule: its point contribution and a
// human-readable justification. Created only when the rule fires.
type Driver struct {
	Factor   string `json:"factor"`
	Points   int    `json:"points"`
	Evidence string `json:"evidence"`
}

// TokenCount pairs a mentioned ticker with its mention count.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// Stats summarizes the raw material a score was computed from.
// The lowercase "tokensmentioned" key is part of the wire contract.
type Stats struct {
	Posts           int          `json:"posts"`
	Transactions    int          `json:"transactions"`
	Swaps           int          `json:"swaps"`
	TokensMentioned []TokenCount `json:"tokensmentioned"`
	TokensTraded    []string     `json:"tokensTraded"`
}

// Timeline event types.
const (
	EventPost = "post"
	EventSwap = "swap"
	EventTx   = "tx"
)

// TimelineEvent is one entry of the merged post/transaction timeline.
// Timestamp is epoch milliseconds; 0 means unknown and sorts first.
type TimelineEvent struct {
	Timestamp int64    `json:"timestamp"`
	Type      string   `json:"type"`
	Content   string   `json:"content"`
	Tokens    []string `json:"tokens,omitempty"`
	Signature string   `json:"signature,omitempty"`
	TokenIn   string   `json:"tokenIn,omitempty"`
	TokenOut  string   `json:"tokenOut,omitempty"`
}

// ScoreResult is the engine's sole output, constructed once per run.
type ScoreResult struct {
	Score    int             `json:"score"`
	Label    string          `json:"label"`
	Drivers  []Driver        `json:"drivers"`
	Profile  Actor           `json:"profile"`
	Stats    Stats           `json:"stats"`
	Timeline []TimelineEvent `json:"timeline"`
}
