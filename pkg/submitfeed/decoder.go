// Package submitfeed decodes a raw JSON submission envelope — the wire
// shape of §6's order submission record, plus a cancel variant — into the
// engine.Order/id values Book.Submit and Book.Cancel accept.
//
// This is adapted from the teacher's mempool package, which classified
// inbound transaction bytes into non-order/cancel/order buckets ahead of
// a BFT proposer selecting them into a block. That bucketing-for-consensus
// machinery is out of scope here (replication is an explicit non-goal);
// what survives is the one useful idea, classifying an envelope by intent
// before it reaches the engine.
package submitfeed

import (
	"encoding/json"
	"fmt"

	"github.com/mkessler/matchcore/pkg/engine"
)

// envelope is the wire shape: {"type": "order"|"cancel", ...}. Unknown or
// malformed envelopes are rejected rather than defaulted, unlike the
// teacher's ClassifyRaw — silently treating a malformed cancel as an order
// would mutate the book instead of merely misrouting a consensus tx.
type envelope struct {
	Type     string `json:"type"`
	ID       uint64 `json:"id"`
	Side     string `json:"side"`
	Price    int64  `json:"price_tick"`
	Quantity uint32 `json:"quantity"`
	Kind     string `json:"kind"`
	TIF      string `json:"tif"`
	Tag      uint32 `json:"participant_tag"`
	Ts       uint64 `json:"timestamp"`
	CancelID uint64 `json:"cancel_id"`
}

// Submission is the decoded result: either an Order to submit or an id to
// cancel, never both.
type Submission struct {
	IsCancel bool
	Order    engine.Order
	CancelID uint64
}

// Decode parses a raw JSON submission envelope. It returns an error for
// anything malformed or unrecognized rather than guessing at an intent
// that would silently reach the book as something the caller didn't send.
func Decode(raw []byte) (Submission, error) {
	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return Submission{}, fmt.Errorf("submitfeed: malformed envelope: %w", err)
	}

	switch e.Type {
	case "cancel":
		if e.CancelID == 0 {
			return Submission{}, fmt.Errorf("submitfeed: cancel envelope missing id")
		}
		return Submission{IsCancel: true, CancelID: e.CancelID}, nil
	case "order":
		side, err := decodeSide(e.Side)
		if err != nil {
			return Submission{}, err
		}
		kind, err := decodeKind(e.Kind)
		if err != nil {
			return Submission{}, err
		}
		tif, err := decodeTIF(e.TIF)
		if err != nil {
			return Submission{}, err
		}
		return Submission{Order: engine.Order{
			ID:             e.ID,
			Side:           side,
			PriceTick:      e.Price,
			Quantity:       e.Quantity,
			Kind:           kind,
			TIF:            tif,
			ParticipantTag: e.Tag,
			Timestamp:      e.Ts,
		}}, nil
	default:
		return Submission{}, fmt.Errorf("submitfeed: unknown envelope type %q", e.Type)
	}
}

func decodeSide(s string) (engine.Side, error) {
	switch s {
	case "BUY":
		return engine.Buy, nil
	case "SELL":
		return engine.Sell, nil
	default:
		return 0, fmt.Errorf("submitfeed: unknown side %q", s)
	}
}

func decodeKind(s string) (engine.Kind, error) {
	switch s {
	case "LIMIT":
		return engine.Limit, nil
	case "MARKET":
		return engine.Market, nil
	default:
		return 0, fmt.Errorf("submitfeed: unknown kind %q", s)
	}
}

func decodeTIF(s string) (engine.TIF, error) {
	switch s {
	case "GTC":
		return engine.GTC, nil
	case "IOC":
		return engine.IOC, nil
	case "FOK":
		return engine.FOK, nil
	default:
		return 0, fmt.Errorf("submitfeed: unknown tif %q", s)
	}
}
