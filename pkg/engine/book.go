package engine

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// orderHandle is the order index's value: everything Cancel needs to
// detach a resting order in O(1) without walking its level's queue.
type orderHandle struct {
	side  Side
	level *priceLevel
	elem  *list.Element
}

// Book is the single-instrument order book: two sideBooks, the order
// index, and the fill-sequence/stats counters, all mutated only through
// Submit and Cancel under a single mutex. The engine's contract is
// single-writer: concurrent Submit/Cancel calls on the same
// Book serialize through mu, but nothing about the engine's algorithms
// assumes more than one writer, because nothing in this package yields or
// blocks mid-mutation.
type Book struct {
	mu sync.Mutex

	market *MarketParams

	bids *sideBook
	asks *sideBook
	index map[uint64]*orderHandle

	fillSeq uint64
	stats   Stats
}

// NewBook constructs an empty book for market. capacityHint pre-sizes the
// order index to avoid rehashing during an initial burst of GTC resting
// orders; it is an optimization hint, not a hard limit.
func NewBook(market *MarketParams, capacityHint int) *Book {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Book{
		market: market,
		bids:   newSideBook(Buy),
		asks:   newSideBook(Sell),
		index:  make(map[uint64]*orderHandle, capacityHint),
	}
}

func (b *Book) sideBookFor(s Side) *sideBook {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

// Submit validates, matches, and (for GTC) rests an incoming order. Fills
// produced are appended to out, which the caller owns; Submit never
// truncates or replaces it. The returned Result's Accepted() method
// recovers the boolean the language-neutral interface specifies.
func (b *Book) Submit(o Order, out *[]Fill) Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.validateSubmission(o); err != nil {
		return RejectedInvalid
	}

	if o.TIF == FOK {
		if !b.previewFOK(&o) {
			return RejectedUnfillable
		}
	}

	remaining := b.match(&o, out)

	if remaining > 0 && o.TIF == GTC && o.Kind == Limit {
		b.rest(o, remaining)
	}
	// IOC and FOK residuals, and any Market residual regardless of TIF,
	// are discarded: Market orders never rest (§4.1).

	b.stats.OrdersProcessed++
	return Accepted
}

// Cancel removes a resting order by id. It never produces a fill. An id
// that is absent — never submitted, already fully filled, or already
// canceled — is a no-op returning false.
func (b *Book) Cancel(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	h, ok := b.index[id]
	if !ok {
		return false
	}
	b.sideBookFor(h.side).detach(h.level, h.elem)
	delete(b.index, id)
	return true
}

func (b *Book) validateSubmission(o Order) error {
	if _, exists := b.index[o.ID]; exists {
		return fmt.Errorf("engine: duplicate order id %d", o.ID)
	}
	if o.Quantity == 0 {
		return fmt.Errorf("engine: quantity must be positive")
	}
	if o.Side != Buy && o.Side != Sell {
		return fmt.Errorf("engine: invalid side %d", o.Side)
	}
	if o.Kind != Limit && o.Kind != Market {
		return fmt.Errorf("engine: invalid kind %d", o.Kind)
	}
	if o.TIF != GTC && o.TIF != IOC && o.TIF != FOK {
		return fmt.Errorf("engine: invalid tif %d", o.TIF)
	}
	if o.Kind == Limit && o.PriceTick <= 0 {
		return fmt.Errorf("engine: limit price must be positive")
	}
	if b.market != nil {
		if err := b.market.validateOrder(&o); err != nil {
			return err
		}
	}
	return nil
}

// marketable reports whether taker can cross against a resting order at
// levelTick: always true for Market orders, price-comparison for Limit.
func marketable(taker *Order, levelTick int64) bool {
	if taker.Kind == Market {
		return true
	}
	if taker.Side == Buy {
		return taker.PriceTick >= levelTick
	}
	return taker.PriceTick <= levelTick
}

// match consumes opposing liquidity price-time-priority first, emitting a
// Fill per match step, and returns the taker's unfilled residual. It never
// allocates beyond the Fill values appended to out; level and order
// records are only allocated/freed on admission/removal, not per step.
func (b *Book) match(taker *Order, out *[]Fill) uint32 {
	opp := b.sideBookFor(taker.Side.Opposite())
	remaining := taker.Quantity

	for remaining > 0 {
		lvl := opp.bestLevel()
		if lvl == nil || !marketable(taker, lvl.tick) {
			break
		}
		maker := lvl.front()
		q := min(remaining, maker.remaining)

		*out = append(*out, Fill{
			TakerID:   taker.ID,
			MakerID:   maker.id,
			PriceTick: lvl.tick,
			Quantity:  q,
			Seq:       b.nextSeq(),
		})
		b.stats.FillsGenerated++

		remaining -= q
		maker.remaining -= q
		lvl.reduce(q)

		if maker.remaining == 0 {
			h := b.index[maker.id]
			opp.detach(lvl, h.elem)
			delete(b.index, maker.id)
		}
	}
	return remaining
}

// previewFOK walks the opposing side in price-priority order, without
// mutating anything, summing quantity available at marketable prices
// until the taker's quantity is covered or marketable liquidity runs out.
func (b *Book) previewFOK(taker *Order) bool {
	opp := b.sideBookFor(taker.Side.Opposite())
	need := uint64(taker.Quantity)
	var covered uint64

	for _, lv := range opp.topLevels(len(opp.levels)) {
		if !marketable(taker, lv.PriceTick) {
			break
		}
		covered += lv.TotalQty
		if covered >= need {
			return true
		}
	}
	return false
}

// rest enqueues a GTC residual on the order's own side and registers it in
// the order index.
func (b *Book) rest(o Order, qty uint32) {
	sb := b.sideBookFor(o.Side)
	r := &resting{id: o.ID, side: o.Side, priceTick: o.PriceTick, remaining: qty}
	e := sb.insert(o.PriceTick, r)
	lvl, _ := sb.levelAt(o.PriceTick)
	b.index[o.ID] = &orderHandle{side: o.Side, level: lvl, elem: e}
}

func (b *Book) nextSeq() uint64 {
	b.fillSeq++
	return b.fillSeq
}

// BestBidTick returns the highest resting bid tick, or false if the bid
// side is empty.
func (b *Book) BestBidTick() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	lvl := b.bids.bestLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.tick, true
}

// BestAskTick returns the lowest resting ask tick, or false if the ask
// side is empty.
func (b *Book) BestAskTick() (int64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	lvl := b.asks.bestLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.tick, true
}

// BestBid returns the best bid as an exact currency value, or false if
// the bid side is empty.
func (b *Book) BestBid() (decimal.Decimal, bool) {
	tick, ok := b.BestBidTick()
	if !ok {
		return decimal.Zero, false
	}
	return b.market.TicksToCurrency(tick), true
}

// BestAsk returns the best ask as an exact currency value, or false if
// the ask side is empty.
func (b *Book) BestAsk() (decimal.Decimal, bool) {
	tick, ok := b.BestAskTick()
	if !ok {
		return decimal.Zero, false
	}
	return b.market.TicksToCurrency(tick), true
}

// TopLevels returns up to n price levels on side, in price-priority order,
// as a point-in-time snapshot.
func (b *Book) TopLevels(side Side, n int) []PriceLevelView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sideBookFor(side).topLevels(n)
}

// OrderCount returns the number of orders currently resting on the book.
func (b *Book) OrderCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.index)
}

// TotalVolume sums remaining quantity resting on side.
func (b *Book) TotalVolume(side Side) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sideBookFor(side).totalVolume()
}

// Stats returns a snapshot of the two lifetime counters.
func (b *Book) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}
