package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MarketParams carries the static shape of the single instrument this book
// trades: how many ticks make up one currency unit, and the order-size
// bounds Submit's validation step enforces. Multi-symbol routing, and the
// leverage/margin/funding fields a perpetual-futures market would also
// need, are out of scope here — this is deliberately smaller than a
// position-aware market definition.
type MarketParams struct {
	Symbol string

	// TickPrecision is how many ticks make up one currency unit, e.g. 100
	// means a tick is one cent. All prices submitted to the book are
	// already integer ticks; TickPrecision is only consulted when
	// converting between ticks and currency values at the boundary
	// (best_bid/best_ask, CurrencyToTicks, the CSV loader's precision).
	TickPrecision int64

	MinOrderSize uint32
	MaxOrderSize uint32

	// MinNotional rejects dust orders: PriceTick * Quantity must be at
	// least this much. Zero disables the check. Market orders are not
	// checked against it.
	MinNotional int64
}

// NewMarket validates and returns a MarketParams for one symbol.
func NewMarket(symbol string, tickPrecision int64, minSize, maxSize uint32, minNotional int64) (*MarketParams, error) {
	m := &MarketParams{
		Symbol:        symbol,
		TickPrecision: tickPrecision,
		MinOrderSize:  minSize,
		MaxOrderSize:  maxSize,
		MinNotional:   minNotional,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MarketParams) validate() error {
	if m.Symbol == "" {
		return fmt.Errorf("engine: symbol cannot be empty")
	}
	if m.TickPrecision <= 0 {
		return fmt.Errorf("engine: tick precision must be positive")
	}
	if m.MinOrderSize == 0 {
		return fmt.Errorf("engine: min order size must be positive")
	}
	if m.MaxOrderSize < m.MinOrderSize {
		return fmt.Errorf("engine: max order size cannot be below min order size")
	}
	if m.MinNotional < 0 {
		return fmt.Errorf("engine: min notional cannot be negative")
	}
	return nil
}

// validateOrder applies the market's size and notional bounds to an
// incoming order. It is consulted by Submit's validation step in addition
// to the engine-wide checks (positive price, positive quantity, ...) that
// apply regardless of which market is attached to the book.
func (m *MarketParams) validateOrder(o *Order) error {
	if o.Quantity < m.MinOrderSize {
		return fmt.Errorf("engine: quantity %d below minimum %d", o.Quantity, m.MinOrderSize)
	}
	if o.Quantity > m.MaxOrderSize {
		return fmt.Errorf("engine: quantity %d exceeds maximum %d", o.Quantity, m.MaxOrderSize)
	}
	if m.MinNotional > 0 && o.Kind == Limit {
		notional := o.PriceTick * int64(o.Quantity)
		if notional < m.MinNotional {
			return fmt.Errorf("engine: notional %d below minimum %d", notional, m.MinNotional)
		}
	}
	return nil
}

// TicksToCurrency converts an integer tick price to a decimal currency
// value (tick / TickPrecision, rounded to 8 decimal places; exact whenever
// TickPrecision is a power of ten up to 10^8). Using shopspring/decimal here
// instead of a bare float64 division avoids introducing binary-floating-
// point error at the one boundary where the engine does leave tick space;
// every comparison inside the engine itself stays on the int64 tick.
func (m *MarketParams) TicksToCurrency(ticks int64) decimal.Decimal {
	return decimal.NewFromInt(ticks).DivRound(decimal.NewFromInt(m.TickPrecision), 8)
}

// CurrencyToTicks converts an exact decimal currency value to integer
// ticks, rounding to the nearest tick.
func (m *MarketParams) CurrencyToTicks(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(m.TickPrecision)).Round(0).IntPart()
}
