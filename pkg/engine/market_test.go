package engine

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewMarket_Validation(t *testing.T) {
	tests := []struct {
		name          string
		symbol        string
		tickPrecision int64
		minSize       uint32
		maxSize       uint32
		minNotional   int64
		wantErr       bool
	}{
		{"valid", "DEMO-USD", 100, 1, 1000, 0, false},
		{"empty symbol", "", 100, 1, 1000, 0, true},
		{"non-positive tick precision", "DEMO-USD", 0, 1, 1000, 0, true},
		{"zero min size", "DEMO-USD", 100, 0, 1000, 0, true},
		{"max below min", "DEMO-USD", 100, 100, 10, 0, true},
		{"negative min notional", "DEMO-USD", 100, 1, 1000, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMarket(tt.symbol, tt.tickPrecision, tt.minSize, tt.maxSize, tt.minNotional)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewMarket() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarket_TickCurrencyRoundTrip(t *testing.T) {
	m, err := NewMarket("DEMO-USD", 100, 1, 1_000_000, 0)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}
	ticks := m.CurrencyToTicks(decimal.RequireFromString("1234.56"))
	if ticks != 123456 {
		t.Fatalf("CurrencyToTicks(1234.56) = %d, want 123456", ticks)
	}
	back := m.TicksToCurrency(ticks)
	if !back.Equal(decimal.RequireFromString("1234.56")) {
		t.Fatalf("TicksToCurrency(123456) = %v, want 1234.56", back)
	}
}

func TestMarket_ValidateOrderBounds(t *testing.T) {
	m, err := NewMarket("DEMO-USD", 100, 10, 100, 0)
	if err != nil {
		t.Fatalf("NewMarket() error = %v", err)
	}
	if err := m.validateOrder(&Order{Quantity: 5, Kind: Limit, PriceTick: 100000}); err == nil {
		t.Error("validateOrder() = nil, want error for quantity below minimum")
	}
	if err := m.validateOrder(&Order{Quantity: 200, Kind: Limit, PriceTick: 100000}); err == nil {
		t.Error("validateOrder() = nil, want error for quantity above maximum")
	}
	if err := m.validateOrder(&Order{Quantity: 50, Kind: Limit, PriceTick: 100000}); err != nil {
		t.Errorf("validateOrder() = %v, want nil for an in-bounds order", err)
	}
}
