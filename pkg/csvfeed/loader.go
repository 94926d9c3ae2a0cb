// Package csvfeed reads the §6 CSV submission format — header
// SIDE,PRICE,QUANTITY,TYPE,TIF — into engine.Order values. It is an
// external collaborator, not part of the core: the core never parses CSV
// itself, it only ever receives the engine.Order values this package
// produces.
package csvfeed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mkessler/matchcore/pkg/engine"
)

var wantHeader = []string{"SIDE", "PRICE", "QUANTITY", "TYPE", "TIF"}

// Load reads every data row from r and converts it into an engine.Order.
// Identifiers are not present in the file; Load assigns them itself,
// monotonically starting at 1 in file order, since the engine requires a
// unique id per submission and the CSV format carries none.
//
// price is a decimal currency amount; it is converted to an integer tick
// via decimal arithmetic (price * tickPrecision), not a float64
// multiplication, so a price like 1000.00 with tickPrecision 100 always
// lands on exactly tick 100000 rather than something one ULP off.
func Load(r io.Reader, tickPrecision int64) ([]engine.Order, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csvfeed: reading header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("csvfeed: unexpected header %v, want %v", header, wantHeader)
	}

	var orders []engine.Order
	nextID := uint64(1)
	precision := decimal.NewFromInt(tickPrecision)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvfeed: reading row %d: %w", nextID, err)
		}

		o, err := parseRow(row, nextID, precision)
		if err != nil {
			return nil, fmt.Errorf("csvfeed: row %d: %w", nextID, err)
		}
		orders = append(orders, o)
		nextID++
	}
	return orders, nil
}

func headerMatches(got []string) bool {
	if len(got) != len(wantHeader) {
		return false
	}
	for i, h := range wantHeader {
		if got[i] != h {
			return false
		}
	}
	return true
}

func parseRow(row []string, id uint64, precision decimal.Decimal) (engine.Order, error) {
	if len(row) != 5 {
		return engine.Order{}, fmt.Errorf("expected 5 columns, got %d", len(row))
	}

	side, err := parseSide(row[0])
	if err != nil {
		return engine.Order{}, err
	}

	priceDec, err := decimal.NewFromString(row[1])
	if err != nil {
		return engine.Order{}, fmt.Errorf("invalid price %q: %w", row[1], err)
	}
	tick := priceDec.Mul(precision).Round(0).IntPart()

	qty, err := strconv.ParseUint(row[2], 10, 32)
	if err != nil {
		return engine.Order{}, fmt.Errorf("invalid quantity %q: %w", row[2], err)
	}

	kind, err := parseKind(row[3])
	if err != nil {
		return engine.Order{}, err
	}

	tif, err := parseTIF(row[4])
	if err != nil {
		return engine.Order{}, err
	}

	return engine.Order{
		ID:        id,
		Side:      side,
		PriceTick: tick,
		Quantity:  uint32(qty),
		Kind:      kind,
		TIF:       tif,
	}, nil
}

func parseSide(s string) (engine.Side, error) {
	switch s {
	case "BUY":
		return engine.Buy, nil
	case "SELL":
		return engine.Sell, nil
	default:
		return 0, fmt.Errorf("invalid side %q", s)
	}
}

func parseKind(s string) (engine.Kind, error) {
	switch s {
	case "LIMIT":
		return engine.Limit, nil
	case "MARKET":
		return engine.Market, nil
	default:
		return 0, fmt.Errorf("invalid type %q", s)
	}
}

func parseTIF(s string) (engine.TIF, error) {
	switch s {
	case "GTC":
		return engine.GTC, nil
	case "IOC":
		return engine.IOC, nil
	case "FOK":
		return engine.FOK, nil
	default:
		return 0, fmt.Errorf("invalid tif %q", s)
	}
}
