// Command matchcore replays a CSV order feed through a single-instrument
// matching engine.Book, logging every fill as it is produced. It is
// wiring around the core — config, logging, CSV ingestion — not a new
// feature; it has no HTTP surface and produces no report.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/mkessler/matchcore/params"
	"github.com/mkessler/matchcore/pkg/csvfeed"
	"github.com/mkessler/matchcore/pkg/engine"
	"github.com/mkessler/matchcore/pkg/util"
)

func main() {
	cfg := params.LoadFromEnv("")

	logger, err := util.NewLoggerWithFile(cfg.LogFile)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()
	sugar.Infow("logger_initialized", "log_file", cfg.LogFile)

	marketCfgPath := os.Getenv("MATCHCORE_MARKET_CONFIG")
	if marketCfgPath == "" {
		marketCfgPath = "market.yaml"
	}
	marketCfg, err := params.LoadMarketConfig(marketCfgPath)
	if err != nil {
		sugar.Fatalw("market_config_failed", "err", err)
	}

	market, err := engine.NewMarket(
		marketCfg.Symbol,
		marketCfg.TickPrecision,
		marketCfg.MinOrderSize,
		marketCfg.MaxOrderSize,
		marketCfg.MinNotional,
	)
	if err != nil {
		sugar.Fatalw("market_invalid", "err", err)
	}
	sugar.Infow("market_loaded", "symbol", market.Symbol, "tick_precision", market.TickPrecision)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	file, err := os.Open(cfg.CSVInputPath)
	if err != nil {
		sugar.Fatalw("csv_open_failed", "path", cfg.CSVInputPath, "err", err)
	}
	defer file.Close()

	orders, err := csvfeed.Load(file, market.TickPrecision)
	if err != nil {
		sugar.Fatalw("csv_load_failed", "err", err)
	}
	sugar.Infow("csv_loaded", "path", cfg.CSVInputPath, "orders", humanize.Comma(int64(len(orders))))

	book := engine.NewBook(market, cfg.CapacityHint)

	var fills []engine.Fill
replay:
	for _, o := range orders {
		select {
		case <-ctx.Done():
			sugar.Info("replay_interrupted")
			break replay
		default:
		}

		fills = fills[:0]
		result := book.Submit(o, &fills)
		if !result.Accepted() {
			sugar.Warnw("order_rejected", "id", o.ID, "side", o.Side.String(), "tif", o.TIF.String())
			continue
		}
		for _, f := range fills {
			sugar.Infow("fill",
				"taker", f.TakerID,
				"maker", f.MakerID,
				"price_tick", f.PriceTick,
				"quantity", f.Quantity,
				"seq", f.Seq,
			)
		}
	}

	stats := book.Stats()
	sugar.Infow("replay_complete",
		"orders_processed", humanize.Comma(int64(stats.OrdersProcessed)),
		"fills_generated", humanize.Comma(int64(stats.FillsGenerated)),
		"resting_orders", book.OrderCount(),
	)
}
