package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MarketConfig is the on-disk shape of a single instrument's static
// parameters — tick precision and order-size bounds — before they become
// an engine.MarketParams. It is intentionally flat: no leverage, margin, or
// funding fields, since the risk/position layer those would serve is out
// of scope for this core.
type MarketConfig struct {
	Symbol        string `yaml:"symbol"`
	TickPrecision int64  `yaml:"tick_precision"`
	MinOrderSize  uint32 `yaml:"min_order_size"`
	MaxOrderSize  uint32 `yaml:"max_order_size"`
	MinNotional   int64  `yaml:"min_notional"`
}

// DefaultMarketConfig mirrors the $0.01-tick, cent-denominated instrument
// used throughout this repository's examples and tests.
func DefaultMarketConfig() MarketConfig {
	return MarketConfig{
		Symbol:        "DEMO-USD",
		TickPrecision: 100,
		MinOrderSize:  1,
		MaxOrderSize:  1_000_000,
		MinNotional:   0,
	}
}

// LoadMarketConfig reads and parses a YAML market config file. A missing
// file is not an error: callers get DefaultMarketConfig back so a fresh
// checkout can run without first hand-authoring one.
func LoadMarketConfig(path string) (MarketConfig, error) {
	cfg := DefaultMarketConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return MarketConfig{}, fmt.Errorf("params: reading market config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MarketConfig{}, fmt.Errorf("params: parsing market config: %w", err)
	}
	return cfg, nil
}
