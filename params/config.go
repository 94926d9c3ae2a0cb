// Package params holds the matching engine's two configuration surfaces:
// process-level settings (log/data paths, capacity hints) loaded from the
// environment the way the teacher's node config is, and the single
// market's static parameters (§4.7), which are a better fit for a small
// YAML document than for flat environment variables.
package params

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is process-level configuration: where to log, where to read the
// CSV order feed from, and how large a book to pre-size.
type Config struct {
	LogFile      string
	CSVInputPath string
	CapacityHint int
}

func Default() Config {
	return Config{
		LogFile:      "data/matchcore.log",
		CSVInputPath: "data/orders.csv",
		CapacityHint: 4096,
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and the
// environment. Priority: ENV > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv("MATCHCORE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("MATCHCORE_CSV_INPUT"); v != "" {
		cfg.CSVInputPath = v
	}
	if v := os.Getenv("MATCHCORE_CAPACITY_HINT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CapacityHint = n
		}
	}

	return cfg
}
