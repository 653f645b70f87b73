package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/vinodreddy1410/CodeAlpha-StockTradingPlatform/internal/domain"
)

// Config holds all runtime configuration for the trading simulator.
type Config struct {
	Port            int
	LogLevel        string
	DataFile        string
	TickInterval    time.Duration
	InitialCash     decimal.Decimal
	UserID          string
	UserName        string
	RandomSeed      uint64 // 0 seeds from the clock
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, first merging a
// .env file from the working directory if one exists.
func Load() (*Config, error) {
	return LoadWithEnvFile(".env")
}

// LoadWithEnvFile is Load with an explicit dotenv path. Variables already
// present in the environment take precedence over the file. A missing
// file is not an error.
func LoadWithEnvFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("invalid env file %s: %w", path, err)
	}

	port, err := getInt("PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d out of range", port)
	}

	logLevel := getStr("LOG_LEVEL", "info")
	if !isValidLogLevel(logLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", logLevel)
	}

	dataFile := getStr("DATA_FILE", "trading_data.json")

	tickInterval, err := getDuration("TICK_INTERVAL", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid TICK_INTERVAL: %w", err)
	}
	if tickInterval <= 0 {
		return nil, fmt.Errorf("invalid TICK_INTERVAL: must be > 0")
	}

	initialCash, err := getAmount("INITIAL_CASH", 100000)
	if err != nil {
		return nil, fmt.Errorf("invalid INITIAL_CASH: %w", err)
	}

	seed, err := getUint("RANDOM_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
	}

	readTimeout, err := getDuration("READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := getDuration("WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid WRITE_TIMEOUT: %w", err)
	}

	idleTimeout, err := getDuration("IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid IDLE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return &Config{
		Port:            port,
		LogLevel:        logLevel,
		DataFile:        dataFile,
		TickInterval:    tickInterval,
		InitialCash:     initialCash,
		UserID:          getStr("USER_ID", "Trader001"),
		UserName:        getStr("USER_NAME", "John Doe"),
		RandomSeed:      seed,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		IdleTimeout:     idleTimeout,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func getInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}

func getUint(key string, defaultVal uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.ParseUint(v, 10, 64)
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(v)
}

func getAmount(key string, defaultVal float64) (decimal.Decimal, error) {
	f := defaultVal
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return decimal.Zero, err
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return decimal.Zero, fmt.Errorf("%q is not a finite amount", v)
		}
		f = parsed
	}
	if f < 0 {
		return decimal.Zero, fmt.Errorf("must be >= 0")
	}
	return domain.ParseAmount(f)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
