package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// validLogLevels are the accepted log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// durationEnvKeys lists all Config fields that are parsed as time.Duration.
var durationEnvKeys = []string{
	"TICK_INTERVAL",
	"READ_TIMEOUT",
	"WRITE_TIMEOUT",
	"IDLE_TIMEOUT",
	"SHUTDOWN_TIMEOUT",
}

// unsetAllConfigEnv clears all config env vars.
func unsetAllConfigEnv() {
	for _, key := range allKeys {
		os.Unsetenv(key)
	}
}

// genDurationString generates a valid positive Go duration string (e.g. "3s", "500ms", "2m").
func genDurationString() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		unit := rapid.SampledFrom([]string{"ms", "s", "m"}).Draw(t, "unit")
		val := rapid.IntRange(1, 600).Draw(t, "val")
		return fmt.Sprintf("%d%s", val, unit)
	})
}

// parseDurationOrDefault parses a duration string, returning the default if empty.
func parseDurationOrDefault(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, _ := time.ParseDuration(s)
	return d
}

func TestProperty_ValidConfigParsing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		unsetAllConfigEnv()
		defer unsetAllConfigEnv()

		portStr := rapid.OneOf(
			rapid.Just(""),
			rapid.Map(rapid.IntRange(1, 65535), func(v int) string { return fmt.Sprintf("%d", v) }),
		).Draw(t, "port")

		logLevel := rapid.OneOf(
			rapid.Just(""),
			rapid.SampledFrom(validLogLevels),
		).Draw(t, "logLevel")

		cashCents := rapid.OneOf(
			rapid.Just(int64(-1)),
			rapid.Int64Range(0, 1_000_000_000_00),
		).Draw(t, "cashCents")

		durStrs := make(map[string]string, len(durationEnvKeys))
		for _, key := range durationEnvKeys {
			durStrs[key] = rapid.OneOf(
				rapid.Just(""),
				genDurationString(),
			).Draw(t, key)
		}

		if portStr != "" {
			os.Setenv("PORT", portStr)
		}
		if logLevel != "" {
			os.Setenv("LOG_LEVEL", logLevel)
		}
		expectedCash := decimal.NewFromInt(100000)
		if cashCents >= 0 {
			expectedCash = decimal.New(cashCents, -2)
			os.Setenv("INITIAL_CASH", expectedCash.StringFixed(2))
		}
		for _, key := range durationEnvKeys {
			if durStrs[key] != "" {
				os.Setenv(key, durStrs[key])
			}
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error for valid inputs: %v", err)
		}

		expectedPort := 8080
		if portStr != "" {
			fmt.Sscanf(portStr, "%d", &expectedPort)
		}
		if cfg.Port != expectedPort {
			t.Fatalf("Port = %d, want %d", cfg.Port, expectedPort)
		}

		expectedLogLevel := "info"
		if logLevel != "" {
			expectedLogLevel = logLevel
		}
		if cfg.LogLevel != expectedLogLevel {
			t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, expectedLogLevel)
		}

		if !cfg.InitialCash.Equal(expectedCash) {
			t.Fatalf("InitialCash = %s, want %s", cfg.InitialCash, expectedCash)
		}

		type durField struct {
			envKey string
			got    time.Duration
			defVal time.Duration
		}
		durFields := []durField{
			{"TICK_INTERVAL", cfg.TickInterval, 5 * time.Second},
			{"READ_TIMEOUT", cfg.ReadTimeout, 5 * time.Second},
			{"WRITE_TIMEOUT", cfg.WriteTimeout, 10 * time.Second},
			{"IDLE_TIMEOUT", cfg.IdleTimeout, 60 * time.Second},
			{"SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout, 10 * time.Second},
		}
		for _, df := range durFields {
			expected := parseDurationOrDefault(durStrs[df.envKey], df.defVal)
			if df.got != expected {
				t.Fatalf("%s = %v, want %v (env=%q)", df.envKey, df.got, expected, durStrs[df.envKey])
			}
		}
	})
}

func TestProperty_SubCentCashReturnsError(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		unsetAllConfigEnv()
		defer unsetAllConfigEnv()

		whole := rapid.IntRange(0, 1_000_000).Draw(t, "whole")
		mills := rapid.IntRange(1, 9).Draw(t, "mills")
		cents := rapid.IntRange(0, 99).Draw(t, "cents")
		os.Setenv("INITIAL_CASH", fmt.Sprintf("%d.%02d%d", whole, cents, mills))

		if _, err := Load(); err == nil {
			t.Fatalf("Load() should reject INITIAL_CASH=%q", os.Getenv("INITIAL_CASH"))
		}
	})
}

func TestProperty_InvalidLogLevelReturnsError(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		unsetAllConfigEnv()
		defer unsetAllConfigEnv()

		invalidLevel := rapid.StringMatching(`[a-z]{1,20}`).Filter(func(s string) bool {
			for _, v := range validLogLevels {
				if s == v {
					return false
				}
			}
			return s != ""
		}).Draw(t, "invalidLevel")

		os.Setenv("LOG_LEVEL", invalidLevel)

		if _, err := Load(); err == nil {
			t.Fatalf("Load() should return error for invalid LOG_LEVEL %q", invalidLevel)
		}
	})
}

func TestProperty_InvalidDurationReturnsError(t *testing.T) {
	for _, key := range durationEnvKeys {
		t.Run(key, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				unsetAllConfigEnv()
				defer unsetAllConfigEnv()

				invalidDur := rapid.OneOf(
					rapid.StringMatching(`[a-zA-Z]{2,10}`),
					rapid.Just("5x"),
					rapid.Just("abc123"),
				).Filter(func(s string) bool {
					_, err := time.ParseDuration(s)
					return s != "" && err != nil
				}).Draw(t, "invalidDuration")

				os.Setenv(key, invalidDur)

				if _, err := Load(); err == nil {
					t.Fatalf("Load() should return error for invalid %s=%q", key, invalidDur)
				}
			})
		})
	}
}
