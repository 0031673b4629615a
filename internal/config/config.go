package config

import (
	"os"
	"strconv"
)

// Config holds all winnow configuration.
type Config struct {
	Source   SourceConfig
	Engine   EngineConfig
	Output   OutputConfig
	Profiles ProfileConfig
	LogLevel string
}

// SourceConfig holds input settings.
type SourceConfig struct {
	Provider string // "file" or "stdin"
	Path     string
}

// EngineConfig holds classification settings.
type EngineConfig struct {
	Taxonomy string // built-in taxonomy: "general" or "brandpage"
	Profile  string // profile name; overrides Taxonomy when set
	TopN     int    // summary ranking cutoff per category
	Limit    int    // max items per run; 0 = unbounded
	Workers  int    // parallel classification workers; <2 = sequential
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Format string // "stdout" or "file"
	Path   string
	Pretty bool
}

// ProfileConfig holds profile store settings.
type ProfileConfig struct {
	Dir string
}

// Load reads configuration from environment variables with sensible
// defaults. CLI flags override these per invocation.
func Load() Config {
	return Config{
		Source: SourceConfig{
			Provider: getenv("WINNOW_SOURCE", "stdin"),
			Path:     os.Getenv("WINNOW_INPUT"),
		},
		Engine: EngineConfig{
			Taxonomy: getenv("WINNOW_TAXONOMY", "general"),
			Profile:  os.Getenv("WINNOW_PROFILE"),
			TopN:     getenvInt("WINNOW_TOP_N", 10),
			Limit:    getenvInt("WINNOW_LIMIT", 0),
			Workers:  getenvInt("WINNOW_WORKERS", 1),
		},
		Output: OutputConfig{
			Format: getenv("WINNOW_OUTPUT", "stdout"),
			Path:   os.Getenv("WINNOW_OUTPUT_PATH"),
			Pretty: getenvBool("WINNOW_PRETTY", false),
		},
		Profiles: ProfileConfig{
			Dir: getenv("WINNOW_PROFILE_DIR", "profiles"),
		},
		LogLevel: getenv("WINNOW_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
