package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/wathiqhq/trustengine/internal/database/types"
	"github.com/wathiqhq/trustengine/internal/database/types/enum"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion is the expected version of the config file.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	Scoring    Scoring    `koanf:"scoring"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Enable pprof debugging.
	EnablePprof bool `koanf:"enable_pprof"`
	// pprof server port.
	PprofPort int `koanf:"pprof_port"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	// Database hostname.
	Host string `koanf:"host"`
	// Database port.
	Port int `koanf:"port"`
	// Database username.
	User string `koanf:"user"`
	// Database password.
	Password string `koanf:"password"`
	// Database name.
	DBName string `koanf:"db_name"`
	// Maximum open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	// Redis hostname.
	Host string `koanf:"host"`
	// Redis port.
	Port int `koanf:"port"`
	// Redis username.
	Username string `koanf:"username"`
	// Redis password.
	Password string `koanf:"password"`
}

// Scoring contains reputation scoring configuration. Every field is
// optional; omitted values fall back to the compiled-in defaults.
type Scoring struct {
	// Points awarded per ledger reason, keyed by reason code.
	Points map[string]int `koanf:"points"`
	// Reputation tier thresholds, lowest level first.
	Tiers []Tier `koanf:"tiers"`
	// Leaderboard cache lifetime in seconds.
	LeaderboardTTL int `koanf:"leaderboard_ttl"`
}

// Tier describes one reputation tier threshold.
type Tier struct {
	Level     int    `koanf:"level"`
	Name      string `koanf:"name"`
	NameAr    string `koanf:"name_ar"`
	MinPoints int64  `koanf:"min_points"`
}

// PointPolicy converts the configured point overrides into a policy map,
// starting from the defaults so partial overrides keep the rest intact.
func (s *Scoring) PointPolicy() (types.PointPolicy, error) {
	policy := types.DefaultPointPolicy()

	for key, points := range s.Points {
		reason, err := enum.ReasonCodeString(key)
		if err != nil {
			return nil, fmt.Errorf("unknown scoring reason %q: %w", key, err)
		}

		policy[reason] = points
	}

	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring points: %w", err)
	}

	return policy, nil
}

// ReputationTiers converts the configured tiers, falling back to the
// defaults when none are set.
func (s *Scoring) ReputationTiers() (types.ReputationTiers, error) {
	if len(s.Tiers) == 0 {
		return types.DefaultReputationTiers(), nil
	}

	tiers := make(types.ReputationTiers, 0, len(s.Tiers))
	for _, t := range s.Tiers {
		tiers = append(tiers, types.ReputationTier{
			Level:     t.Level,
			Name:      t.Name,
			NameAr:    t.NameAr,
			MinPoints: t.MinPoints,
		})
	}

	if err := tiers.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring tiers: %w", err)
	}

	return tiers, nil
}

// LeaderboardCacheTTL returns the configured leaderboard cache lifetime,
// or zero when unset so the caller applies its default.
func (s *Scoring) LeaderboardCacheTTL() time.Duration {
	if s.LeaderboardTTL <= 0 {
		return 0
	}

	return time.Duration(s.LeaderboardTTL) * time.Second
}

// LoadConfig loads the configuration from the first config.toml found in
// the search paths and returns it along with the path used.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".trustengine",
		homeDir + "/.trustengine/config",
		"/etc/trustengine/config",
		"/app/config",
		"config",
		".",
	}

	var usedConfigPath string

	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/config.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: config.toml", ErrConfigFileNotFound)
	}

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := checkConfigVersion(config.Version, CurrentVersion); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

func checkConfigVersion(current, expected int) error {
	if current == 0 {
		return fmt.Errorf("%w: config.toml", ErrConfigVersionMissing)
	}

	if current != expected {
		return fmt.Errorf("%w: config.toml (got: %d, expected: %d)",
			ErrConfigVersionMismatch, current, expected)
	}

	return nil
}
