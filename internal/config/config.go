// Package config provides Viper-based configuration loading for the world boss server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/idlerealm/worldboss/internal/game/boss"
)

// ServerConfig holds top-level server settings.
type ServerConfig struct {
	// Mode is the server operation mode: "standalone" (PostgreSQL) or "dev" (in-memory store).
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	// HealthTimeout bounds each database health check.
	HealthTimeout time.Duration `mapstructure:"health_timeout"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameServerConfig holds the gRPC listener settings.
type GameServerConfig struct {
	// GRPCHost is the bind/connect address for the gRPC service.
	GRPCHost string `mapstructure:"grpc_host"`
	// GRPCPort is the TCP port for the gRPC service.
	GRPCPort int `mapstructure:"grpc_port"`
}

// Addr returns the "host:port" gRPC address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (g GameServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", g.GRPCHost, g.GRPCPort)
}

// EventsConfig holds the websocket boss event feed settings.
type EventsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	// Path is the HTTP path upgraded to a websocket.
	Path string `mapstructure:"path"`
	// WriteTimeout bounds each websocket write.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// BufferSize is the per-subscriber queue length; events beyond it are dropped.
	BufferSize int `mapstructure:"buffer_size"`
}

// Addr returns the "host:port" HTTP listen address.
func (e EventsConfig) Addr() string {
	return fmt.Sprintf("%s:%d", e.Host, e.Port)
}

// BossConfig holds process-level combat settings. Rotation settings that
// admins edit at runtime are persisted in the database instead.
type BossConfig struct {
	// AttackCooldown is the minimum interval between two attacks by one player.
	AttackCooldown time.Duration `mapstructure:"attack_cooldown"`
	// RotationInterval is how often the automatic rotation check runs.
	RotationInterval time.Duration `mapstructure:"rotation_interval"`
	// LeaderboardSize is the default number of leaderboard rows.
	LeaderboardSize int `mapstructure:"leaderboard_size"`
	// SpawnAttempts bounds retries after losing a concurrent spawn race.
	SpawnAttempts int `mapstructure:"spawn_attempts"`
}

// ServiceConfig converts to the boss service configuration.
func (b BossConfig) ServiceConfig() boss.Config {
	return boss.Config{
		AttackCooldown:  b.AttackCooldown,
		LeaderboardSize: b.LeaderboardSize,
		SpawnAttempts:   b.SpawnAttempts,
	}
}

// ContentConfig locates the YAML content directories.
type ContentConfig struct {
	BossDir string `mapstructure:"boss_dir"`
	ItemDir string `mapstructure:"item_dir"`
}

// Config is the top-level application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	GameServer GameServerConfig `mapstructure:"gameserver"`
	Events     EventsConfig     `mapstructure:"events"`
	Boss       BossConfig       `mapstructure:"boss"`
	Content    ContentConfig    `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateServer(c.Server); err != nil {
		errs = append(errs, err.Error())
	}
	// the dev server never opens a database connection
	if c.Server.Mode != "dev" {
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGameServer(c.GameServer); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEvents(c.Events); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateBoss(c.Boss); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateServer(s ServerConfig) error {
	validModes := map[string]bool{"standalone": true, "dev": true}
	if !validModes[s.Mode] {
		return fmt.Errorf("server.mode must be one of [standalone, dev], got %q", s.Mode)
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if d.HealthTimeout <= 0 {
		errs = append(errs, "database.health_timeout must be positive")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGameServer(g GameServerConfig) error {
	var errs []string
	if g.GRPCHost == "" {
		errs = append(errs, "gameserver.grpc_host must not be empty")
	}
	if g.GRPCPort < 1 || g.GRPCPort > 65535 {
		errs = append(errs, fmt.Sprintf("gameserver.grpc_port must be 1-65535, got %d", g.GRPCPort))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateEvents(e EventsConfig) error {
	if !e.Enabled {
		return nil
	}
	var errs []string
	if e.Port < 1 || e.Port > 65535 {
		errs = append(errs, fmt.Sprintf("events.port must be 1-65535, got %d", e.Port))
	}
	if !strings.HasPrefix(e.Path, "/") {
		errs = append(errs, fmt.Sprintf("events.path must start with '/', got %q", e.Path))
	}
	if e.WriteTimeout <= 0 {
		errs = append(errs, "events.write_timeout must be positive")
	}
	if e.BufferSize < 1 {
		errs = append(errs, fmt.Sprintf("events.buffer_size must be >= 1, got %d", e.BufferSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateBoss(b BossConfig) error {
	var errs []string
	if b.AttackCooldown < 0 {
		errs = append(errs, "boss.attack_cooldown must not be negative")
	}
	if b.RotationInterval <= 0 {
		errs = append(errs, "boss.rotation_interval must be positive")
	}
	if b.LeaderboardSize < 1 {
		errs = append(errs, fmt.Sprintf("boss.leaderboard_size must be >= 1, got %d", b.LeaderboardSize))
	}
	if b.SpawnAttempts < 1 {
		errs = append(errs, fmt.Sprintf("boss.spawn_attempts must be >= 1, got %d", b.SpawnAttempts))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and WORLDBOSS_ environment
// overrides applied but no config file read.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("WORLDBOSS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.mode", "standalone")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "worldboss")
	v.SetDefault("database.password", "worldboss")
	v.SetDefault("database.name", "worldboss")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.health_timeout", "2s")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("gameserver.grpc_host", "127.0.0.1")
	v.SetDefault("gameserver.grpc_port", 50051)

	v.SetDefault("events.enabled", true)
	v.SetDefault("events.host", "0.0.0.0")
	v.SetDefault("events.port", 8081)
	v.SetDefault("events.path", "/ws/boss")
	v.SetDefault("events.write_timeout", "5s")
	v.SetDefault("events.buffer_size", 64)

	v.SetDefault("boss.attack_cooldown", "5m")
	v.SetDefault("boss.rotation_interval", "1m")
	v.SetDefault("boss.leaderboard_size", 10)
	v.SetDefault("boss.spawn_attempts", 3)

	v.SetDefault("content.boss_dir", "content/bosses")
	v.SetDefault("content.item_dir", "content/items")
}
