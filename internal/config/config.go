package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mokutan/stagepass/internal/models"
	"github.com/mokutan/stagepass/internal/services/draw"
	"github.com/mokutan/stagepass/internal/services/selection"
	"github.com/mokutan/stagepass/internal/services/tournament"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Redis      RedisConfig      `yaml:"redis"`
	Admin      AdminConfig      `yaml:"admin"`
	Tournament TournamentConfig `yaml:"tournament"`
	Selection  SelectionConfig  `yaml:"selection"`
	Draw       DrawConfig       `yaml:"draw"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// AdminConfig holds the admin API credentials
type AdminConfig struct {
	Token string `yaml:"token"`
}

// BandConfig is one slice of a group's qualifier cutoff
type BandConfig struct {
	Count  int    `yaml:"count"`
	Status string `yaml:"status"`
}

// GroupConfig holds one group's promotion rules
type GroupConfig struct {
	Bands        []BandConfig `yaml:"bands"`
	RevivalSlots int          `yaml:"revival_slots"`
}

// TournamentConfig holds tournament-flow configuration
type TournamentConfig struct {
	Groups           map[string]GroupConfig `yaml:"groups"`
	CheckInCountdown time.Duration          `yaml:"check_in_countdown"`
	TimeoutGrace     time.Duration          `yaml:"timeout_grace"`
}

// SelectionConfig holds song-selection configuration
type SelectionConfig struct {
	SelfPickPhases map[string][]string `yaml:"self_pick_phases"`
}

// DrawConfig holds song-lottery configuration
type DrawConfig struct {
	MaxSongs int   `yaml:"max_songs"`
	Seed     int64 `yaml:"seed"`
}

// DefaultConfig returns a configuration with every default applied
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 5 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 120 * time.Second
	}

	// Redis defaults
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 100
	}

	// Tournament defaults
	if c.Tournament.CheckInCountdown == 0 {
		c.Tournament.CheckInCountdown = time.Hour
	}
	if c.Tournament.TimeoutGrace == 0 {
		c.Tournament.TimeoutGrace = time.Minute
	}

	// Draw defaults
	if c.Draw.MaxSongs == 0 {
		c.Draw.MaxSongs = 2
	}
}

// TournamentServiceConfig builds the tournament service config. Groups left
// unconfigured fall back to the stock three-group shape.
func (c *Config) TournamentServiceConfig() (*tournament.Config, error) {
	out := tournament.DefaultConfig()
	out.CheckInCountdown = c.Tournament.CheckInCountdown
	out.TimeoutGrace = c.Tournament.TimeoutGrace

	if len(c.Tournament.Groups) == 0 {
		return out, nil
	}

	groups := make(map[models.Group]*tournament.GroupRules, len(c.Tournament.Groups))
	for name, gc := range c.Tournament.Groups {
		group := models.Group(name)
		if !models.ValidGroup(group) {
			return nil, fmt.Errorf("unknown group %q in tournament config", name)
		}

		rules := &tournament.GroupRules{
			RevivalSlots: gc.RevivalSlots,
		}
		for _, band := range gc.Bands {
			status := models.PromotionStatus(band.Status)
			if !models.ValidStatus(status) {
				return nil, fmt.Errorf("unknown status %q in tournament config for group %q", band.Status, name)
			}
			rules.Bands = append(rules.Bands, tournament.PromotionBand{
				Count:  band.Count,
				Status: status,
			})
		}
		groups[group] = rules
	}
	out.Groups = groups

	return out, nil
}

// SelectionServiceConfig builds the selection service config
func (c *Config) SelectionServiceConfig() (*selection.Config, error) {
	if len(c.Selection.SelfPickPhases) == 0 {
		return selection.DefaultConfig(), nil
	}

	phases := make(map[models.Group][]models.Phase, len(c.Selection.SelfPickPhases))
	for name, list := range c.Selection.SelfPickPhases {
		group := models.Group(name)
		if !models.ValidGroup(group) {
			return nil, fmt.Errorf("unknown group %q in selection config", name)
		}
		for _, p := range list {
			phases[group] = append(phases[group], models.Phase(p))
		}
	}

	return &selection.Config{SelfPickPhases: phases}, nil
}

// DrawServiceConfig builds the draw service config
func (c *Config) DrawServiceConfig() *draw.Config {
	return &draw.Config{MaxSongs: c.Draw.MaxSongs}
}
