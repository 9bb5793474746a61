package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gridshed/gridshed/core/maintenance"
	"github.com/gridshed/gridshed/core/metrics"
	"github.com/gridshed/gridshed/core/plan"
	"github.com/gridshed/gridshed/infra/mqtt"
)

// ServerConfig defines the API listener.
type ServerConfig struct {
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// MaintenanceConfig selects the task-listing policy.
type MaintenanceConfig struct {
	// Mode is "priority" (default) or "fifo".
	Mode string `json:"mode"`
}

// Validate checks the mode value.
func (c MaintenanceConfig) Validate() error {
	switch maintenance.Mode(c.Mode) {
	case "", maintenance.ModePriority, maintenance.ModeFIFO:
		return nil
	}
	return fmt.Errorf("unknown maintenance mode %q", c.Mode)
}

type Config struct {
	Server      ServerConfig      `json:"server"`
	Scheduler   plan.Config       `json:"scheduler"`
	Maintenance MaintenanceConfig `json:"maintenance"`
	Metrics     metrics.Config    `json:"metrics"`
	Notifier    mqtt.Config       `json:"notifier"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	// Scheduler defaults are seeded before the file is read so an
	// explicit zero (midnight base hour, no cool-down) is honored
	// instead of being mistaken for an unset key.
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"scheduler.base_hour":           6,
		"scheduler.slot_duration_hours": 1,
		"scheduler.cooldown_slots":      2,
	}, "."), nil); err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides. The callback rewrites GS_A__B to
	// a.b, so the provider must unflatten on the dot.
	if err := k.Load(env.Provider("GS_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "gs_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Notifier.SetDefaults()
	if err := cfg.Scheduler.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Maintenance.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Notifier.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
