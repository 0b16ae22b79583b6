package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"trucktrack/internal/domain"
	"trucktrack/internal/eventbus"
)

// CurrentVersion is the config schema version written by Save
const CurrentVersion = 1

// Defaults applied when a key is missing
const (
	DefaultStartPath    = "/"
	DefaultLogFile      = "trucktrack.log"
	DefaultToastSeconds = 3
	DefaultRenderStyle  = "dark"
	DefaultMapMarkers   = 5
	DefaultConflictMode = "prefer_static"
)

// Config represents the application configuration
type Config struct {
	Version           int             `toml:"version"`
	StartPath         string          `toml:"start_path"`
	LogFile           string          `toml:"log_file"`
	ToastSeconds      int             `toml:"toast_seconds"`
	RenderStyle       string          `toml:"render_style"`
	CatalogFile       string          `toml:"catalog_file,omitempty"`
	RouteConflictMode string          `toml:"route_conflict_mode"`
	Filters           []domain.Filter `toml:"filters"`
	UISettings        UISettings      `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen  bool `toml:"alt_screen"`
	MapMarkers int  `toml:"map_markers"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/trucktrack/config.toml, falling back
// to ~/.config when the user config dir is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "trucktrack", "config.toml")
}

// NewConfigService creates a config service for the default location
func NewConfigService(bus eventbus.EventBus) ConfigService {
	return NewConfigServiceAt(DefaultPath(), bus)
}

// NewConfigServiceAt creates a config service bound to path. bus may be nil.
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the bound file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:      cs.filePath,
			StartPath: cfg.StartPath,
		})
	}
	return cfg, nil
}

// Save writes the configuration to the bound file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Filters = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:           CurrentVersion,
		StartPath:         DefaultStartPath,
		LogFile:           DefaultLogFile,
		ToastSeconds:      DefaultToastSeconds,
		RenderStyle:       DefaultRenderStyle,
		RouteConflictMode: DefaultConflictMode,
		Filters:           domain.DefaultFilters(),
		UISettings: UISettings{
			AltScreen:  true,
			MapMarkers: DefaultMapMarkers,
		},
	}
}

// ErrInvalidFilter is returned for a filter entry without an id or label
var ErrInvalidFilter = errors.New("filter needs an id and a label")

// ErrUnknownFilter is returned for a filter id the catalog has no cuisine for
var ErrUnknownFilter = errors.New("unknown filter id")

// ErrInvalidConflictMode is returned for a route_conflict_mode other than
// prefer_static or strict
var ErrInvalidConflictMode = errors.New("route_conflict_mode must be prefer_static or strict")

// Validate reports structural problems that defaults cannot repair
func (c *Config) Validate() error {
	switch c.RouteConflictMode {
	case "", "prefer_static", "strict":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidConflictMode, c.RouteConflictMode)
	}

	known := make(map[domain.CuisineID]bool)
	for _, f := range domain.DefaultFilters() {
		known[f.ID] = true
	}
	seen := make(map[domain.CuisineID]bool, len(c.Filters))
	for i, f := range c.Filters {
		if f.ID == domain.CuisineNone || strings.TrimSpace(f.Label) == "" {
			return fmt.Errorf("filters[%d]: %w", i, ErrInvalidFilter)
		}
		if !known[f.ID] {
			return fmt.Errorf("filters[%d]: %w %q", i, ErrUnknownFilter, f.ID)
		}
		if seen[f.ID] {
			return fmt.Errorf("filters[%d]: duplicate id %q", i, f.ID)
		}
		seen[f.ID] = true
	}
	return nil
}

func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if strings.TrimSpace(c.StartPath) == "" {
		c.StartPath = DefaultStartPath
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.ToastSeconds <= 0 {
		c.ToastSeconds = DefaultToastSeconds
	}
	if c.RenderStyle == "" {
		c.RenderStyle = DefaultRenderStyle
	}
	if c.RouteConflictMode == "" {
		c.RouteConflictMode = DefaultConflictMode
	}
	if len(c.Filters) == 0 {
		c.Filters = domain.DefaultFilters()
	}
	if c.UISettings.MapMarkers < 0 {
		c.UISettings.MapMarkers = 0
	}
}
