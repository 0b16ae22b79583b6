// Package catalog holds the trucks, events and content pages shown by the
// browsing screens. Data is TOML, embedded by default and optionally
// overridden by a file on disk.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"trucktrack/internal/domain"
	"trucktrack/internal/eventbus"
)

//go:embed data/catalog.toml
var embedded []byte

// EmbeddedSource names the built-in catalog in CatalogLoadedEvent
const EmbeddedSource = "embedded"

var (
	ErrTruckNotFound = errors.New("truck not found")
	ErrPageNotFound  = errors.New("page not found")
	ErrInvalidData   = errors.New("invalid catalog data")
)

// Data is the decoded catalog document
type Data struct {
	Trucks []domain.Truck `toml:"trucks"`
	Events []domain.Event `toml:"events"`
	Pages  []domain.Page  `toml:"pages"`
}

// Parse decodes and validates a catalog document
func Parse(raw []byte) (*Data, error) {
	var data Data
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

// Embedded returns the built-in catalog
func Embedded() (*Data, error) {
	return Parse(embedded)
}

// Load reads the catalog at path, or the embedded one when path is empty,
// and returns a populated store. bus and logger may be nil.
func Load(path string, bus eventbus.EventBus, logger *zap.Logger) (*MemoryStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	source := EmbeddedSource
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		source, raw = path, b
	}

	data, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}

	store := NewMemoryStore()
	store.Replace(data)

	logger.Info("catalog loaded",
		zap.String("source", source),
		zap.Int("trucks", len(data.Trucks)),
		zap.Int("events", len(data.Events)),
		zap.Int("pages", len(data.Pages)))

	if bus != nil {
		bus.Publish(eventbus.CatalogLoadedEvent{
			Source: source,
			Trucks: len(data.Trucks),
			Events: len(data.Events),
			Pages:  len(data.Pages),
		})
	}
	return store, nil
}

func (d *Data) validate() error {
	ids := make(map[string]bool, len(d.Trucks))
	for i, t := range d.Trucks {
		id := normalizeKey(t.ID)
		switch {
		case id == "":
			return fmt.Errorf("%w: trucks[%d] has no id", ErrInvalidData, i)
		case strings.TrimSpace(t.Name) == "":
			return fmt.Errorf("%w: truck %q has no name", ErrInvalidData, t.ID)
		case ids[id]:
			return fmt.Errorf("%w: duplicate truck id %q", ErrInvalidData, t.ID)
		}
		ids[id] = true
	}

	slugs := make(map[string]bool, len(d.Pages))
	for i, p := range d.Pages {
		slug := normalizeKey(p.Slug)
		if slug == "" {
			return fmt.Errorf("%w: pages[%d] has no slug", ErrInvalidData, i)
		}
		if slugs[slug] {
			return fmt.Errorf("%w: duplicate page %q", ErrInvalidData, p.Slug)
		}
		slugs[slug] = true
	}
	return nil
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
