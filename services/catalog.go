package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"spot-guide/models"
	"spot-guide/providers"
)

const defaultLoadError = "spots could not be loaded"

// Snapshot ist ein vollständig geladener, unveränderlicher Stand der Spot-Tabelle.
type Snapshot struct {
	Spots      []models.Spot `json:"-"`
	Vocabulary []string      `json:"-"`
	Schema     models.Schema `json:"-"`
	Columns    []string      `json:"-"`
	Source     string        `json:"source"`
	LoadedAt   time.Time     `json:"loaded_at"`
	// Err enthält die für Nutzer bestimmte Fehlermeldung des letzten fehlgeschlagenen Ladevorgangs.
	Err string `json:"error,omitempty"`
}

// Spot sucht einen Spot über seine ID (Zeilenposition).
func (s *Snapshot) Spot(id int) (models.Spot, bool) {
	if id < 0 || id >= len(s.Spots) {
		return models.Spot{}, false
	}
	return s.Spots[id], true
}

// Catalog lädt die Tabelle einmal, hält sie im Speicher und beantwortet Filteranfragen.
type Catalog struct {
	Provider     providers.Provider
	Resolver     *SchemaResolver
	Logger       *zap.Logger
	ErrorMessage string

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewCatalog erstellt einen leeren Katalog. Vor dem ersten Reload liefert er keine Spots.
func NewCatalog(provider providers.Provider, resolver *SchemaResolver, errorMessage string, logger *zap.Logger) *Catalog {
	if resolver == nil {
		resolver = NewSchemaResolver(nil)
	}
	return &Catalog{
		Provider:     provider,
		Resolver:     resolver,
		Logger:       logger,
		ErrorMessage: errorMessage,
		snapshot:     &Snapshot{Source: provider.Name(), Schema: models.Schema{}},
	}
}

// Snapshot gibt den aktuellen Stand zurück. Der Stand darf nicht verändert werden.
func (c *Catalog) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Query filtert den aktuellen Stand.
func (c *Catalog) Query(q models.FilterQuery) (*Snapshot, []models.Spot) {
	snap := c.Snapshot()
	return snap, Filter(snap.Spots, q)
}

// Reload lädt die Tabelle neu und ersetzt den Stand atomar. Schlägt das Laden fehl,
// bleibt der bisherige Stand mit gesetzter Fehlermeldung erhalten.
func (c *Catalog) Reload(ctx context.Context) (int, error) {
	log := c.Logger.With(zap.String("source", c.Provider.Name()))
	start := time.Now()

	table, err := c.Provider.Load(ctx)
	if err == nil {
		err = table.Validate()
	}
	if err != nil {
		log.Error("Laden der Spot-Tabelle fehlgeschlagen", zap.Error(err))
		c.markFailed()
		return 0, err
	}

	schema, spots, err := c.Resolver.Normalize(table)
	if err != nil {
		log.Error("Normalisierung fehlgeschlagen", zap.Error(err))
		c.markFailed()
		return 0, err
	}

	snap := &Snapshot{
		Spots:      spots,
		Vocabulary: BuildVocabulary(spots),
		Schema:     schema,
		Columns:    table.Columns,
		Source:     c.Provider.Name(),
		LoadedAt:   time.Now(),
	}
	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()

	plottable := 0
	for _, s := range spots {
		if s.HasPosition() {
			plottable++
		}
	}
	log.Info("Spot-Tabelle geladen",
		zap.Int("spots", len(spots)),
		zap.Int("plottable", plottable),
		zap.Int("tags", len(snap.Vocabulary)),
		zap.Any("schema", schema.Labels()),
		zap.Duration("took", time.Since(start)))
	return len(spots), nil
}

func (c *Catalog) markFailed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := *c.snapshot
	prev.Err = c.ErrorMessage
	if prev.Err == "" {
		prev.Err = defaultLoadError
	}
	c.snapshot = &prev
}
