package providers

import (
	"context"
	"errors"

	"spot-guide/models"
)

// ErrUnknownSource wird für nicht unterstützte SPOTS_SOURCE-Werte geliefert.
var ErrUnknownSource = errors.New("unknown spots source")

// Provider ist das Interface, das jede Tabellen-Quelle (Datei, S3, Datenbank) implementieren muss.
type Provider interface {
	// Load liest die komplette Rohtabelle.
	Load(ctx context.Context) (*models.RawTable, error)

	// Name gibt den eindeutigen Namen der Quelle zurück (z.B. "file").
	Name() string
}
