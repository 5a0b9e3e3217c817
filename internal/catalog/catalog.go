// Package catalog is the read side of the product table.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/altindan/internal/jsondb"
	"github.com/shashiranjanraj/altindan/pkg/logger"
)

// DefaultLang is the locale used when a product has no text for the
// requested one.
const DefaultLang = "ru"

// Product is a catalog entry. Immutable from the intake pipeline's
// perspective; only admin operations add entries.
type Product struct {
	ID    string            `json:"id"`
	Name  map[string]string `json:"name"`           // locale → display name
	Desc  map[string]string `json:"desc,omitempty"` // locale → description
	Price float64           `json:"price"`          // smallest currency unit
	Image string            `json:"image,omitempty"`
}

// DisplayName returns the name for lang, falling back to DefaultLang and
// then to any available locale.
func (p Product) DisplayName(lang string) string {
	if name := p.Name[lang]; name != "" {
		return name
	}
	if name := p.Name[DefaultLang]; name != "" {
		return name
	}
	for _, name := range p.Name {
		return name
	}
	return p.ID
}

// Description returns the description for lang with the same fallback
// order as DisplayName.
func (p Product) Description(lang string) string {
	if d := p.Desc[lang]; d != "" {
		return d
	}
	return p.Desc[DefaultLang]
}

// NewID generates a product identifier.
func NewID() string {
	return "p" + uuid.NewString()[:8]
}

// Provider serves product lookups. The document is loaded fresh on every
// call — no cache layer, so an admin edit is visible to the next order and
// the copied-price invariant never depends on cache staleness.
type Provider struct {
	file *jsondb.File
}

// NewProvider opens the product document inside dataDir.
func NewProvider(dataDir string) *Provider {
	return &Provider{file: jsondb.Open(filepath.Join(dataDir, "products.json"))}
}

// List returns every product. A missing or corrupt document yields an empty
// catalog and a warning; the shop keeps serving.
func (p *Provider) List() []Product {
	var products []Product
	if _, err := p.file.Read(&products); err != nil {
		if errors.Is(err, jsondb.ErrCorrupt) {
			logger.Warn("catalog: document unreadable, serving empty catalog", "error", err)
			return nil
		}
		logger.Warn("catalog: read failed", "error", err)
		return nil
	}
	return products
}

// Find resolves one product by identifier.
func (p *Provider) Find(id string) (Product, bool) {
	for _, prod := range p.List() {
		if prod.ID == id {
			return prod, true
		}
	}
	return Product{}, false
}

// Add appends a product to the catalog. Admin-only path.
func (p *Provider) Add(prod Product) error {
	return p.file.Update(func() error {
		var products []Product
		if _, err := p.file.Read(&products); err != nil && !errors.Is(err, jsondb.ErrCorrupt) {
			return fmt.Errorf("catalog: load before add: %w", err)
		}
		products = append(products, prod)
		return p.file.Write(products)
	})
}

// Seed writes products only when the document does not exist yet, matching
// first-boot behaviour.
func (p *Provider) Seed(products []Product) error {
	if p.file.Exists() {
		return nil
	}
	return p.file.Update(func() error {
		return p.file.Write(products)
	})
}
