package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Lixing-Zhang/kart-challenge/catalog-api/internal/models"
	"github.com/shopspring/decimal"
)

//go:embed data/products.json
var embeddedProducts []byte

var ErrEmptyDataset = errors.New("product dataset is empty")

// Load decodes a JSON array of raw products and checks every record is
// usable. Prices must be decimal strings; they are kept verbatim.
func Load(r io.Reader) ([]models.RawProduct, error) {
	var raw []models.RawProduct
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode product dataset: %w", err)
	}

	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}

	for i, p := range raw {
		if p.Name == "" {
			return nil, fmt.Errorf("product %d: name is required", i)
		}
		if p.Category == "" {
			return nil, fmt.Errorf("product %d (%s): category is required", i, p.Name)
		}
		if _, err := decimal.NewFromString(p.Price); err != nil {
			return nil, fmt.Errorf("product %d (%s): invalid price %q: %w", i, p.Name, p.Price, err)
		}
	}

	return raw, nil
}

// LoadFile loads the dataset at path, or the embedded dataset when path
// is empty.
func LoadFile(path string) ([]models.RawProduct, error) {
	if path == "" {
		return Load(bytes.NewReader(embeddedProducts))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open product dataset: %w", err)
	}
	defer f.Close()

	return Load(f)
}
