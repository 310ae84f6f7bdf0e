package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Decode reads a JSON catalog.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return &c, nil
}

// Encode writes the catalog as indented JSON.
func Encode(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

// Marshal returns the compact JSON form of the catalog.
func Marshal(c *Catalog) ([]byte, error) {
	return json.Marshal(c)
}

// Unmarshal parses a compact or indented JSON catalog.
func Unmarshal(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return &c, nil
}

// ReadFile loads a catalog from a JSON file.
func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile stores a catalog as indented JSON.
func WriteFile(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
