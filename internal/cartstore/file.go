// Package cartstore provides durable snapshot stores for the cart line
// list. Snapshots survive restarts; the drawer visibility flag is never
// part of a snapshot.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cubtton/storefront/internal/domain"
)

// Key is the fixed namespace the cart snapshot is stored under.
const Key = "cubtton_cart"

// FileStore persists the snapshot as a JSON array in a single file named
// after Key. Writes replace the whole file atomically, so concurrent
// processes see either the old snapshot or the new one, never a torn mix.
// Last write wins.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, Key+".json")}
}

// Path returns the snapshot file location.
func (s *FileStore) Path() string {
	return s.path
}

type lineRecord struct {
	ProductID string `json:"product_id"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Title     string `json:"title,omitempty"`
	Category  string `json:"category,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// Load reads the stored snapshot. A missing file is an empty cart, not an
// error. A file that fails to decode is reported as an error; the caller
// decides to fall back to empty.
func (s *FileStore) Load(_ context.Context) ([]domain.CartLine, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []lineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	var lines []domain.CartLine
	for _, r := range records {
		lines = append(lines, domain.CartLine{
			ProductID: r.ProductID,
			Price:     r.Price,
			Quantity:  r.Quantity,
			Meta: domain.LineMeta{
				Title:    r.Title,
				Category: r.Category,
				ImageURL: r.ImageURL,
			},
		})
	}
	return lines, nil
}

// Save overwrites the snapshot with the full line list.
func (s *FileStore) Save(_ context.Context, lines []domain.CartLine) error {
	records := make([]lineRecord, 0, len(lines))
	for _, l := range lines {
		records = append(records, lineRecord{
			ProductID: l.ProductID,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Title:     l.Meta.Title,
			Category:  l.Meta.Category,
			ImageURL:  l.Meta.ImageURL,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	return nil
}
