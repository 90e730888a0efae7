package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"geministore.com/app/internal/shared/apperr"
	"geministore.com/app/internal/shared/randid"
	"geministore.com/app/internal/store"
)

// SnapshotKey is the durable-state entry holding the full product list.
const SnapshotKey = "geminiStoreProducts"

// Store holds the authoritative product list. Every mutation persists the
// whole list as one JSON snapshot; there are no partial writes.
type Store struct {
	mu      sync.RWMutex
	items   []Product
	persist store.Store
}

func NewStore(persist store.Store) *Store {
	return &Store{persist: persist}
}

// Load reads the snapshot. An absent entry means an uninitialized store.
// Malformed JSON is treated the same way: logged, discarded, and the caller
// reseeds defaults. Neither is an error to the process.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.persist.Load(ctx, SnapshotKey)
	if err != nil {
		if err == store.ErrNotFound {
			return nil
		}
		return err
	}

	var items []Product
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("catalog: corrupt snapshot discarded: %v", err)
		return nil
	}

	for i := range items {
		if items[i].Stock < 0 {
			items[i].Stock = 0
		}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) == 0
}

// List returns a copy; callers never alias the authoritative slice.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Stock reports the current stock for a product, 0 when unknown. The cart
// re-validates against this on every mutation.
func (s *Store) Stock(id string) int {
	p, ok := s.Get(id)
	if !ok {
		return 0
	}
	return p.Stock
}

// Replace swaps the entire catalog (initial seed, assistant generation).
func (s *Store) Replace(ctx context.Context, items []Product) error {
	cp := make([]Product, len(items))
	copy(cp, items)
	for i := range cp {
		if cp[i].Stock < 0 {
			cp[i].Stock = 0
		}
	}

	s.mu.Lock()
	s.items = cp
	s.mu.Unlock()
	return s.save(ctx)
}

type AddInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Stock       int
}

// Add prepends a new product so it shows first in the admin list.
func (s *Store) Add(ctx context.Context, in AddInput) (Product, error) {
	if in.Price <= 0 {
		return Product{}, apperr.InvalidErr("Price must be positive.", map[string]string{"price": "Price must be positive."})
	}
	if in.Stock < 0 {
		return Product{}, apperr.InvalidErr("Stock must be non-negative number.", map[string]string{"stock": "Stock must be non-negative number."})
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = "https://via.placeholder.com/300x200/cccccc/000000?Text=" + url.QueryEscape(in.Name)
	}

	p := Product{
		ID:          fmt.Sprintf("admin-prod-%d-%s", time.Now().UnixMilli(), randid.Suffix(9)),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    imageURL,
		Stock:       in.Stock,
	}

	s.mu.Lock()
	s.items = append([]Product{p}, s.items...)
	s.mu.Unlock()

	if err := s.save(ctx); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	kept := s.items[:0]
	for _, p := range s.items {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	s.items = kept
	s.mu.Unlock()

	if !found {
		return apperr.NotFoundErr("Product not found.")
	}
	return s.save(ctx)
}

func (s *Store) SetStock(ctx context.Context, id string, stock int) error {
	if stock < 0 {
		return apperr.InvalidErr("Stock cannot be negative.", nil)
	}

	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Stock = stock
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return apperr.NotFoundErr("Product not found.")
	}
	return s.save(ctx)
}

type StockLine struct {
	ProductID string
	Qty       int
}

// DecrementClamped reduces stock for each line, flooring at zero. Lines for
// unknown products are skipped; the checkout already snapshotted them. One
// snapshot write covers all lines.
func (s *Store) DecrementClamped(ctx context.Context, lines []StockLine) error {
	if len(lines) == 0 {
		return nil
	}

	// deterministic order
	sorted := make([]StockLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	s.mu.Lock()
	for _, ln := range sorted {
		qty := ln.Qty
		if qty < 1 {
			qty = 1
		}
		for i := range s.items {
			if s.items[i].ID == ln.ProductID {
				s.items[i].Stock -= qty
				if s.items[i].Stock < 0 {
					s.items[i].Stock = 0
				}
				break
			}
		}
	}
	s.mu.Unlock()

	return s.save(ctx)
}

// Search filters by free text (name, description, category) and an exact
// category. Shoppers only see items in stock; admin views see everything.
func (s *Store) Search(term, category string, includeOutOfStock bool) []Product {
	term = strings.ToLower(strings.TrimSpace(term))

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.items))
	for _, p := range s.items {
		if term != "" {
			hay := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
			if !strings.Contains(hay, term) {
				continue
			}
		}
		if category != "" && p.Category != category {
			continue
		}
		if !includeOutOfStock && p.Stock <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct category names, sorted.
func (s *Store) Categories() []string {
	s.mu.RLock()
	seen := make(map[string]struct{}, len(s.items))
	for _, p := range s.items {
		seen[p.Category] = struct{}{}
	}
	s.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (s *Store) Overview() (total, inStock, outOfStock int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total = len(s.items)
	for _, p := range s.items {
		if p.Stock > 0 {
			inStock++
		}
	}
	return total, inStock, total - inStock
}

func (s *Store) save(ctx context.Context) error {
	s.mu.RLock()
	data, err := json.Marshal(s.items)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	return s.persist.Save(ctx, SnapshotKey, data)
}
