package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"

	"github.com/acasiostore/storefront-golang/internal/models"
)

// ErrNotFound is returned when a requested slug does not exist in the catalog.
var ErrNotFound = errors.New("catalog: not found")

// Store is the immutable product catalog, loaded once at startup from the
// JSON data files and shared read-only across all request handlers.
type Store struct {
	categories  []models.Category
	products    []models.Product
	generics    []models.GenericCategory
	bestSellers []string

	productIndex  map[string]int
	categoryIndex map[string]int
	genericIndex  map[string]int
}

// New builds a Store from already-decoded records. Load is the normal
// entry point; New exists for callers that assemble records themselves.
func New(categories []models.Category, products []models.Product,
	generics []models.GenericCategory, bestSellers []string) (*Store, error) {
	s := &Store{
		categories:    categories,
		products:      products,
		generics:      generics,
		bestSellers:   bestSellers,
		productIndex:  make(map[string]int),
		categoryIndex: make(map[string]int),
		genericIndex:  make(map[string]int),
	}
	if err := s.index(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the catalog from dir. categories.json, products.json and
// generic_categories.json are required; best_sellers.json is optional
// and its absence just means an empty best-sellers rail.
func Load(dir string) (*Store, error) {
	var (
		categories  []models.Category
		products    []models.Product
		generics    []models.GenericCategory
		bestSellers []string
	)

	if err := readJSON(filepath.Join(dir, "categories.json"), &categories); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "products.json"), &products); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, "generic_categories.json"), &generics); err != nil {
		return nil, err
	}

	if err := readJSON(filepath.Join(dir, "best_sellers.json"), &bestSellers); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Printf("No best_sellers.json in %s, continuing with empty list", dir)
	} else {
		log.Printf("Loaded %d best sellers", len(bestSellers))
	}

	s, err := New(categories, products, generics, bestSellers)
	if err != nil {
		return nil, err
	}

	log.Printf("Catalog loaded: %d categories, %d products, %d generic categories",
		len(categories), len(products), len(generics))
	return s, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// index normalizes every slug and builds the lookup maps. A record with
// an empty slug gets one derived from its display name; a duplicate
// product slug is a data error, because the slug is the cart key.
func (s *Store) index() error {
	for i := range s.categories {
		c := &s.categories[i]
		if c.Slug == "" {
			c.Slug = slug.Make(c.Name)
		} else {
			c.Slug = slug.Make(c.Slug)
		}
		s.categoryIndex[c.Slug] = i
	}

	for i := range s.products {
		p := &s.products[i]
		if p.Slug == "" {
			p.Slug = slug.Make(p.Name)
		} else {
			p.Slug = slug.Make(p.Slug)
		}
		if _, dup := s.productIndex[p.Slug]; dup {
			return fmt.Errorf("duplicate product slug %q in products.json", p.Slug)
		}
		s.productIndex[p.Slug] = i

		// Keep the category reference in normalized form too, so
		// ByCategory matches however the data file spelled it.
		if p.Category != "" {
			p.Category = slug.Make(p.Category)
		}
	}

	for i := range s.generics {
		g := &s.generics[i]
		if g.Slug == "" {
			g.Slug = slug.Make(g.Title)
		} else {
			g.Slug = slug.Make(g.Slug)
		}
		s.genericIndex[g.Slug] = i
	}

	return nil
}

// Product looks up one product by slug.
func (s *Store) Product(productSlug string) (models.Product, error) {
	i, ok := s.productIndex[productSlug]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return s.products[i], nil
}

// Category looks up one category by slug.
func (s *Store) Category(categorySlug string) (models.Category, error) {
	i, ok := s.categoryIndex[categorySlug]
	if !ok {
		return models.Category{}, ErrNotFound
	}
	return s.categories[i], nil
}

// GenericCategory looks up one curated list by slug.
func (s *Store) GenericCategory(genericSlug string) (models.GenericCategory, error) {
	i, ok := s.genericIndex[genericSlug]
	if !ok {
		return models.GenericCategory{}, ErrNotFound
	}
	return s.generics[i], nil
}

// Categories returns all categories in data-file order.
func (s *Store) Categories() []models.Category {
	return s.categories
}

// Products returns all products in data-file order.
func (s *Store) Products() []models.Product {
	return s.products
}

// Featured returns the first n products, the home-page selection.
func (s *Store) Featured(n int) []models.Product {
	if n > len(s.products) {
		n = len(s.products)
	}
	return s.products[:n]
}

// ByCategory returns every product whose category field matches the slug.
func (s *Store) ByCategory(categorySlug string) []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Category == categorySlug {
			out = append(out, p)
		}
	}
	return out
}

// OnSale returns every product with an active sale flag.
func (s *Store) OnSale() []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Sale.OnSale {
			out = append(out, p)
		}
	}
	return out
}

// BestSellers resolves the best-seller slugs against the catalog,
// skipping any that no longer exist.
func (s *Store) BestSellers() []models.Product {
	return s.resolve(s.bestSellers)
}

// GenericProducts resolves a curated list's product slugs, skipping
// references to products that have since been removed.
func (s *Store) GenericProducts(genericSlug string) ([]models.Product, error) {
	g, err := s.GenericCategory(genericSlug)
	if err != nil {
		return nil, err
	}
	return s.resolve(g.Products), nil
}

func (s *Store) resolve(slugs []string) []models.Product {
	var out []models.Product
	for _, ps := range slugs {
		if i, ok := s.productIndex[ps]; ok {
			out = append(out, s.products[i])
		}
	}
	return out
}
