// Package loved keeps the products a shopper has marked, in insertion order, persisted as one
// JSON array under a single key.
package loved

import (
	"encoding/json"
	"sync"

	"Go-Storefront/pkg/storefront"

	"github.com/pkg/errors"
)

const StorageKey = "loved-items-storage"

var (
	ErrMalformedLovedItem = errors.New("product is missing required fields")
	ErrLovedItemExists    = errors.New("product is already in your loved items")
)

type (
	LovedRepository interface {
		Load() ([]byte, error)
		Save(data []byte) error
		Delete() error
	}

	// Notifier tells the shopper about a mutation, e.g. a toast in a UI or a line on stderr.
	Notifier interface {
		Notify(message string)
	}

	NotifierFunc func(message string)
)

func (f NotifierFunc) Notify(message string) { f(message) }

type Service struct {
	mu       sync.Mutex
	repo     LovedRepository
	notifier Notifier
	items    []storefront.Product
}

// NewService reads the stored collection once. Data written in the old flat layout is dropped
// wholesale; data that does not parse counts as empty.
func NewService(repo LovedRepository, notifier Notifier) (*Service, error) {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	s := &Service{repo: repo, notifier: notifier}

	data, err := repo.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load loved items")
	}
	if len(data) == 0 {
		return s, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, nil
	}
	if len(raw) > 0 && !storefront.HasNestedShape(raw[0]) {
		if err := repo.Delete(); err != nil {
			return nil, errors.Wrap(err, "clear legacy loved items")
		}
		return s, nil
	}

	var items []storefront.Product
	if err := json.Unmarshal(data, &items); err != nil {
		return s, nil
	}
	s.items = items
	return s, nil
}

func (s *Service) persist(items []storefront.Product) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return errors.Wrap(s.repo.Save(data), "save loved items")
}

func (s *Service) indexOf(id uint) int {
	for i, p := range s.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Add appends product unless it is malformed or already present.
func (s *Service) Add(product storefront.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == 0 || (product.Attributes.ProductName == "" && product.Attributes.Slug == "") {
		s.notifier.Notify("Could not add this product to your loved items")
		return ErrMalformedLovedItem
	}
	if s.indexOf(product.ID) >= 0 {
		s.notifier.Notify("This product is already in your loved items")
		return ErrLovedItemExists
	}

	items := append(append(make([]storefront.Product, 0, len(s.items)+1), s.items...), product)
	if err := s.persist(items); err != nil {
		return err
	}
	s.items = items
	s.notifier.Notify(product.Attributes.ProductName + " added to your loved items")
	return nil
}

// Remove drops every entry with id. Removing an absent id is a no-op.
func (s *Service) Remove(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]storefront.Product, 0, len(s.items))
	for _, p := range s.items {
		if p.ID != id {
			items = append(items, p)
		}
	}
	if len(items) == len(s.items) {
		return nil
	}
	if err := s.persist(items); err != nil {
		return err
	}
	s.items = items
	return nil
}

func (s *Service) List() []storefront.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storefront.Product(nil), s.items...)
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Service) Contains(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Delete(); err != nil {
		return errors.Wrap(err, "clear loved items")
	}
	s.items = nil
	return nil
}
