// Package store persists the last prediction and the request that produced
// it across invocations. It is a single-slot cache: every save fully
// overwrites the prior value, and malformed stored content reads as absent
// so a broken cache degrades the UI instead of crashing it.
package store

import (
	"encoding/json"
	"errors"

	"github.com/prakharDvedi/PanditAI/internal/astro"
)

// ErrNotFound is returned when a slot is empty or its content cannot be
// decoded.
var ErrNotFound = errors.New("not in cache")

// Slot keys used by the cache.
const (
	KeyPrediction   = "prediction"
	KeyBirthDetails = "birth_details"
)

// Store is a typed key-value slot store. It is injected at the boundary of
// each consuming component so tests can swap in a memory implementation.
type Store interface {
	Get(key string, v interface{}) error
	Set(key string, v interface{}) error
	Clear() error
}

// Cache wraps a Store with the prediction-specific slots.
type Cache struct {
	store Store
}

// NewCache creates a prediction cache over the given store.
func NewCache(s Store) *Cache {
	return &Cache{store: s}
}

// Save records a snapshot together with the request that produced it. Both
// slots are overwritten wholesale.
func (c *Cache) Save(request interface{}, snapshot *astro.Snapshot) error {
	if err := c.store.Set(KeyPrediction, snapshot); err != nil {
		return err
	}
	return c.store.Set(KeyBirthDetails, request)
}

// Load returns the cached snapshot, or ErrNotFound.
func (c *Cache) Load() (*astro.Snapshot, error) {
	var snap astro.Snapshot
	if err := c.store.Get(KeyPrediction, &snap); err != nil {
		return nil, ErrNotFound
	}
	return &snap, nil
}

// LoadRequest returns the birth details of the last prediction, or
// ErrNotFound.
func (c *Cache) LoadRequest() (*astro.BirthDetail, error) {
	var detail astro.BirthDetail
	if err := c.store.Get(KeyBirthDetails, &detail); err != nil {
		return nil, ErrNotFound
	}
	return &detail, nil
}

// Clear drops both slots.
func (c *Cache) Clear() error {
	return c.store.Clear()
}

func marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return ErrNotFound
	}
	return nil
}
