// Package catalog holds the activity definitions. The catalog lives only
// in process memory: teacher edits are not persisted and a restart resets
// it to the built-in seed. That volatility is intended behavior inherited
// from the source design, not a bug.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/educross/educross/internal/learning/models"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed parses the built-in activity set. It spans all three kinds.
func Seed() ([]models.Activity, error) {
	var activities []models.Activity
	if err := yaml.Unmarshal(seedYAML, &activities); err != nil {
		return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	return activities, nil
}

// Catalog is the mutable in-memory activity set.
type Catalog struct {
	mu         sync.RWMutex
	activities []models.Activity
}

// New returns a catalog populated with the built-in seed.
func New() (*Catalog, error) {
	seed, err := Seed()
	if err != nil {
		return nil, err
	}
	return NewWith(seed), nil
}

// NewWith returns a catalog with an explicit initial set; used by tests.
func NewWith(activities []models.Activity) *Catalog {
	c := &Catalog{}
	c.activities = append(c.activities, activities...)
	return c
}

// List returns a snapshot of all activities in insertion order.
func (c *Catalog) List() []models.Activity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

// Get looks up an activity by id.
func (c *Catalog) Get(id string) (models.Activity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

// Create assigns a unique id and appends the definition. In-memory only.
func (c *Catalog) Create(definition models.Activity) models.Activity {
	definition.ID = "act-" + uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.activities = append(c.activities, definition)
	return definition
}

// Delete removes an activity by id and reports whether it was present.
func (c *Catalog) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, a := range c.activities {
		if a.ID == id {
			c.activities = append(c.activities[:i], c.activities[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of activities.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.activities)
}
