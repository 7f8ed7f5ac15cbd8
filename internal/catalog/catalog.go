// Package catalog serves the bundled, read-only dish list.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"workshop-scheduler/internal/model"
)

//go:embed platillos.yaml
var bundled []byte

// Catalog is immutable after construction.
type Catalog struct {
	dishes []model.Dish
}

// Load decodes the bundled list.
func Load() (*Catalog, error) {
	return Parse(bundled)
}

// Parse decodes a YAML sequence of dishes and numbers them by position.
func Parse(data []byte) (*Catalog, error) {
	var dishes []model.Dish
	if err := yaml.Unmarshal(data, &dishes); err != nil {
		return nil, fmt.Errorf("parsing dish list: %w", err)
	}
	for i := range dishes {
		if dishes[i].Name == "" {
			return nil, fmt.Errorf("dish %d: nombre is required", i)
		}
		dishes[i].Index = i
	}
	return &Catalog{dishes: dishes}, nil
}

func (c *Catalog) Len() int { return len(c.dishes) }

// All returns a copy of the dishes in bundled order.
func (c *Catalog) All() []model.Dish {
	out := make([]model.Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

// At returns the dish at position i.
func (c *Catalog) At(i int) (model.Dish, bool) {
	if i < 0 || i >= len(c.dishes) {
		return model.Dish{}, false
	}
	return c.dishes[i], true
}
