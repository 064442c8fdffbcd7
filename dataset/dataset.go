package dataset

import (
	"errors"
	"strings"

	"rental-optimizer/domain"
)

// ErrCityNotFound is returned by lookups for cities outside the sample set.
var ErrCityNotFound = errors.New("city not found")

// Catalog is the read-only market table, built once at startup and passed
// explicitly into the services that need it.
type Catalog struct {
	cities []domain.City
	index  map[string]int
}

// Default returns a Catalog over the built-in sample cities.
func Default() *Catalog {
	return newCatalog(sampleCities)
}

func newCatalog(cities []domain.City) *Catalog {
	index := make(map[string]int, len(cities))
	for i, c := range cities {
		index[strings.ToLower(c.Name)] = i
	}
	return &Catalog{cities: cities, index: index}
}

// Cities returns the sample cities in their fixed order.
func (c *Catalog) Cities() []domain.City {
	return c.cities
}

// ByName looks a city up case-insensitively.
func (c *Catalog) ByName(name string) (domain.City, error) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.City{}, ErrCityNotFound
	}
	return c.cities[i], nil
}
