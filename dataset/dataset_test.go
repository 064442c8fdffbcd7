package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()

	cities := catalog.Cities()
	require.Len(t, cities, 4)

	for _, c := range cities {
		assert.Len(t, c.Neighborhoods, 15, "city %s", c.Name)
		assert.NotZero(t, c.CenterLat, "city %s", c.Name)
		assert.NotZero(t, c.CenterLon, "city %s", c.Name)
		assert.NotEmpty(t, c.Regulation, "city %s", c.Name)

		for _, n := range c.Neighborhoods {
			assert.Positive(t, n.AvgYieldPct, "%s/%s", c.Name, n.Name)
			assert.Positive(t, n.AvgPriceSqm, "%s/%s", c.Name, n.Name)
		}
	}
}

func TestByName(t *testing.T) {
	catalog := Default()

	city, err := catalog.ByName("Madrid")
	require.NoError(t, err)
	assert.Equal(t, "Madrid", city.Name)
	assert.Equal(t, "Spain", city.Country)
}

func TestByName_CaseInsensitive(t *testing.T) {
	catalog := Default()

	city, err := catalog.ByName("  lisbon  ")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", city.Name)
}

func TestByName_NotFound(t *testing.T) {
	catalog := Default()

	_, err := catalog.ByName("Gotham")
	assert.ErrorIs(t, err, ErrCityNotFound)
}
