package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_SearchJitter(t *testing.T) {
	locator := NewLocator(rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		location, ok := locator.Search("Tokoin")
		require.True(t, ok)
		assert.GreaterOrEqual(t, location.Coordinates.Lng, searchBase.Lng)
		assert.Less(t, location.Coordinates.Lng, searchBase.Lng+searchJitter)
		assert.GreaterOrEqual(t, location.Coordinates.Lat, searchBase.Lat)
		assert.Less(t, location.Coordinates.Lat, searchBase.Lat+searchJitter)
	}
}

func TestSelection(t *testing.T) {
	selection := NewLocator(nil).NewSelection()

	_, err := selection.Confirm()
	assert.ErrorIs(t, err, ErrNoDeliveryLocation)
	assert.False(t, selection.Search(" "))
	assert.Nil(t, selection.Selected())

	assert.ErrorIs(t, selection.Select("5"), ErrUnknownLocation)
	require.NoError(t, selection.Select("1"))
	assert.True(t, selection.Search("Rue du Commerce"))

	location, err := selection.Confirm()
	require.NoError(t, err)
	assert.Equal(t, SearchLocationID, location.ID)
	assert.Equal(t, "Rue du Commerce", location.Address)
}

func TestPopularLocationsIsACopy(t *testing.T) {
	locations := PopularLocations()
	locations[0].Name = "changed"

	assert.Equal(t, "Centre-ville", PopularLocations()[0].Name)
}
