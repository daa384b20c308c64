package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailyn/transport/internal/pkg/models"
	"github.com/trailyn/transport/internal/utils"
)

func TestDistanceMeters(t *testing.T) {
	angel := utils.GeoPoint{Latitude: 19.4270, Longitude: -99.1677}
	zocalo := utils.GeoPoint{Latitude: 19.4326, Longitude: -99.1332}

	t.Run("identical points are zero meters apart", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.DistanceMeters(angel, angel))
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		assert.InDelta(t, utils.DistanceMeters(angel, zocalo), utils.DistanceMeters(zocalo, angel), 0.001)
	})

	t.Run("known city distance", func(t *testing.T) {
		// Angel de la Independencia to the Zocalo is roughly 3.7 km.
		d := utils.DistanceMeters(angel, zocalo)
		assert.InDelta(t, 3700, d, 200)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		a := utils.GeoPoint{Latitude: 0, Longitude: 0}
		b := utils.GeoPoint{Latitude: 1, Longitude: 0}
		assert.InDelta(t, 111195, utils.DistanceMeters(a, b), 100)
	})
}

func TestWithinRange(t *testing.T) {
	stop := utils.GeoPoint{Latitude: 19.4326, Longitude: -99.1332}

	t.Run("ten meters passes a fifty meter threshold", func(t *testing.T) {
		driver := utils.GeoPoint{Latitude: 19.43269, Longitude: -99.1332}
		within, d := utils.WithinRange(driver, stop, 50)
		assert.True(t, within)
		assert.Less(t, d, 50.0)
	})

	t.Run("sixty meters fails a fifty meter threshold", func(t *testing.T) {
		driver := utils.GeoPoint{Latitude: 19.43314, Longitude: -99.1332}
		within, d := utils.WithinRange(driver, stop, 50)
		assert.False(t, within)
		assert.Greater(t, d, 50.0)
	})
}

func TestEncodeLocation(t *testing.T) {
	loc := models.Location{Latitude: 19.4326, Longitude: -99.1332}

	hash := utils.EncodeLocation(loc, 8)
	assert.Len(t, hash, 8)

	// Lower precision encodings are prefixes of higher precision ones.
	assert.Equal(t, hash[:5], utils.EncodeLocation(loc, 5))
}

func TestGeoPointFromLocation(t *testing.T) {
	loc := models.Location{Latitude: 19.4326, Longitude: -99.1332}
	p := utils.GeoPointFromLocation(loc)
	assert.Equal(t, loc.Latitude, p.Latitude)
	assert.Equal(t, loc.Longitude, p.Longitude)
}
