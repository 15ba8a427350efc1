package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFromURL(t *testing.T) {
	t.Run("extracts the page parameter from a cursor url", func(t *testing.T) {
		page, ok := PageFromURL("https://rental.seranise.co.tz/api/v2/house/houses/filter_houses/?page=3&region=Dodoma")

		assert.True(t, ok)
		assert.Equal(t, "3", page)
	})

	t.Run("reports absence when the url has no page parameter", func(t *testing.T) {
		_, ok := PageFromURL("https://rental.seranise.co.tz/api/v2/house/houses/filter_houses/?region=Dodoma")

		assert.False(t, ok)
	})

	t.Run("reports absence for an unparsable url", func(t *testing.T) {
		_, ok := PageFromURL("://not-a-url")

		assert.False(t, ok)
	})

	t.Run("keeps the page value as an opaque string", func(t *testing.T) {
		page, ok := PageFromURL("/house/houses/filter_houses/?page=02")

		assert.True(t, ok)
		assert.Equal(t, "02", page)
	})
}
