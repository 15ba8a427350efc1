package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHouseFilter(t *testing.T) {
	t.Run("null keys are omitted from the encoded query", func(t *testing.T) {
		f := &HouseFilter{}
		f.SetCategory(S("Rental"))

		values := f.Params().Values()

		assert.Equal(t, "Rental", values.Get("category"))
		assert.NotContains(t, values, "region")
		assert.NotContains(t, values, "minPrice")
	})

	t.Run("changing the region clears district ward and street", func(t *testing.T) {
		f := &HouseFilter{}
		f.SetRegion(S("Dar es Salaam"))
		f.SetDistrict(S("Kinondoni"))
		f.SetWard(S("Mikocheni"))
		f.SetStreet(S("Mwai Kibaki Road"))

		f.SetRegion(S("Dodoma"))

		p := f.Params()
		assert.Equal(t, "Dodoma", *p.Region)
		assert.Nil(t, p.District)
		assert.Nil(t, p.Ward)
		assert.Nil(t, p.Street)
	})

	t.Run("clearing the region also cascades", func(t *testing.T) {
		f := &HouseFilter{}
		f.SetRegion(S("Dar es Salaam"))
		f.SetDistrict(S("Kinondoni"))

		f.SetRegion(nil)

		p := f.Params()
		assert.Nil(t, p.Region)
		assert.Nil(t, p.District)
	})

	t.Run("the cascade does not touch category or price", func(t *testing.T) {
		f := &HouseFilter{}
		f.SetCategory(S("Sale"))
		f.SetPriceRange(S("100000"), S("500000"))
		f.SetRegion(S("Dar es Salaam"))

		f.SetRegion(S("Dodoma"))

		p := f.Params()
		assert.Equal(t, "Sale", *p.Category)
		assert.Equal(t, "100000", *p.MinPrice)
		assert.Equal(t, "500000", *p.MaxPrice)
	})

	t.Run("reset returns every key to null", func(t *testing.T) {
		f := &HouseFilter{}
		f.SetCategory(S("Rental"))
		f.SetRegion(S("Dodoma"))
		f.SetPage(S("3"))

		f.Reset()

		assert.Equal(t, HouseParams{}, f.Params())
	})
}

func TestRoomFilter(t *testing.T) {
	t.Run("category key is spelled roomCategory on the wire", func(t *testing.T) {
		f := &RoomFilter{}
		f.SetRoomCategory(S("Self-contained"))

		values := f.Params().Values()

		assert.Equal(t, "Self-contained", values.Get("roomCategory"))
		assert.NotContains(t, values, "category")
	})

	t.Run("changing the region clears district ward and street", func(t *testing.T) {
		f := &RoomFilter{}
		f.SetRegion(S("Dar es Salaam"))
		f.SetDistrict(S("Kinondoni"))
		f.SetWard(S("Mikocheni"))
		f.SetStreet(S("Mwai Kibaki Road"))

		f.SetRegion(S("Dodoma"))

		p := f.Params()
		assert.Nil(t, p.District)
		assert.Nil(t, p.Ward)
		assert.Nil(t, p.Street)
	})
}

// The land filter's region key never cascades; this pins the asymmetry so a
// well-meaning cleanup does not silently change search behavior.
func TestLandFilterRegionDoesNotCascade(t *testing.T) {
	f := &LandFilter{}
	f.SetRegion(S("Dar es Salaam"))
	f.SetDistrict(S("Kinondoni"))
	f.SetWard(S("Mikocheni"))
	f.SetStreet(S("Mwai Kibaki Road"))

	f.SetRegion(S("Dodoma"))

	p := f.Params()
	assert.Equal(t, "Dodoma", *p.Region)
	assert.Equal(t, "Kinondoni", *p.District)
	assert.Equal(t, "Mikocheni", *p.Ward)
	assert.Equal(t, "Mwai Kibaki Road", *p.Street)
}

func TestParamsValues(t *testing.T) {
	t.Run("empty string values are treated as unset", func(t *testing.T) {
		p := HouseParams{Category: S("")}

		assert.Empty(t, p.Values())
	})

	t.Run("fully unset params encode to an empty query", func(t *testing.T) {
		assert.Equal(t, "", HouseParams{}.Values().Encode())
		assert.Equal(t, "", RoomParams{}.Values().Encode())
		assert.Equal(t, "", LandParams{}.Values().Encode())
	})
}
