// Package query holds the per-listing-type search parameters and the
// cursor-URL page extraction. All filter keys are nullable and default to
// null (no filter applied); setters merge into the existing params.
//
// Changing or clearing the region cascade-clears the dependent district,
// ward and street keys for the house and room filters. The land filter does
// NOT cascade; the web client behaves the same way and the asymmetry is
// kept for parity.
package query

import (
	"net/url"
	"sync"
)

// S is a convenience for building nullable filter values.
func S(v string) *string { return &v }

func appendIfSet(values url.Values, key string, v *string) {
	if v != nil && *v != "" {
		values.Set(key, *v)
	}
}

// HouseParams are the filter keys the house filter endpoint accepts.
type HouseParams struct {
	Category *string
	Region   *string
	District *string
	Ward     *string
	Street   *string
	MinPrice *string
	MaxPrice *string
	Page     *string
}

// Values encodes the set keys; null keys are omitted entirely.
func (p HouseParams) Values() url.Values {
	values := url.Values{}
	appendIfSet(values, "category", p.Category)
	appendIfSet(values, "region", p.Region)
	appendIfSet(values, "district", p.District)
	appendIfSet(values, "ward", p.Ward)
	appendIfSet(values, "street", p.Street)
	appendIfSet(values, "minPrice", p.MinPrice)
	appendIfSet(values, "maxPrice", p.MaxPrice)
	appendIfSet(values, "page", p.Page)
	return values
}

// HouseFilter owns the house search parameters.
type HouseFilter struct {
	mu     sync.Mutex
	params HouseParams
}

func (f *HouseFilter) Params() HouseParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.params
}

func (f *HouseFilter) SetCategory(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Category = v
}

// SetRegion replaces the region and clears the location keys that depended
// on the previous one.
func (f *HouseFilter) SetRegion(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Region = v
	f.params.District = nil
	f.params.Ward = nil
	f.params.Street = nil
}

func (f *HouseFilter) SetDistrict(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.District = v
}

func (f *HouseFilter) SetWard(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Ward = v
}

func (f *HouseFilter) SetStreet(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Street = v
}

func (f *HouseFilter) SetPriceRange(min, max *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.MinPrice = min
	f.params.MaxPrice = max
}

func (f *HouseFilter) SetPage(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Page = v
}

// Reset returns every key to null.
func (f *HouseFilter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params = HouseParams{}
}

// RoomParams are the filter keys the room filter endpoint accepts. The
// category key is spelled roomCategory on the wire.
type RoomParams struct {
	RoomCategory *string
	Region       *string
	District     *string
	Ward         *string
	Street       *string
	MinPrice     *string
	MaxPrice     *string
	Page         *string
}

func (p RoomParams) Values() url.Values {
	values := url.Values{}
	appendIfSet(values, "roomCategory", p.RoomCategory)
	appendIfSet(values, "region", p.Region)
	appendIfSet(values, "district", p.District)
	appendIfSet(values, "ward", p.Ward)
	appendIfSet(values, "street", p.Street)
	appendIfSet(values, "minPrice", p.MinPrice)
	appendIfSet(values, "maxPrice", p.MaxPrice)
	appendIfSet(values, "page", p.Page)
	return values
}

// RoomFilter owns the room search parameters.
type RoomFilter struct {
	mu     sync.Mutex
	params RoomParams
}

func (f *RoomFilter) Params() RoomParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.params
}

func (f *RoomFilter) SetRoomCategory(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.RoomCategory = v
}

// SetRegion replaces the region and clears district, ward and street.
func (f *RoomFilter) SetRegion(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Region = v
	f.params.District = nil
	f.params.Ward = nil
	f.params.Street = nil
}

func (f *RoomFilter) SetDistrict(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.District = v
}

func (f *RoomFilter) SetWard(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Ward = v
}

func (f *RoomFilter) SetStreet(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Street = v
}

func (f *RoomFilter) SetPriceRange(min, max *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.MinPrice = min
	f.params.MaxPrice = max
}

func (f *RoomFilter) SetPage(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Page = v
}

func (f *RoomFilter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params = RoomParams{}
}

// LandParams are the filter keys the land filter endpoint accepts.
type LandParams struct {
	Category *string
	Region   *string
	District *string
	Ward     *string
	Street   *string
	MinPrice *string
	MaxPrice *string
	Page     *string
}

func (p LandParams) Values() url.Values {
	values := url.Values{}
	appendIfSet(values, "region", p.Region)
	appendIfSet(values, "district", p.District)
	appendIfSet(values, "ward", p.Ward)
	appendIfSet(values, "street", p.Street)
	appendIfSet(values, "minPrice", p.MinPrice)
	appendIfSet(values, "maxPrice", p.MaxPrice)
	appendIfSet(values, "page", p.Page)
	appendIfSet(values, "category", p.Category)
	return values
}

// LandFilter owns the land search parameters. Unlike the house and room
// filters, clearing the region leaves district, ward and street untouched.
type LandFilter struct {
	mu     sync.Mutex
	params LandParams
}

func (f *LandFilter) Params() LandParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.params
}

func (f *LandFilter) SetCategory(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Category = v
}

// SetRegion is a plain set; no cascade here.
func (f *LandFilter) SetRegion(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Region = v
}

func (f *LandFilter) SetDistrict(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.District = v
}

func (f *LandFilter) SetWard(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Ward = v
}

func (f *LandFilter) SetStreet(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Street = v
}

func (f *LandFilter) SetPriceRange(min, max *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.MinPrice = min
	f.params.MaxPrice = max
}

func (f *LandFilter) SetPage(v *string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params.Page = v
}

func (f *LandFilter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params = LandParams{}
}
