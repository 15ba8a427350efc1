package service

import (
	"context"

	"github.com/seranise/kedesh-go/internal/endpoints"
	"github.com/seranise/kedesh-go/internal/model"
	"github.com/seranise/kedesh-go/internal/state"
	"github.com/seranise/kedesh-go/internal/transport"
)

// Locations serves the region/district/ward/street reference data that
// drives the dependent location pickers. All of it is public; no bearer.
type Locations struct {
	client *transport.Client

	regions   *state.Resource[[]model.Region]
	districts *state.Resource[[]model.District]
	wards     *state.Resource[[]model.Ward]
	streets   *state.Resource[[]model.Street]
}

func NewLocations(client *transport.Client) *Locations {
	return &Locations{
		client:    client,
		regions:   state.NewResource[[]model.Region](nil),
		districts: state.NewResource[[]model.District](nil),
		wards:     state.NewResource[[]model.Ward](nil),
		streets:   state.NewResource[[]model.Street](nil),
	}
}

func (s *Locations) FetchRegions(ctx context.Context) error {
	return state.Run(s.regions, "Failed to fetch regions", func() ([]model.Region, error) {
		var out []model.Region
		err := s.client.Get(ctx, endpoints.Regions, &out)
		return out, err
	})
}

func (s *Locations) FetchDistricts(ctx context.Context) error {
	return state.Run(s.districts, "Failed to fetch districts", func() ([]model.District, error) {
		var out []model.District
		err := s.client.Get(ctx, endpoints.Districts, &out)
		return out, err
	})
}

// FetchRegionDistricts loads the districts of one region, replacing
// whatever district list was loaded before.
func (s *Locations) FetchRegionDistricts(ctx context.Context, regionID string) error {
	return state.Run(s.districts, "Failed to fetch districts", func() ([]model.District, error) {
		var out []model.District
		err := s.client.Get(ctx, endpoints.DistrictsByRegion(regionID), &out)
		return out, err
	})
}

func (s *Locations) FetchDistrictWards(ctx context.Context, districtID string) error {
	return state.Run(s.wards, "Failed to fetch Wards", func() ([]model.Ward, error) {
		var out []model.Ward
		err := s.client.Get(ctx, endpoints.WardsByDistrict(districtID), &out)
		return out, err
	})
}

func (s *Locations) FetchWardStreets(ctx context.Context, wardID string) error {
	return state.Run(s.streets, "Failed to fetch Streets", func() ([]model.Street, error) {
		var out []model.Street
		err := s.client.Get(ctx, endpoints.StreetsByWard(wardID), &out)
		return out, err
	})
}

func (s *Locations) Regions() state.Snapshot[[]model.Region] { return s.regions.Snapshot() }
func (s *Locations) Districts() state.Snapshot[[]model.District] { return s.districts.Snapshot() }
func (s *Locations) Wards() state.Snapshot[[]model.Ward] { return s.wards.Snapshot() }
func (s *Locations) Streets() state.Snapshot[[]model.Street] { return s.streets.Snapshot() }

func (s *Locations) ResetRegions() { s.regions.Reset() }
func (s *Locations) ResetDistricts() { s.districts.Reset() }
func (s *Locations) ResetWards() { s.wards.Reset() }
func (s *Locations) ResetStreets() { s.streets.Reset() }
