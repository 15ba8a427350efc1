package service

import (
	"context"

	"github.com/seranise/kedesh-go/internal/endpoints"
	"github.com/seranise/kedesh-go/internal/model"
	"github.com/seranise/kedesh-go/internal/state"
	"github.com/seranise/kedesh-go/internal/transport"
)

// Company serves the public marketing data: company contact details and
// the demo listings shown to anonymous visitors.
type Company struct {
	client *transport.Client

	info *state.Resource[model.CompanyInformation]
	demo *state.Resource[[]model.DemoProperty]
}

func NewCompany(client *transport.Client) *Company {
	return &Company{
		client: client,
		info:   state.NewResource(model.CompanyInformation{}),
		demo:   state.NewResource[[]model.DemoProperty](nil),
	}
}

func (s *Company) FetchInformation(ctx context.Context) error {
	return state.Run(s.info, "Failed to fetch CompanyInformations", func() (model.CompanyInformation, error) {
		var out model.CompanyInformation
		err := s.client.Get(ctx, endpoints.CompanyInformation, &out)
		return out, err
	})
}

func (s *Company) FetchDemoProperties(ctx context.Context) error {
	return state.Run(s.demo, "Failed to fetch demo properties", func() ([]model.DemoProperty, error) {
		var out []model.DemoProperty
		err := s.client.Get(ctx, endpoints.DemoProperties, &out)
		return out, err
	})
}

func (s *Company) Information() state.Snapshot[model.CompanyInformation] { return s.info.Snapshot() }
func (s *Company) DemoProperties() state.Snapshot[[]model.DemoProperty] { return s.demo.Snapshot() }
