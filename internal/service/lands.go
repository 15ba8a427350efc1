package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/endpoints"
	"github.com/seranise/kedesh-go/internal/form"
	"github.com/seranise/kedesh-go/internal/model"
	"github.com/seranise/kedesh-go/internal/query"
	"github.com/seranise/kedesh-go/internal/state"
	"github.com/seranise/kedesh-go/internal/transport"
)

// Lands covers the land listings. The shape differs from houses and rooms
// in two ways: the public detail endpoint is retrieve_land_details rather
// than a client_* route, and the region filter key does not cascade (see
// query.LandFilter).
type Lands struct {
	client *transport.Client
	tokens TokenSource
	logger zerolog.Logger

	Filter *query.LandFilter

	list      *state.Resource[model.Page[model.Land]]
	detail    *state.Resource[model.Land]
	details   *state.Resource[model.Land]
	filtered  *state.Resource[model.Page[model.Land]]
	add       *state.Resource[string]
	deletion  *state.Resource[string]
	agentInfo *state.Resource[string]
}

func NewLands(client *transport.Client, tokens TokenSource, logger zerolog.Logger) *Lands {
	return &Lands{
		client:    client,
		tokens:    tokens,
		logger:    logger,
		Filter:    &query.LandFilter{},
		list:      state.NewResource(model.Page[model.Land]{}),
		detail:    state.NewResource(model.Land{}),
		details:   state.NewResource(model.Land{}),
		filtered:  state.NewResource(model.Page[model.Land]{}),
		add:       state.NewResource(""),
		deletion:  state.NewResource(""),
		agentInfo: state.NewResource(""),
	}
}

func (s *Lands) FetchList(ctx context.Context) error {
	return state.Run(s.list, "Failed to fetch land list", func() (model.Page[model.Land], error) {
		var out model.Page[model.Land]
		err := s.client.Get(ctx, endpoints.LandList, &out, transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
}

// FetchDetail loads one of the agent's lands.
func (s *Lands) FetchDetail(ctx context.Context, landID string) error {
	return state.Run(s.detail, "Failed to fetch land", func() (model.Land, error) {
		var out model.Land
		err := s.client.Get(ctx, endpoints.RetrieveLand(landID), &out, transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
}

// FetchDetails loads the public detail view; no bearer.
func (s *Lands) FetchDetails(ctx context.Context, landID string) error {
	return state.Run(s.details, "Failed to fetch land details", func() (model.Land, error) {
		var out model.Land
		err := s.client.Get(ctx, endpoints.LandDetails(landID), &out)
		return out, err
	})
}

func (s *Lands) FetchFiltered(ctx context.Context) error {
	return state.Run(s.filtered, "Failed to fetch lands", func() (model.Page[model.Land], error) {
		path := endpoints.FilterLands
		if encoded := s.Filter.Params().Values().Encode(); encoded != "" {
			path += "?" + encoded
		}
		var out model.Page[model.Land]
		err := s.client.Get(ctx, path, &out)
		return out, err
	})
}

// SetPage moves the search to another page and discards the stale results.
func (s *Lands) SetPage(v *string) {
	s.Filter.SetPage(v)
	s.filtered.Reset()
}

func (s *Lands) Add(ctx context.Context, sub form.LandSubmission) error {
	if len(sub.Images) == 0 {
		s.add.RejectCode(form.ErrNoImages.Error(), 400)
		return form.ErrNoImages
	}
	return state.RunDetail(s.add, "Failed to add land", func() (string, int, error) {
		contentType, body, err := sub.Encode(s.logger)
		if err != nil {
			return "", 0, err
		}
		var resp detailResponse
		status, err := s.client.PostMultipartWithStatus(ctx, endpoints.AddLand, contentType, body, &resp,
			transport.WithBearer(s.tokens.AccessToken()))
		return resp.Detail, status, err
	})
}

// Delete soft-deletes a land listing and refetches the agent list on
// success.
func (s *Lands) Delete(ctx context.Context, landID string) error {
	return state.RunDetail(s.deletion, "Failed to delete land",
		func() (string, int, error) {
			var resp detailResponse
			status, err := s.client.DeleteWithStatus(ctx, endpoints.SoftDeleteLand(landID), &resp,
				transport.WithBearer(s.tokens.AccessToken()))
			return resp.Detail, status, err
		},
		func() {
			if err := s.FetchList(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("land list refresh after delete failed")
			}
		})
}

// RequestAgentInfo asks for the listing agent's phone number on behalf of
// an interested visitor; public, multipart.
func (s *Lands) RequestAgentInfo(ctx context.Context, sub form.BookingSubmission) error {
	return state.RunDetail(s.agentInfo, "Failed get agent phone number", func() (string, int, error) {
		contentType, body, err := sub.Encode(s.logger)
		if err != nil {
			return "", 0, err
		}
		var resp detailResponse
		status, err := s.client.PostMultipartWithStatus(ctx, endpoints.RequestLandInfo, contentType, body, &resp)
		return resp.Detail, status, err
	})
}

func (s *Lands) List() state.Snapshot[model.Page[model.Land]] { return s.list.Snapshot() }
func (s *Lands) Detail() state.Snapshot[model.Land] { return s.detail.Snapshot() }
func (s *Lands) Details() state.Snapshot[model.Land] { return s.details.Snapshot() }
func (s *Lands) Filtered() state.Snapshot[model.Page[model.Land]] { return s.filtered.Snapshot() }
func (s *Lands) AddResult() state.Snapshot[string] { return s.add.Snapshot() }
func (s *Lands) DeleteResult() state.Snapshot[string] { return s.deletion.Snapshot() }
func (s *Lands) AgentInfo() state.Snapshot[string] { return s.agentInfo.Snapshot() }

func (s *Lands) ResetAddResult() { s.add.Reset() }
func (s *Lands) ResetDeleteResult() { s.deletion.Reset() }
func (s *Lands) ResetAgentInfo() { s.agentInfo.Reset() }
func (s *Lands) ResetFiltered() { s.filtered.Reset() }
