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

// Houses groups the house operations: the agent-facing list and detail,
// the public filtered search and client detail, and the add / delete /
// image-upload mutations. Deleting a house or uploading images refetches
// the agent list so it reflects the change.
type Houses struct {
	client *transport.Client
	tokens TokenSource
	logger zerolog.Logger

	Filter *query.HouseFilter

	list         *state.Resource[model.Page[model.House]]
	detail       *state.Resource[model.House]
	clientDetail *state.Resource[model.House]
	filtered     *state.Resource[model.Page[model.House]]
	add          *state.Resource[string]
	deletion     *state.Resource[string]
	imageUpload  *state.Resource[string]
}

func NewHouses(client *transport.Client, tokens TokenSource, logger zerolog.Logger) *Houses {
	return &Houses{
		client:       client,
		tokens:       tokens,
		logger:       logger,
		Filter:       &query.HouseFilter{},
		list:         state.NewResource(model.Page[model.House]{}),
		detail:       state.NewResource(model.House{}),
		clientDetail: state.NewResource(model.House{}),
		filtered:     state.NewResource(model.Page[model.House]{}),
		add:          state.NewResource(""),
		deletion:     state.NewResource(""),
		imageUpload:  state.NewResource(""),
	}
}

// FetchList loads the signed-in agent's houses.
func (s *Houses) FetchList(ctx context.Context) error {
	return state.Run(s.list, "Failed to fetch house", func() (model.Page[model.House], error) {
		var out model.Page[model.House]
		err := s.client.Get(ctx, endpoints.HouseList, &out, transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
}

// FetchDetail loads one of the agent's houses.
func (s *Houses) FetchDetail(ctx context.Context, propertyID string) error {
	return state.Run(s.detail, "Failed to fetch house", func() (model.House, error) {
		var out model.House
		err := s.client.Get(ctx, endpoints.RetrieveHouse(propertyID), &out, transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
}

// FetchClientDetail loads the public detail view; no bearer.
func (s *Houses) FetchClientDetail(ctx context.Context, propertyID string) error {
	return state.Run(s.clientDetail, "Failed to fetch ClientHouse", func() (model.House, error) {
		var out model.House
		err := s.client.Get(ctx, endpoints.ClientHouseDetail(propertyID), &out)
		return out, err
	})
}

// FetchFiltered runs the public search with the current filter params.
func (s *Houses) FetchFiltered(ctx context.Context) error {
	return state.Run(s.filtered, "Failed to fetch houses", func() (model.Page[model.House], error) {
		path := endpoints.FilterHouses
		if encoded := s.Filter.Params().Values().Encode(); encoded != "" {
			path += "?" + encoded
		}
		var out model.Page[model.House]
		err := s.client.Get(ctx, path, &out)
		return out, err
	})
}

// SetPage moves the search to another page and discards the stale results
// so the next fetch replaces them rather than showing the previous page.
func (s *Houses) SetPage(v *string) {
	s.Filter.SetPage(v)
	s.filtered.Reset()
}

// Add submits a new house listing. A submission with no images is rejected
// locally as a 400 before anything goes on the wire.
func (s *Houses) Add(ctx context.Context, sub form.HouseSubmission) error {
	if len(sub.Images) == 0 {
		s.add.RejectCode(form.ErrNoImages.Error(), 400)
		return form.ErrNoImages
	}
	return state.RunDetail(s.add, "Failed to add house", func() (string, int, error) {
		contentType, body, err := sub.Encode(s.logger)
		if err != nil {
			return "", 0, err
		}
		var resp detailResponse
		status, err := s.client.PostMultipartWithStatus(ctx, endpoints.AddHouse, contentType, body, &resp,
			transport.WithBearer(s.tokens.AccessToken()))
		return resp.Detail, status, err
	})
}

// Delete soft-deletes a house and, on success, refetches the agent list.
func (s *Houses) Delete(ctx context.Context, propertyID string) error {
	return state.RunDetail(s.deletion, "Imeshindwa kufuta kwasababu isiyojulikana, jaribu tena badae",
		func() (string, int, error) {
			var resp detailResponse
			status, err := s.client.DeleteWithStatus(ctx, endpoints.SoftDeleteHouse(propertyID), &resp,
				transport.WithBearer(s.tokens.AccessToken()))
			return resp.Detail, status, err
		},
		func() {
			if err := s.FetchList(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("house list refresh after delete failed")
			}
		})
}

// UploadImages attaches additional images to an existing house and
// refetches the agent list on success.
func (s *Houses) UploadImages(ctx context.Context, sub form.ImageUploadSubmission) error {
	if len(sub.Images) == 0 {
		s.imageUpload.RejectCode(form.ErrNoImages.Error(), 400)
		return form.ErrNoImages
	}
	return state.RunDetail(s.imageUpload, "Failed to submit images",
		func() (string, int, error) {
			contentType, body, err := sub.Encode(s.logger)
			if err != nil {
				return "", 0, err
			}
			var resp detailResponse
			status, err := s.client.PostMultipartWithStatus(ctx, endpoints.UploadHouseImages, contentType, body, &resp,
				transport.WithBearer(s.tokens.AccessToken()))
			return resp.Detail, status, err
		},
		func() {
			if err := s.FetchList(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("house list refresh after image upload failed")
			}
		})
}

func (s *Houses) List() state.Snapshot[model.Page[model.House]] { return s.list.Snapshot() }
func (s *Houses) Detail() state.Snapshot[model.House] { return s.detail.Snapshot() }
func (s *Houses) ClientDetail() state.Snapshot[model.House] { return s.clientDetail.Snapshot() }
func (s *Houses) Filtered() state.Snapshot[model.Page[model.House]] { return s.filtered.Snapshot() }
func (s *Houses) AddResult() state.Snapshot[string] { return s.add.Snapshot() }
func (s *Houses) DeleteResult() state.Snapshot[string] { return s.deletion.Snapshot() }
func (s *Houses) ImageUploadResult() state.Snapshot[string] { return s.imageUpload.Snapshot() }

func (s *Houses) ResetAddResult() { s.add.Reset() }
func (s *Houses) ResetDeleteResult() { s.deletion.Reset() }
func (s *Houses) ResetImageUploadResult() { s.imageUpload.Reset() }
func (s *Houses) ResetFiltered() { s.filtered.Reset() }
