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

// Rooms mirrors the house family for single-room listings. Deleting a room
// refetches the agent list; there is no separate room image upload, images
// only travel with the add form.
type Rooms struct {
	client *transport.Client
	tokens TokenSource
	logger zerolog.Logger

	Filter *query.RoomFilter

	list         *state.Resource[model.Page[model.Room]]
	detail       *state.Resource[model.Room]
	clientDetail *state.Resource[model.Room]
	filtered     *state.Resource[model.Page[model.Room]]
	add          *state.Resource[string]
	deletion     *state.Resource[string]
}

func NewRooms(client *transport.Client, tokens TokenSource, logger zerolog.Logger) *Rooms {
	return &Rooms{
		client:       client,
		tokens:       tokens,
		logger:       logger,
		Filter:       &query.RoomFilter{},
		list:         state.NewResource(model.Page[model.Room]{}),
		detail:       state.NewResource(model.Room{}),
		clientDetail: state.NewResource(model.Room{}),
		filtered:     state.NewResource(model.Page[model.Room]{}),
		add:          state.NewResource(""),
		deletion:     state.NewResource(""),
	}
}

func (s *Rooms) FetchList(ctx context.Context) error {
	return state.Run(s.list, "Failed to fetch Room", func() (model.Page[model.Room], error) {
		var out model.Page[model.Room]
		err := s.client.Get(ctx, endpoints.RoomList, &out, transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
}

func (s *Rooms) FetchDetail(ctx context.Context, propertyID string) error {
	return state.Run(s.detail, "Failed to fetch Room", func() (model.Room, error) {
		var out model.Room
		err := s.client.Get(ctx, endpoints.RetrieveRoom(propertyID), &out, transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
}

func (s *Rooms) FetchClientDetail(ctx context.Context, propertyID string) error {
	return state.Run(s.clientDetail, "Failed to fetch ClientRoom", func() (model.Room, error) {
		var out model.Room
		err := s.client.Get(ctx, endpoints.ClientRoomDetail(propertyID), &out)
		return out, err
	})
}

func (s *Rooms) FetchFiltered(ctx context.Context) error {
	return state.Run(s.filtered, "Failed to fetch rooms", func() (model.Page[model.Room], error) {
		path := endpoints.FilterRooms
		if encoded := s.Filter.Params().Values().Encode(); encoded != "" {
			path += "?" + encoded
		}
		var out model.Page[model.Room]
		err := s.client.Get(ctx, path, &out)
		return out, err
	})
}

// SetPage moves the search to another page and discards the stale results.
func (s *Rooms) SetPage(v *string) {
	s.Filter.SetPage(v)
	s.filtered.Reset()
}

func (s *Rooms) Add(ctx context.Context, sub form.RoomSubmission) error {
	if len(sub.Images) == 0 {
		s.add.RejectCode(form.ErrNoImages.Error(), 400)
		return form.ErrNoImages
	}
	return state.RunDetail(s.add, "Failed to add Room", func() (string, int, error) {
		contentType, body, err := sub.Encode(s.logger)
		if err != nil {
			return "", 0, err
		}
		var resp detailResponse
		status, err := s.client.PostMultipartWithStatus(ctx, endpoints.AddRoom, contentType, body, &resp,
			transport.WithBearer(s.tokens.AccessToken()))
		return resp.Detail, status, err
	})
}

// Delete soft-deletes a room and, on success, refetches the agent list.
func (s *Rooms) Delete(ctx context.Context, propertyID string) error {
	return state.RunDetail(s.deletion, "Imeshindwa kufuta kwasababu isiyojulikana, jaribu tena badae",
		func() (string, int, error) {
			var resp detailResponse
			status, err := s.client.DeleteWithStatus(ctx, endpoints.SoftDeleteRoom(propertyID), &resp,
				transport.WithBearer(s.tokens.AccessToken()))
			return resp.Detail, status, err
		},
		func() {
			if err := s.FetchList(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("room list refresh after delete failed")
			}
		})
}

func (s *Rooms) List() state.Snapshot[model.Page[model.Room]] { return s.list.Snapshot() }
func (s *Rooms) Detail() state.Snapshot[model.Room] { return s.detail.Snapshot() }
func (s *Rooms) ClientDetail() state.Snapshot[model.Room] { return s.clientDetail.Snapshot() }
func (s *Rooms) Filtered() state.Snapshot[model.Page[model.Room]] { return s.filtered.Snapshot() }
func (s *Rooms) AddResult() state.Snapshot[string] { return s.add.Snapshot() }
func (s *Rooms) DeleteResult() state.Snapshot[string] { return s.deletion.Snapshot() }

func (s *Rooms) ResetAddResult() { s.add.Reset() }
func (s *Rooms) ResetDeleteResult() { s.deletion.Reset() }
func (s *Rooms) ResetFiltered() { s.filtered.Reset() }
