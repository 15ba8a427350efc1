package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/endpoints"
	"github.com/seranise/kedesh-go/internal/state"
	"github.com/seranise/kedesh-go/internal/transport"
)

// Properties owns the status transitions shared by every listing type:
// marking a property available, rented or sold. Each transition keeps its
// own result slot because the UI shows them independently.
type Properties struct {
	client *transport.Client
	tokens TokenSource
	logger zerolog.Logger

	available *state.Resource[string]
	rented    *state.Resource[string]
	sold      *state.Resource[string]
}

func NewProperties(client *transport.Client, tokens TokenSource, logger zerolog.Logger) *Properties {
	return &Properties{
		client:    client,
		tokens:    tokens,
		logger:    logger,
		available: state.NewResource(""),
		rented:    state.NewResource(""),
		sold:      state.NewResource(""),
	}
}

func (s *Properties) MarkAvailable(ctx context.Context, propertyID string) error {
	return s.mark(ctx, s.available, endpoints.MarkPropertyAvailable(propertyID), "Failed to mark property available")
}

func (s *Properties) MarkRented(ctx context.Context, propertyID string) error {
	return s.mark(ctx, s.rented, endpoints.MarkPropertyRented(propertyID), "Failed to mark property Rented")
}

func (s *Properties) MarkSold(ctx context.Context, propertyID string) error {
	return s.mark(ctx, s.sold, endpoints.MarkPropertySold(propertyID), "Failed to mark property Sold")
}

func (s *Properties) mark(ctx context.Context, r *state.Resource[string], path, fallback string) error {
	return state.RunDetail(r, fallback, func() (string, int, error) {
		var resp detailResponse
		status, err := s.client.PostWithStatus(ctx, path, nil, &resp, transport.WithBearer(s.tokens.AccessToken()))
		return resp.Detail, status, err
	})
}

func (s *Properties) AvailableResult() state.Snapshot[string] { return s.available.Snapshot() }
func (s *Properties) RentedResult() state.Snapshot[string] { return s.rented.Snapshot() }
func (s *Properties) SoldResult() state.Snapshot[string] { return s.sold.Snapshot() }

func (s *Properties) ResetAvailableResult() { s.available.Reset() }
func (s *Properties) ResetRentedResult() { s.rented.Reset() }
func (s *Properties) ResetSoldResult() { s.sold.Reset() }
