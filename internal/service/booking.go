package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/endpoints"
	"github.com/seranise/kedesh-go/internal/form"
	"github.com/seranise/kedesh-go/internal/model"
	"github.com/seranise/kedesh-go/internal/state"
	"github.com/seranise/kedesh-go/internal/transport"
)

// Booking handles both sides of a booking: the visitor requesting the
// listing agent's contact details, and the agent browsing what has been
// booked.
//
// Book posts to the request_agent_info route, not make_booking; the backend
// records the booking as a side effect of handing out the agent's contact.
type Booking struct {
	client *transport.Client
	tokens TokenSource
	logger zerolog.Logger

	book   *state.Resource[string]
	list   *state.Resource[model.Page[model.Booking]]
	detail *state.Resource[model.BookedPropertyDetail]
}

func NewBooking(client *transport.Client, tokens TokenSource, logger zerolog.Logger) *Booking {
	return &Booking{
		client: client,
		tokens: tokens,
		logger: logger,
		book:   state.NewResource(""),
		list:   state.NewResource(model.Page[model.Booking]{}),
		detail: state.NewResource(model.BookedPropertyDetail{}),
	}
}

// Book submits a visitor's booking; public, multipart.
func (s *Booking) Book(ctx context.Context, sub form.BookingSubmission) error {
	return state.RunDetail(s.book, "Failed to add Booking", func() (string, int, error) {
		contentType, body, err := sub.Encode(s.logger)
		if err != nil {
			return "", 0, err
		}
		var resp detailResponse
		status, err := s.client.PostMultipartWithStatus(ctx, endpoints.RequestAgentInfo, contentType, body, &resp)
		return resp.Detail, status, err
	})
}

// FetchList loads the agent's booked properties, optionally filtered by
// customer name (empty string lists everything).
func (s *Booking) FetchList(ctx context.Context, customerName string) error {
	return state.Run(s.list, "Failed to fetch BookingList", func() (model.Page[model.Booking], error) {
		var out model.Page[model.Booking]
		err := s.client.Get(ctx, endpoints.AgentBookingList(customerName), &out,
			transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
}

func (s *Booking) FetchDetail(ctx context.Context, bookingID string) error {
	return state.Run(s.detail, "Failed to fetch Booking", func() (model.BookedPropertyDetail, error) {
		var out model.BookedPropertyDetail
		err := s.client.Get(ctx, endpoints.AgentBookedPropertyDetail(bookingID), &out,
			transport.WithBearer(s.tokens.AccessToken()))
		return out, err
	})
}

func (s *Booking) BookResult() state.Snapshot[string] { return s.book.Snapshot() }
func (s *Booking) List() state.Snapshot[model.Page[model.Booking]] { return s.list.Snapshot() }
func (s *Booking) Detail() state.Snapshot[model.BookedPropertyDetail] { return s.detail.Snapshot() }

func (s *Booking) ResetBookResult() { s.book.Reset() }
