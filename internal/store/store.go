// Package store assembles the SDK: one transport client, one session
// manager wired into its auth-failure hook, and the operation families
// hanging off named fields. It is the single composition point; nothing
// below this package knows about the others' construction order.
package store

import (
	"github.com/rs/zerolog"

	"github.com/seranise/kedesh-go/internal/service"
	"github.com/seranise/kedesh-go/internal/session"
	"github.com/seranise/kedesh-go/internal/token"
	"github.com/seranise/kedesh-go/internal/transport"
)

type Store struct {
	Client  *transport.Client
	Session *session.Manager

	Locations    *service.Locations
	Houses       *service.Houses
	Rooms        *service.Rooms
	Lands        *service.Lands
	Properties   *service.Properties
	Account      *service.Account
	Booking      *service.Booking
	Registration *service.Registration
	Company      *service.Company
}

// New builds the full object graph. The session manager is registered as
// the client's auth-failure handler after both exist, because the session
// itself issues requests through the same client.
func New(client *transport.Client, tokens token.Store, logger zerolog.Logger, opts ...session.Option) *Store {
	opts = append([]session.Option{session.WithLogger(logger)}, opts...)
	sess := session.NewManager(client, tokens, opts...)
	client.SetAuthFailureHandler(sess)

	return &Store{
		Client:  client,
		Session: sess,

		Locations:    service.NewLocations(client),
		Houses:       service.NewHouses(client, sess, logger),
		Rooms:        service.NewRooms(client, sess, logger),
		Lands:        service.NewLands(client, sess, logger),
		Properties:   service.NewProperties(client, sess, logger),
		Account:      service.NewAccount(client, sess, logger),
		Booking:      service.NewBooking(client, sess, logger),
		Registration: service.NewRegistration(client, logger),
		Company:      service.NewCompany(client),
	}
}
